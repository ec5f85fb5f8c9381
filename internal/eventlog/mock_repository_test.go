package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, entry Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) Query(ctx context.Context, filter EventFilter) ([]Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}
