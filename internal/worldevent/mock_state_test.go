package worldevent

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TavernSim_Go/internal/domain"
)

// MockState is a testify mock of State
type MockState struct {
	mock.Mock
	book domain.EventBook
	now  domain.GameTime
}

func (m *MockState) Now() domain.GameTime { return m.now }

func (m *MockState) EventBook() *domain.EventBook { return &m.book }

func (m *MockState) AddGold(ctx context.Context, amount int) {
	m.Called(ctx, amount)
}

func (m *MockState) AddReputation(ctx context.Context, amount int) int {
	args := m.Called(ctx, amount)
	return args.Int(0)
}

func (m *MockState) AddExperience(ctx context.Context, exp int) int {
	args := m.Called(ctx, exp)
	return args.Int(0)
}

func (m *MockState) AddMaterial(ctx context.Context, id string, amount int) bool {
	args := m.Called(ctx, id, amount)
	return args.Bool(0)
}

func (m *MockState) DiscoverRecipe(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockState) RecordEventCompleted() {
	m.Called()
}
