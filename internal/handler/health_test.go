package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"store answers", nil, http.StatusOK, `{"status":"ok"}`},
		{"store down", errors.New("connection refused"), http.StatusServiceUnavailable, `{"status":"unavailable","message":"save store unreachable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := new(mockPinger)
			p.On("Ping", mock.Anything).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			HandleReadyz(p)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			p.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion("", "1.0.0")(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"dev"`)
	assert.Contains(t, rec.Body.String(), `"save_version":"1.0.0"`)
}
