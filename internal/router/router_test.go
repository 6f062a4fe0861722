package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.Admin), args.Error(2)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*model.Admin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"well-formed", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"bare token without scheme", "abc123", ""},
		{"scheme only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bearerToken(tt.header))
		})
	}
}

func TestRequireSession(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error {
		admin := c.Get("admin").(*model.Admin)
		return c.String(http.StatusOK, admin.Username)
	}

	t.Run("valid token reaches the handler", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Verify", mock.Anything, "tok-ok").Return(&model.Admin{ID: 1, Username: "admin"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok-ok")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireSession(mockAuth)(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Body.String())
		assert.Equal(t, "tok-ok", c.Get("session_token"))
	})

	t.Run("rejected token yields 401 envelope", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Verify", mock.Anything, "tok-bad").Return(nil, apperrors.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok-bad")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireSession(mockAuth)(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"authentication required"}`, rec.Body.String())
	})

	t.Run("missing header yields 401", func(t *testing.T) {
		mockAuth := new(MockAuthService)
		mockAuth.On("Verify", mock.Anything, "").Return(nil, apperrors.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequireSession(mockAuth)(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
