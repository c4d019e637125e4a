package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nextstep/internal/middleware"
	"nextstep/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, _ := scope.FromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": sc.UserID})
	})
	return r
}

func TestAuth(t *testing.T) {
	manager := scope.NewManager("test-secret", time.Hour)
	mw := middleware.New(&mockLogger{}, manager, middleware.RateLimitConfig{})
	r := newRouter(mw)

	t.Run("Valid Token", func(t *testing.T) {
		token, err := manager.Generate("user-1")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		other := scope.NewManager("other-secret", time.Hour)
		token, _ := other.Generate("user-1")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := scope.NewManager("test-secret", time.Hour)
	mw := middleware.New(&mockLogger{}, manager, middleware.RateLimitConfig{
		RequestsPerMinute: 60,
		Burst:             2,
	})

	r := gin.New()
	r.POST("/ai", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, _ := manager.Generate("user-1")
	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/ai", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request must pass, got %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("burst request must pass, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}

	t.Run("Other User Unaffected", func(t *testing.T) {
		otherToken, _ := manager.Generate("user-2")
		req := httptest.NewRequest(http.MethodPost, "/ai", nil)
		req.Header.Set("Authorization", "Bearer "+otherToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("limits must be per client, got %d", w.Code)
		}
	})
}
