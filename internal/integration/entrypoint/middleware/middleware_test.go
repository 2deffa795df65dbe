package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Felipaof/My-Fluxo-Finance/config"
	"github.com/Felipaof/My-Fluxo-Finance/internal/domain/entity"
	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/adapters"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(t *testing.T) (*gin.Engine, string, uuid.UUID) {
	t.Helper()

	tokens := adapters.NewTokenService("secret", time.Hour)
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	issued, err := tokens.GenerateToken(context.Background(), user)
	require.NoError(t, err)

	auth := NewAuthMiddleware(tokens)
	whoami := func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": "anonymous"})
			return
		}
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": id.String(), "email": email})
	}

	engine := gin.New()
	engine.GET("/private", auth.Authenticate(), whoami)
	engine.GET("/public", auth.OptionalAuthenticate(), whoami)
	return engine, issued.Token, user.ID
}

func serve(engine *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthenticate(t *testing.T) {
	engine, token, userID := newAuthEngine(t)

	tests := []struct {
		name           string
		prepare        func(req *http.Request)
		expectedStatus int
		expectedCode   domainerror.AuthErrorCode
	}{
		{
			name:           "bearer header",
			prepare:        func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) },
			expectedStatus: http.StatusOK,
		},
		{
			name: "cookie",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "header wins over cookie",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer garbage")
				req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeInvalidToken,
		},
		{
			name:           "missing token",
			prepare:        func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeMissingToken,
		},
		{
			name:           "wrong scheme",
			prepare:        func(req *http.Request) { req.Header.Set("Authorization", "Basic abc") },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeInvalidToken,
		},
		{
			name:           "empty bearer",
			prepare:        func(req *http.Request) { req.Header.Set("Authorization", "Bearer ") },
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeMissingToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.prepare(req)

			w, body := serve(engine, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, string(tt.expectedCode), body["code"])
			} else {
				assert.Equal(t, userID.String(), body["user"])
				assert.Equal(t, "ana@example.com", body["email"])
			}
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	engine, token, userID := newAuthEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w, body := serve(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", body["user"])

	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w, body = serve(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", body["user"])

	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w, body = serve(engine, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), body["user"])
}

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRateLimiterBlocksAfterMaxAttempts(t *testing.T) {
	rl := NewRateLimiterWithConfig(3, time.Minute)
	engine := newLimitedEngine(rl)

	for i := 0; i < 3; i++ {
		w, _ := serve(engine, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
	}

	w, body := serve(engine, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), body["code"])

	rl.Reset()
	w, _ = serve(engine, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterWindowExpires(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(1, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.allow("10.0.0.1"))

	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	assert.Empty(t, rl.entries)
}

func TestRateLimiterDisabledInTests(t *testing.T) {
	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		RateLimit: config.RateLimitConfig{LoginAttempts: 1, LoginWindow: time.Minute},
	}
	engine := newLimitedEngine(NewRateLimiter(cfg))

	for i := 0; i < 5; i++ {
		w, _ := serve(engine, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterRunCleanupStops(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Millisecond)
	rl.allow("10.0.0.1")

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		rl.RunCleanup(5*time.Millisecond, stop)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		return len(rl.entries) == 0
	}, time.Second, 5*time.Millisecond)

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
