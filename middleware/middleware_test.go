package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pss-admin/logging"
	"github.com/pss-admin/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(auth *services.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(logging.NewNopLogger()))
	r.DELETE("/protected", AuthMiddleware(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return r
}

func newAuth(t *testing.T) *services.AuthService {
	hash, err := services.HashPassword("pw")
	require.NoError(t, err)
	return services.NewAuthService("key", hash, time.Hour)
}

func TestAuthMiddlewareDisabledPassesThrough(t *testing.T) {
	r := newEngine(services.NewAuthService("", "", 0))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/protected", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	r := newEngine(newAuth(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsBearerAndCookie(t *testing.T) {
	auth := newAuth(t)
	r := newEngine(auth)
	token, _, err := auth.GenerateToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newEngine(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/protected", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestLoggerTagsRequestID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "access.log")
	log, err := logging.New(logging.LogConfig{Level: "debug", Format: "json", Output: logPath})
	require.NoError(t, err)

	r := gin.New()
	r.Use(RequestID(), Logger(log))
	req := httptest.NewRequest(http.MethodGet, "/missing?page=2", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)
	log.Sync()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"warn"`)
	assert.Contains(t, string(data), `"request_id":"req-42"`)
	assert.Contains(t, string(data), `"path":"/missing?page=2"`)
	assert.Contains(t, string(data), `"status":404`)
}
