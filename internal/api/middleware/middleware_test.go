package middleware

import (
	"Todak/internal/pkg/redis"
	"Todak/internal/pkg/security"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(tokens *security.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware(), CORSMiddleware())
	r.GET("/me", AuthMiddleware(tokens, redis.NewCache(nil, 0)), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		token, claims := CurrentToken(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "hasToken": token != "", "loginId": claims.LoginID})
	})
	r.GET("/users/:id", AuthMiddleware(tokens, redis.NewCache(nil, 0)), func(c *gin.Context) {
		if !RequireSelf(c, 7) {
			return
		}
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenIssuer("secret", "Todak", time.Hour)
	r := newAuthRouter(tokens)
	token, err := tokens.GenerateToken(7, "alice")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Token " + token, http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"ok", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, tc.name)
		assert.NotEmpty(t, w.Header().Get(TraceHeader), tc.name)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"id":7,"hasToken":true,"loginId":"alice"}`, w.Body.String())

	other := security.NewTokenIssuer("other-secret", "Todak", time.Hour)
	forged, err := other.GenerateToken(7, "alice")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSelf(t *testing.T) {
	tokens := security.NewTokenIssuer("secret", "Todak", time.Hour)
	r := newAuthRouter(tokens)

	self, err := tokens.GenerateToken(7, "alice")
	require.NoError(t, err)
	other, err := tokens.GenerateToken(8, "bob")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	req.Header.Set("Authorization", "Bearer "+self)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/7", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":403`)
}

func TestTraceKeepsUpstreamID(t *testing.T) {
	r := newAuthRouter(security.NewTokenIssuer("secret", "Todak", time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set(TraceHeader, "trace-1")
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "trace-1", w.Header().Get(TraceHeader))
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRedactBody(t *testing.T) {
	out := redactBody([]byte(`{"loginId":"alice","password":"p\"w1"}`))
	assert.Equal(t, `{"loginId":"alice","password":"***"}`, out)
}
