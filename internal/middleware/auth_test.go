package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/middleware"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", middleware.Auth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user": c.GetString(middleware.CtxUsername),
			"role": c.GetString(middleware.CtxRole),
		})
	})
	r.GET("/admin", middleware.Auth(secret), middleware.RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	r := newTestEngine()
	w := get(r, "/open", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := newTestEngine()
	w := get(r, "/open", "garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token, err := util.GenerateToken(secret, "", "alice", "employee", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	r := newTestEngine()
	w := get(r, "/open", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	token, err := util.GenerateToken(secret, "", "alice", "employee", time.Hour)
	require.NoError(t, err)

	r := newTestEngine()
	w := get(r, "/open", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), "employee")
}

func TestRequireRole_EmployeeRejected(t *testing.T) {
	token, err := util.GenerateToken(secret, "", "bob", "employee", time.Hour)
	require.NoError(t, err)

	r := newTestEngine()
	w := get(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	token, err := util.GenerateToken(secret, "", "alice", "admin", time.Hour)
	require.NoError(t, err)

	r := newTestEngine()
	w := get(r, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
