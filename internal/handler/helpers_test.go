package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/models"
	"backoffice/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

// newTestRouter spins up the full route table over a fresh in-memory
// database, so tests exercise the same middleware chain as production.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	// named shared-cache DSN so the pool's connections see one database
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		JWT:      config.JWTConfig{Secret: testJWTSecret, Issuer: "test", ExpireHours: 1},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
	return router.SetupRouter(cfg, db, zerolog.Nop())
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, r *gin.Engine, username, role string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"password": "secret-pass",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createUnit adds a unit through the API using an admin token.
func createUnit(t *testing.T, r *gin.Engine, adminToken, name string) models.Unit {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/units", adminToken, map[string]string{
		"name":    name,
		"address": "12 Industrial Estate",
		"contact": "+91 98765",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var unit models.Unit
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unit))
	return unit
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
