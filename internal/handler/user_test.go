package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "Alice", "employee")

	w := doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var me struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	decodeJSON(t, w, &me)
	assert.Equal(t, "alice", me.Username) // case-normalized at registration
	assert.Equal(t, "employee", me.Role)

	w = doJSON(t, r, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
