package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_IssuesTokenAndPublicUser(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "Alice",
		"password": "secret-pass",
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	decodeJSON(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username) // case-normalized
	assert.Equal(t, "admin", resp.User.Role)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestRegister_Validation(t *testing.T) {
	r := newTestRouter(t)

	cases := []map[string]string{
		{"password": "x", "role": "admin"},                       // no username
		{"username": "bob", "role": "admin"},                     // no password
		{"username": "bob", "password": "x"},                     // no role
		{"username": "bob", "password": "x", "role": "overlord"}, // bad role
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}
}

func TestRegister_DuplicateUsernameAnyCase(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "carol", "employee")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "CAROL",
		"password": "another-pass",
		"role":     "employee",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_StatusMatrix(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "dave", "employee")

	// correct credentials
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "dave", "password": "secret-pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// wrong password
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "dave", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// unknown username
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody", "password": "secret-pass",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing fields
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "dave",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_TokenGrantsEntryAccess(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "erin", "employee")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "erin", "password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &resp)

	w = doJSON(t, r, http.MethodGet, "/api/entries", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestEntries_RequireToken(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/entries", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
