package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodo_ScopedToOwner(t *testing.T) {
	r := newTestRouter(t)
	alice := registerUser(t, r, "alice", "employee")
	bob := registerUser(t, r, "bob", "employee")

	w := doJSON(t, r, http.MethodPost, "/api/todos", alice, map[string]string{"text": "file the returns"})
	require.Equal(t, http.StatusCreated, w.Code)
	var todo models.Todo
	decodeJSON(t, w, &todo)
	assert.Equal(t, "alice", todo.User)
	assert.False(t, todo.Completed)

	// bob sees nothing
	w = doJSON(t, r, http.MethodGet, "/api/todos", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// bob cannot toggle or delete alice's todo
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/todos/%d/toggle", todo.ID), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/todos/%d", todo.ID), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// alice still has it
	w = doJSON(t, r, http.MethodGet, "/api/todos", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var todos []models.Todo
	decodeJSON(t, w, &todos)
	assert.Len(t, todos, 1)
}

func TestTodo_ToggleFlipsCompleted(t *testing.T) {
	r := newTestRouter(t)
	alice := registerUser(t, r, "alice", "employee")

	w := doJSON(t, r, http.MethodPost, "/api/todos", alice, map[string]string{"text": "chase the invoice"})
	require.Equal(t, http.StatusCreated, w.Code)
	var todo models.Todo
	decodeJSON(t, w, &todo)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/todos/%d/toggle", todo.ID), alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &todo)
	assert.True(t, todo.Completed)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/todos/%d/toggle", todo.ID), alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &todo)
	assert.False(t, todo.Completed)
}

func TestTodo_Validation(t *testing.T) {
	r := newTestRouter(t)
	alice := registerUser(t, r, "alice", "employee")

	w := doJSON(t, r, http.MethodPost, "/api/todos", alice, map[string]string{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/todos", alice, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodo_DeleteOwn(t *testing.T) {
	r := newTestRouter(t)
	alice := registerUser(t, r, "alice", "employee")

	w := doJSON(t, r, http.MethodPost, "/api/todos", alice, map[string]string{"text": "order toner"})
	require.Equal(t, http.StatusCreated, w.Code)
	var todo models.Todo
	decodeJSON(t, w, &todo)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/todos/%d", todo.ID), alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/todos", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
