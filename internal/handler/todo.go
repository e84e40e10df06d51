package handler

import (
	"errors"
	"net/http"
	"strings"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// TodoHandler serves personal to-do items. Every operation is scoped to
// the authenticated caller; another user's ids behave as if they do not
// exist.
type TodoHandler struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewTodoHandler(db *gorm.DB, log zerolog.Logger) *TodoHandler {
	return &TodoHandler{DB: db, Log: log}
}

type todoReq struct {
	Text string `json:"text"`
}

// List returns the caller's todos, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	username, _, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied.")
		return
	}

	todos := make([]models.Todo, 0)
	if err := h.DB.Where("user = ?", username).
		Order("created_at DESC").
		Find(&todos).Error; err != nil {
		h.Log.Error().Err(err).Msg("list todos failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error while fetching todos.")
		return
	}

	util.JSON(c, http.StatusOK, todos)
}

// Create adds a todo for the caller.
func (h *TodoHandler) Create(c *gin.Context) {
	username, _, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied.")
		return
	}

	var req todoReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Text is required.")
		return
	}

	todo := models.Todo{User: username, Text: req.Text, Completed: false}
	if err := h.DB.Create(&todo).Error; err != nil {
		h.Log.Error().Err(err).Msg("create todo failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error while creating todo.")
		return
	}

	util.JSON(c, http.StatusCreated, todo)
}

// Toggle flips a todo's completed flag.
func (h *TodoHandler) Toggle(c *gin.Context) {
	username, _, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied.")
		return
	}

	var todo models.Todo
	if err := h.DB.Where("id = ? AND user = ?", c.Param("id"), username).
		First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Todo not found.")
		} else {
			h.Log.Error().Err(err).Msg("toggle todo: lookup failed")
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error while toggling todo.")
		}
		return
	}

	todo.Completed = !todo.Completed
	if err := h.DB.Save(&todo).Error; err != nil {
		h.Log.Error().Err(err).Msg("toggle todo failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error while toggling todo.")
		return
	}

	util.JSON(c, http.StatusOK, todo)
}

// Delete removes one of the caller's todos.
func (h *TodoHandler) Delete(c *gin.Context) {
	username, _, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied.")
		return
	}

	res := h.DB.Where("id = ? AND user = ?", c.Param("id"), username).
		Delete(&models.Todo{})
	if res.Error != nil {
		h.Log.Error().Err(res.Error).Msg("delete todo failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Server error while deleting todo.")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Todo not found.")
		return
	}

	util.JSON(c, http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
