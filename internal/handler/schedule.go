package handler

import (
	"net/http"
	"strings"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ScheduleHandler serves the shared event schedule. Events are
// append-only: no update or delete routes.
type ScheduleHandler struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewScheduleHandler(db *gorm.DB, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{DB: db, Log: log}
}

type scheduleReq struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// List returns every schedule event.
func (h *ScheduleHandler) List(c *gin.Context) {
	events := make([]models.ScheduleEvent, 0)
	if err := h.DB.Find(&events).Error; err != nil {
		h.Log.Error().Err(err).Msg("list schedule failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch events.")
		return
	}
	util.JSON(c, http.StatusOK, events)
}

// Create appends an event.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Text) == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Date and text required.")
		return
	}

	event := models.ScheduleEvent{Date: req.Date, Text: req.Text}
	if err := h.DB.Create(&event).Error; err != nil {
		h.Log.Error().Err(err).Msg("create schedule event failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save event.")
		return
	}

	util.JSON(c, http.StatusCreated, event)
}
