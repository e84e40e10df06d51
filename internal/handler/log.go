package handler

import (
	"net/http"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// recordAction appends to the action log after a mutation has succeeded.
// Best-effort: a logging failure must never fail the operation it
// describes, and callers only invoke it once the change is persisted.
func recordAction(db *gorm.DB, action, performedBy string) {
	_ = db.Create(&models.ActionLog{
		Action:      action,
		PerformedBy: performedBy,
		Timestamp:   time.Now().Format(time.RFC3339),
	}).Error
}

// LogHandler serves the audit trail.
type LogHandler struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewLogHandler(db *gorm.DB, log zerolog.Logger) *LogHandler {
	return &LogHandler{DB: db, Log: log}
}

// List returns action log entries newest first. Admins see everything;
// everyone else sees only their own actions.
func (h *LogHandler) List(c *gin.Context) {
	username, role, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied.")
		return
	}

	q := h.DB.Model(&models.ActionLog{})
	if role != models.RoleAdmin {
		q = q.Where("performed_by = ?", username)
	}

	logs := make([]models.ActionLog, 0)
	if err := q.Order("timestamp DESC").Find(&logs).Error; err != nil {
		h.Log.Error().Err(err).Msg("list logs failed")
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch logs.")
		return
	}

	util.JSON(c, http.StatusOK, logs)
}
