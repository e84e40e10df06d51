package handler

import (
	"errors"
	"net/http"

	"backoffice/internal/models"
	"backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMe returns the current user's profile (requires Auth).
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, _, ok := currentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Access denied.")
			return
		}

		var user models.User
		if err := db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Error(c, http.StatusNotFound, util.CodeNotFound, "User not found.")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to fetch profile.")
			}
			return
		}

		util.JSON(c, http.StatusOK, gin.H{
			"username":   user.Username,
			"role":       user.Role,
			"created_at": user.CreatedAt,
		})
	}
}
