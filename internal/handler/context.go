package handler

import (
	"backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

// currentUser returns the identity and role Auth placed in the context.
func currentUser(c *gin.Context) (username, role string, ok bool) {
	username = c.GetString(middleware.CtxUsername)
	role = c.GetString(middleware.CtxRole)
	return username, role, username != ""
}
