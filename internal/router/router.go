package router

import (
	"backoffice/internal/config"
	"backoffice/internal/handler"
	"backoffice/internal/logging"
	"backoffice/internal/middleware"
	"backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, middleware chain and the /api
// route table.
func SetupRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		logging.GinMiddleware(log),
		gin.Recovery(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	api := r.Group("/api")

	// auth endpoints, no token required
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours, cfg.Security.BcryptCost, log)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// everything else requires a bearer token
	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWT.Secret))
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	protected.GET("/me", handler.GetMe(db))

	entryHandler := handler.NewEntryHandler(db, log)
	protected.GET("/entries", entryHandler.List)
	protected.POST("/entries", entryHandler.Create)
	protected.PUT("/entries/:id", adminOnly, entryHandler.Update)
	protected.DELETE("/entries/:id", adminOnly, entryHandler.Delete)

	exportHandler := handler.NewExportHandler(db, log)
	protected.GET("/entries/export/csv", exportHandler.CSV)
	protected.GET("/entries/export/xlsx", exportHandler.XLSX)

	unitHandler := handler.NewUnitHandler(db, log)
	protected.GET("/units", unitHandler.List)
	protected.GET("/units/:name", unitHandler.GetByName)
	protected.POST("/units", adminOnly, unitHandler.Create)
	protected.PUT("/units/:id", adminOnly, unitHandler.Update)
	protected.DELETE("/units/:id", adminOnly, unitHandler.Delete)

	todoHandler := handler.NewTodoHandler(db, log)
	protected.GET("/todos", todoHandler.List)
	protected.POST("/todos", todoHandler.Create)
	protected.PATCH("/todos/:id/toggle", todoHandler.Toggle)
	protected.DELETE("/todos/:id", todoHandler.Delete)

	scheduleHandler := handler.NewScheduleHandler(db, log)
	protected.GET("/schedule", scheduleHandler.List)
	protected.POST("/schedule", scheduleHandler.Create)

	logHandler := handler.NewLogHandler(db, log)
	protected.GET("/logs", logHandler.List)

	return r
}
