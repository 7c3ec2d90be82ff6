package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gatherly/invitehub/internal/config"
	"gatherly/invitehub/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	inviteHandler *InviteHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/invites", inviteHandler.Create)
		api.GET("/invites/:id", inviteHandler.Snapshot)
		api.POST("/invites/:id/responses", inviteHandler.SubmitResponse)
		api.POST("/invites/:id/views", inviteHandler.RecordView)
		api.GET("/invites/:id/events", inviteHandler.Events)
	}

	return r
}
