package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/revel-xyz/revel-gate/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Drop management (creation and status transitions require authentication)
		v1.POST("/drops", middleware.Auth(authCfg), handler.CreateDrop)
		v1.PATCH("/drops/:id/status", middleware.Auth(authCfg), handler.UpdateDropStatus)

		// Drop catalogue (public read access)
		v1.GET("/drops", handler.ListDrops)
		v1.GET("/drops/:id", handler.GetDrop)

		// Access evaluation (the viewer wallet is always an explicit parameter)
		v1.GET("/drops/:id/access", handler.GetAccess)

		// Drop activity
		v1.POST("/drops/:id/views", handler.RecordView)
		v1.POST("/drops/:id/unlocks", handler.Unlock)
		v1.GET("/drops/:id/unlocks/:wallet", handler.GetUnlockStatus)

		// Unlock ledger audit (requires authentication)
		v1.GET("/drops/:id/unlocks", middleware.Auth(authCfg), handler.ListUnlocks)
	}
}
