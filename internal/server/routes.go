// Package server configures the HTTP server and routes.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/profile-service/internal/config"
	"github.com/fleveque/profile-service/internal/handler"
	"github.com/fleveque/profile-service/internal/middleware"
	"github.com/fleveque/profile-service/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the Gin engine.
// In Go, we pass dependencies explicitly — no DI container, no magic.
// Each handler gets exactly the dependencies it needs.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, profileService *service.ProfileService, logger *zap.Logger) {
	healthHandler := handler.NewHealthHandler()
	profileHandler := handler.NewProfileHandler(profileService, logger)

	// Public endpoints (no middleware)
	r.GET("/healthz", healthHandler.Healthz)

	// CORS and rate limiting apply to the entire API group.
	api := r.Group("/api/v1")
	api.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	{
		api.GET("/profile", profileHandler.GetProfile)
	}
}
