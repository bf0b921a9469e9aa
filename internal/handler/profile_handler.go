package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/profile-service/internal/service"
)

// ProfileHandler serves the profile endpoint.
// It delegates to ProfileService, which merges the static fields with one
// freshly fetched fact (or the fallback).
type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler with the profile service.
func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile serves the merged profile.
// Route: GET /api/v1/profile
//
// This handler produces exactly one status code: 200. Assemble has no error
// return — fact-fetch failures are absorbed by the service's fallback policy,
// so there is nothing here to turn into a 5xx. Unknown routes and methods
// fall through to Gin's own 404 handling.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	resp := h.profileService.Assemble(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}
