// Package service contains the core logic for assembling the profile response.
// ProfileService merges the two sources:
//
//	Static: the profile fields loaded from configuration at startup
//	Dynamic: one random fact fetched from an external API per request
//
// The one design rule of the whole exercise lives here: an outbound failure
// never fails the inbound request. Assemble returns a value, not an error —
// when every provider fails, the configured fallback fact is substituted.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fleveque/profile-service/internal/model"
	"github.com/fleveque/profile-service/internal/provider"
)

// ProfileService assembles profile responses.
type ProfileService struct {
	profile   model.Profile
	providers []provider.FactProvider
	fallback  string
	logger    *zap.Logger
}

// NewProfileService creates a service with the fact providers wired up.
// Providers are tried in slice order; an empty slice is allowed and simply
// means every request gets the fallback fact.
func NewProfileService(
	profile model.Profile,
	providers []provider.FactProvider,
	fallback string,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profile:   profile,
		providers: providers,
		fallback:  fallback,
		logger:    logger,
	}
}

// Profile returns the static profile. Constant across calls.
func (s *ProfileService) Profile() model.Profile {
	return s.profile
}

// Assemble builds the full response for one request: static fields plus one
// freshly fetched fact. Note the signature — no error return. The fallback
// policy is encoded in the type, so handlers can't accidentally turn an
// upstream hiccup into a 5xx.
func (s *ProfileService) Assemble(ctx context.Context) model.ProfileResponse {
	return model.ProfileResponse{
		Profile: s.profile,
		Fact:    s.fetchFact(ctx),
	}
}

// fetchFact tries providers in order and degrades to the fallback string.
func (s *ProfileService) fetchFact(ctx context.Context) string {
	for _, p := range s.providers {
		fact, err := p.RandomFact(ctx)
		if err == nil {
			s.logger.Debug("fact fetched",
				zap.String("provider", p.Name()),
			)
			return fact
		}
		s.logger.Warn("fact provider failed",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
	}

	s.logger.Info("all fact providers failed, using fallback")
	return s.fallback
}
