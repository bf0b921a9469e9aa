package provider

import (
	"go.uber.org/zap"

	"github.com/fleveque/profile-service/internal/config"
)

// FromConfig builds the provider chain in the configured order.
// Unknown names are skipped with a warning rather than failing startup —
// a typo in the config shouldn't take the service down, it just narrows
// the chain.
func FromConfig(cfg config.FactsConfig, logger *zap.Logger) []FactProvider {
	providers := make([]FactProvider, 0, len(cfg.ProviderOrder))

	for _, name := range cfg.ProviderOrder {
		switch name {
		case "catfact":
			providers = append(providers, NewCatFactProvider(cfg.CatFactURL, cfg.Timeout(), logger))
		case "uselessfacts":
			providers = append(providers, NewUselessFactsProvider(cfg.UselessFactsURL, cfg.Timeout(), logger))
		default:
			logger.Warn("unknown fact provider in config, skipping",
				zap.String("provider", name),
			)
		}
	}

	return providers
}
