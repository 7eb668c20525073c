package bootstrap

import (
	"eventdeck/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.IssuanceConfig {
			return cfg.Issuance
		},
	),
)
