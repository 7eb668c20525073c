package bootstrap

import (
	"eventdeck/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	StorageModule,
	AIModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
