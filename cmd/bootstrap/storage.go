package bootstrap

import (
	"eventdeck/internal/infra/artifact"
	"eventdeck/internal/infra/objectstore"
	"eventdeck/internal/pkg/config"
	"eventdeck/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewObjectStore,
			fx.As(new(commands.ObjectStore)),
		),
		fx.Annotate(
			artifact.NewQREncoder,
			fx.As(new(commands.ArtifactEncoder)),
		),
	),
)

func NewObjectStore(cfg config.Config) (*objectstore.MinioStore, error) {
	return objectstore.NewMinioStore(cfg.ObjectStore)
}
