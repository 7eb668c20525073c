package bootstrap

import (
	"eventdeck/internal/infra/ai"
	"eventdeck/internal/pkg/config"
	"eventdeck/internal/usecase/commands"

	"go.uber.org/fx"
)

var AIModule = fx.Module("ai",
	fx.Provide(
		fx.Annotate(
			NewCompletionClient,
			fx.As(new(commands.CompletionClient)),
		),
	),
)

func NewCompletionClient(cfg config.Config) *ai.OpenAIClient {
	return ai.NewOpenAIClient(cfg.AI)
}
