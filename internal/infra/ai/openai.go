// Package ai holds the completion-API pass-through used by the budget
// advisor. No decision logic lives here; the advisor shapes the data and
// this client only relays the rendered prompt.
package ai

import (
	"context"

	"eventdeck/internal/pkg/config"
	"eventdeck/internal/pkg/errs"

	openai "github.com/sashabaranov/go-openai"
)

var ErrCompletionFailed = errs.New("completion request failed")

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", errs.Mark(err, ErrCompletionFailed)
	}
	if len(resp.Choices) == 0 {
		return "", ErrCompletionFailed
	}
	return resp.Choices[0].Message.Content, nil
}
