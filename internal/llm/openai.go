package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/subtexthq/subtext/internal/config"
)

// OpenAI client implementation
type OpenAI struct {
	client *openai.Client
	cfg    *config.OpenAIConfig
}

func NewOpenAI(cfg *config.OpenAIConfig) (*OpenAI, error) {
	var client *openai.Client

	switch cfg.Provider {
	case "azure":
		client = openai.NewClient(
			azure.WithEndpoint(cfg.APIEndpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	default: // "openai"
		client = openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.APIEndpoint),
		)
	}

	return &OpenAI{
		client: client,
		cfg:    cfg,
	}, nil
}

func (o *OpenAI) Complete(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	// Apply options
	options := &Options{
		Model:       o.cfg.Model,
		Temperature: 0.7,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		opt(options)
	}

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model: openai.F(options.Model),
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			}),
			Temperature: openai.F(options.Temperature),
			MaxTokens:   openai.F(options.MaxTokens),
		},
	)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
