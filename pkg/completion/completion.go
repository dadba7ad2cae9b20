// Package completion provides a chat completion client for language model providers.
package completion

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Request describes a single chat completion exchange.
type Request struct {
	System      string
	User        string
	JSONMode    bool
	Temperature *float64
	MaxTokens   *int64
}

// Service executes chat completions against a language model provider.
type Service interface {
	// Complete sends the request and returns the model's reply text.
	Complete(ctx context.Context, req Request) (string, error)
	// Model returns the configured model identifier.
	Model() string
}

type service struct {
	client openai.Client
	model  string
}

// New creates a completion service from the given configuration.
func New(cfg *Config) Service {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Token),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &service{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (s *service) Model() string {
	return s.model
}

func (s *service) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}

	if req.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(*req.MaxTokens)
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrCompletion)
	}

	return resp.Choices[0].Message.Content, nil
}
