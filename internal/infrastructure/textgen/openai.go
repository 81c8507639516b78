package textgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	DefaultOpenAIModel = "gpt-3.5-turbo"

	maxTokens   = 500
	temperature = 0.7
)

var ErrAPIKeyNotSet = errors.New("api key not set")

type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI builds the provider. Extra options are appended after the API key,
// which lets tests point the client at a local server.
func NewOpenAI(apiKey, model string, opts ...option.RequestOption) (*OpenAI, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrAPIKeyNotSet
	}
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultOpenAIModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAI{client: openai.NewClient(opts...), model: model}, nil
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Model() string { return p.model }

func (p *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
