package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultModel = "gpt-4o-mini"

	// Low temperature and a fixed output ceiling keep summaries
	// consistent across regenerations of the same document.
	defaultTemperature     = 0.3
	defaultTopP            = 0.8
	defaultMaxOutputTokens = 2048
)

// Options are the sampling settings carried alongside every prompt.
type Options struct {
	Model           string
	Temperature     float64
	TopP            float64
	MaxOutputTokens int64
}

func (o *Options) defaults() {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.Temperature == 0 {
		o.Temperature = defaultTemperature
	}
	if o.TopP == 0 {
		o.TopP = defaultTopP
	}
	if o.MaxOutputTokens == 0 {
		o.MaxOutputTokens = defaultMaxOutputTokens
	}
}

// Config configures the OpenAI-backed generator. The API key is passed
// in explicitly; nothing in this package reads ambient process state.
type Config struct {
	APIKey  string
	Options Options
}

// OpenAIGenerator produces summaries via the Chat Completions API.
type OpenAIGenerator struct {
	client openai.Client
	opts   Options
}

// NewOpenAIGenerator builds a generator from an explicit configuration.
func NewOpenAIGenerator(cfg Config) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	cfg.Options.defaults()
	return &OpenAIGenerator{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		opts:   cfg.Options,
	}, nil
}

// Generate sends the prompt and returns the completion text.
func (g *OpenAIGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.opts.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(promptText),
		},
		Temperature:         openai.Float(g.opts.Temperature),
		TopP:                openai.Float(g.opts.TopP),
		MaxCompletionTokens: openai.Int(g.opts.MaxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion choices are missing")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("no summary generated")
	}

	return summary, nil
}

// ListModels returns the model IDs available to the configured key.
func (g *OpenAIGenerator) ListModels(ctx context.Context) ([]string, error) {
	page, err := g.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
