package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// Provider is a text-completion backend. Implementations return the raw
// model output and classify failures as ErrAuthentication, ErrRateLimit or
// ErrProvider so the service can decide whether to retry or fall back.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds the primary provider. The client reads
// GEMINI_API_KEY from the environment; LLM_MODEL overrides the default
// model.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGenaiError(err)
	}

	raw := result.Text()
	if raw == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrProvider)
	}
	return raw, nil
}

func classifyGenaiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return fmt.Errorf("%w: %s", ErrAuthentication, apiErr.Message)
		case 429:
			return fmt.Errorf("%w: %s", ErrRateLimit, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrProvider, err)
}
