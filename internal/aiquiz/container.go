package aiquiz

import (
	"context"
	"os"

	"github.com/quizforge/quizforge/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

// NewAIQuizContainer wires whichever providers have credentials in the
// environment. Gemini is the primary, OpenAI the fallback; running with
// none configured is allowed and makes generation return ErrUnavailable.
func NewAIQuizContainer(ctx context.Context) *AIQuizContainer {
	log := config.WithContext(ctx)

	var providers []Provider
	if os.Getenv("GEMINI_API_KEY") != "" {
		gemini, err := NewGeminiProvider(ctx)
		if err != nil {
			log.WithError(err).Warn("Gemini provider unavailable")
		} else {
			providers = append(providers, gemini)
		}
	}
	if os.Getenv("OPENAI_API_KEY") != "" {
		openai, err := NewOpenAIProvider()
		if err != nil {
			log.WithError(err).Warn("OpenAI provider unavailable")
		} else {
			providers = append(providers, openai)
		}
	}
	if len(providers) == 0 {
		log.Warn("No LLM providers configured, AI generation disabled")
	}

	service := NewService(providers...)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
