package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quizforge/quizforge/internal/config"
)

// providerTimeout bounds a single completion call. One retry is attempted
// after a rate-limit response before moving to the next provider.
const (
	providerTimeout = 30 * time.Second
	rateLimitPause  = 2 * time.Second
)

type Service interface {
	// Generate asks the configured providers for count candidate questions.
	// It returns the candidates and the mean confidence across them. When
	// every provider fails it returns ErrUnavailable; callers decide whether
	// that is fatal for their flow.
	Generate(ctx context.Context, req GenerateRequest) ([]Candidate, float64, error)

	// Ask answers a free-text study question with the assistant prompt,
	// using the same provider fallback and retry policy as Generate.
	Ask(ctx context.Context, query string) (string, error)
}

type service struct {
	providers []Provider
}

func NewService(providers ...Provider) Service {
	return &service{providers: providers}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) ([]Candidate, float64, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(req.Topic) == "" {
		return nil, 0, errors.New("topic is required")
	}
	if req.Count <= 0 {
		return nil, 0, errors.New("count must be positive")
	}
	if len(s.providers) == 0 {
		return nil, 0, fmt.Errorf("%w: no providers configured", ErrUnavailable)
	}

	prompt := systemPrompt + "\n\n" + BuildPrompt(req)

	var lastErr error
	for _, p := range s.providers {
		raw, err := s.complete(ctx, p, prompt)
		if err != nil {
			log.WithError(err).WithField("provider", p.Name()).Warn("Provider failed, trying next")
			lastErr = err
			continue
		}

		candidates, confidence, ok := ParseCandidates(raw)
		if !ok {
			log.WithField("provider", p.Name()).Warn("Provider returned unparseable output")
			lastErr = fmt.Errorf("%w: unparseable response", ErrProvider)
			continue
		}

		log.WithField("provider", p.Name()).
			WithField("count", len(candidates)).
			Info("Questions generated")
		return candidates, confidence, nil
	}

	return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (s *service) Ask(ctx context.Context, query string) (string, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(query) == "" {
		return "", errors.New("query is required")
	}
	if len(s.providers) == 0 {
		return "", fmt.Errorf("%w: no providers configured", ErrUnavailable)
	}

	prompt := assistantPrompt + "\n\n" + strings.TrimSpace(query)

	var lastErr error
	for _, p := range s.providers {
		raw, err := s.complete(ctx, p, prompt)
		if err != nil {
			log.WithError(err).WithField("provider", p.Name()).Warn("Provider failed, trying next")
			lastErr = err
			continue
		}

		answer := strings.TrimSpace(raw)
		if answer == "" {
			lastErr = fmt.Errorf("%w: empty response", ErrProvider)
			continue
		}

		log.WithField("provider", p.Name()).Info("Assistant query answered")
		return answer, nil
	}

	if errors.Is(lastErr, ErrRateLimit) {
		return "", fmt.Errorf("%w: all providers throttled", ErrRateLimit)
	}
	return "", fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (s *service) complete(ctx context.Context, p Provider, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	raw, err := p.Complete(callCtx, prompt)
	if err == nil || !errors.Is(err, ErrRateLimit) {
		return raw, err
	}

	select {
	case <-time.After(rateLimitPause):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	retryCtx, cancelRetry := context.WithTimeout(ctx, providerTimeout)
	defer cancelRetry()
	return p.Complete(retryCtx, prompt)
}
