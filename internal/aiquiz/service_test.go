package aiquiz

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	name   string
	output string
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.output, s.err
}

const validOutput = `[{"question_text": "Q", "choices": [{"text": "A", "is_correct": true}, {"text": "B", "is_correct": false}], "confidence": 0.9}]`

func TestGenerateFallsBackToSecondary(t *testing.T) {
	primary := &stubProvider{name: "primary", err: ErrProvider}
	secondary := &stubProvider{name: "secondary", output: validOutput}
	svc := NewService(primary, secondary)

	req := GenerateRequest{Topic: "Math", Count: 1, Difficulty: "EASY", QuestionType: "MULTIPLE_CHOICE"}
	candidates, confidence, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", confidence)
	}
	if primary.calls == 0 || secondary.calls == 0 {
		t.Errorf("expected both providers to be tried, got primary=%d secondary=%d", primary.calls, secondary.calls)
	}
}

func TestGenerateAllProvidersFail(t *testing.T) {
	svc := NewService(
		&stubProvider{name: "primary", err: ErrAuthentication},
		&stubProvider{name: "secondary", output: "not json at all"},
	)

	req := GenerateRequest{Topic: "Math", Count: 1, Difficulty: "EASY", QuestionType: "MULTIPLE_CHOICE"}
	candidates, confidence, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrUnavailable", err)
	}
	if len(candidates) != 0 || confidence != 0 {
		t.Errorf("expected empty result, got %d candidates, confidence %v", len(candidates), confidence)
	}
}

func TestGenerateRetriesOnRateLimit(t *testing.T) {
	limited := &stubProvider{name: "primary", err: ErrRateLimit}
	svc := NewService(limited)

	req := GenerateRequest{Topic: "Math", Count: 1, Difficulty: "EASY", QuestionType: "MULTIPLE_CHOICE"}
	if _, _, err := svc.Generate(context.Background(), req); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrUnavailable", err)
	}
	if limited.calls != 2 {
		t.Errorf("expected one retry after rate limit, got %d calls", limited.calls)
	}
}

func TestAskFallsBackToSecondary(t *testing.T) {
	primary := &stubProvider{name: "primary", err: ErrProvider}
	secondary := &stubProvider{name: "secondary", output: "Photosynthesis converts light into chemical energy."}
	svc := NewService(primary, secondary)

	answer, err := svc.Ask(context.Background(), "What is photosynthesis?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if answer != "Photosynthesis converts light into chemical energy." {
		t.Errorf("unexpected answer %q", answer)
	}
	if primary.calls == 0 || secondary.calls == 0 {
		t.Errorf("expected both providers to be tried, got primary=%d secondary=%d", primary.calls, secondary.calls)
	}
}

func TestAskSurfacesRateLimit(t *testing.T) {
	svc := NewService(&stubProvider{name: "primary", err: ErrRateLimit})

	_, err := svc.Ask(context.Background(), "Explain mitosis")
	if !errors.Is(err, ErrRateLimit) {
		t.Fatalf("Ask() error = %v, want ErrRateLimit", err)
	}
}

func TestAskValidatesQuery(t *testing.T) {
	svc := NewService(&stubProvider{name: "p", output: "answer"})

	if _, err := svc.Ask(context.Background(), "   "); err == nil {
		t.Error("expected error for blank query")
	}
}

func TestAskAllProvidersFail(t *testing.T) {
	svc := NewService(
		&stubProvider{name: "primary", err: ErrAuthentication},
		&stubProvider{name: "secondary", output: "   "},
	)

	if _, err := svc.Ask(context.Background(), "Explain osmosis"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Ask() error = %v, want ErrUnavailable", err)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	svc := NewService(&stubProvider{name: "p", output: validOutput})

	if _, _, err := svc.Generate(context.Background(), GenerateRequest{Count: 1}); err == nil {
		t.Error("expected error for missing topic")
	}
	if _, _, err := svc.Generate(context.Background(), GenerateRequest{Topic: "T"}); err == nil {
		t.Error("expected error for non-positive count")
	}
}
