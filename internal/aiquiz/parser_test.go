package aiquiz

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseCandidates(t *testing.T) {
	t.Run("PlainArray", func(t *testing.T) {
		raw := `[{"question_text": "What is 2+2?", "choices": [{"text": "4", "is_correct": true}, {"text": "5", "is_correct": false}], "explanation": "basic addition", "confidence": 0.9}]`

		candidates, confidence, ok := ParseCandidates(raw)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		if len(candidates) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(candidates))
		}
		if candidates[0].QuestionText != "What is 2+2?" {
			t.Errorf("unexpected question text %q", candidates[0].QuestionText)
		}
		if confidence != 0.9 {
			t.Errorf("confidence = %v, want 0.9", confidence)
		}
	})

	t.Run("MarkdownFences", func(t *testing.T) {
		raw := "```json\n[{\"question_text\": \"Q\", \"correct_answer\": \"A\", \"confidence\": 0.8}]\n```"

		candidates, confidence, ok := ParseCandidates(raw)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		if candidates[0].CorrectAnswer != "A" {
			t.Errorf("unexpected correct answer %q", candidates[0].CorrectAnswer)
		}
		if confidence != 0.8 {
			t.Errorf("confidence = %v, want 0.8", confidence)
		}
	})

	t.Run("ArrayEmbeddedInProse", func(t *testing.T) {
		raw := `Here are your questions: [{"question_text": "Q1", "confidence": 0.6}] hope they help!`

		candidates, _, ok := ParseCandidates(raw)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		if len(candidates) != 1 || candidates[0].QuestionText != "Q1" {
			t.Errorf("unexpected candidates %+v", candidates)
		}
	})

	t.Run("BracketsInsideStrings", func(t *testing.T) {
		raw := `[{"question_text": "Which slice is [1:3]?", "confidence": 1.0}]`

		candidates, _, ok := ParseCandidates(raw)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		if candidates[0].QuestionText != "Which slice is [1:3]?" {
			t.Errorf("unexpected question text %q", candidates[0].QuestionText)
		}
	})

	t.Run("MissingConfidenceDefaults", func(t *testing.T) {
		raw := `[{"question_text": "Q1"}, {"question_text": "Q2", "confidence": 0.5}]`

		_, confidence, ok := ParseCandidates(raw)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		want := (defaultConfidence + 0.5) / 2
		if math.Abs(confidence-want) > 1e-9 {
			t.Errorf("confidence = %v, want %v", confidence, want)
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		for _, raw := range []string{"", "no json here", `[{"question_text": unterminated`, `{"not": "an array"}`} {
			if _, confidence, ok := ParseCandidates(raw); ok || confidence != 0 {
				t.Errorf("ParseCandidates(%q) = ok=%v conf=%v, want failure", raw, ok, confidence)
			}
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Run("ShortStringUntouched", func(t *testing.T) {
		if got := Truncate("hello", 10); got != "hello" {
			t.Errorf("Truncate() = %q, want %q", got, "hello")
		}
	})

	t.Run("BacksUpToRuneStart", func(t *testing.T) {
		// "a" + two 3-byte euro signs; a 5-byte cut lands mid-rune.
		s := "a€€"
		got := Truncate(s, 5)
		if got != "a€" {
			t.Errorf("Truncate() = %q, want %q", got, "a€")
		}
		if !utf8.ValidString(got) {
			t.Error("truncated string is not valid UTF-8")
		}
	})

	t.Run("ExactBoundary", func(t *testing.T) {
		if got := Truncate("a€€", 4); got != "a€" {
			t.Errorf("Truncate() = %q, want %q", got, "a€")
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Run("TruncatesContext", func(t *testing.T) {
		long := make([]byte, contextBudget+500)
		for i := range long {
			long[i] = 'x'
		}

		prompt := BuildPrompt(GenerateRequest{
			Topic:        "Biology",
			Count:        5,
			Difficulty:   "MEDIUM",
			QuestionType: "MULTIPLE_CHOICE",
			Context:      string(long),
		})
		if len(prompt) > contextBudget+1000 {
			t.Errorf("prompt length %d suggests context was not truncated", len(prompt))
		}
	})

	t.Run("TruncatesOnRuneBoundary", func(t *testing.T) {
		// Multi-byte text cut at the byte budget must stay valid UTF-8.
		long := strings.Repeat("é", contextBudget)
		prompt := BuildPrompt(GenerateRequest{
			Topic:        "Français",
			Count:        2,
			Difficulty:   "MEDIUM",
			QuestionType: "MULTIPLE_CHOICE",
			Context:      long,
		})
		if !utf8.ValidString(prompt) {
			t.Error("prompt contains an invalid UTF-8 sequence")
		}
	})

	t.Run("FillBlankFormat", func(t *testing.T) {
		prompt := BuildPrompt(GenerateRequest{
			Topic:        "History",
			Count:        3,
			Difficulty:   "EASY",
			QuestionType: "FILL_BLANK",
		})
		if want := "correct_answer"; !strings.Contains(prompt, want) {
			t.Errorf("fill-blank prompt missing %q", want)
		}
	})
}
