package question

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/aiquiz"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		input string
		want  Difficulty
	}{
		{"EASY", DifficultyEasy},
		{"easy", DifficultyEasy},
		{"Medium", DifficultyMedium},
		{"HARD", DifficultyHard},
		{"ADVANCE", DifficultyHard},
		{"Advanced", DifficultyHard},
		{"MIXED", DifficultyMixed},
		{"", DifficultyMedium},
		{"nonsense", DifficultyMedium},
	}

	for _, tc := range cases {
		if got := ParseDifficulty(tc.input); got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestValidateChoiceInvariant(t *testing.T) {
	t.Run("ExactlyOneCorrect", func(t *testing.T) {
		choices := []Choice{
			{Text: "A", IsCorrect: true},
			{Text: "B"},
			{Text: "C"},
		}
		if err := validateChoiceInvariant(TypeMultipleChoice, choices); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("NoCorrectChoice", func(t *testing.T) {
		choices := []Choice{{Text: "A"}, {Text: "B"}}
		if err := validateChoiceInvariant(TypeMultipleChoice, choices); err == nil {
			t.Error("expected error for zero correct choices")
		}
	})

	t.Run("TwoCorrectChoices", func(t *testing.T) {
		choices := []Choice{
			{Text: "A", IsCorrect: true},
			{Text: "B", IsCorrect: true},
		}
		if err := validateChoiceInvariant(TypeMultipleChoice, choices); err == nil {
			t.Error("expected error for two correct choices")
		}
	})

	t.Run("TrueFalseNeedsTwoChoices", func(t *testing.T) {
		choices := []Choice{
			{Text: "True", IsCorrect: true},
			{Text: "False"},
			{Text: "Maybe"},
		}
		if err := validateChoiceInvariant(TypeTrueFalse, choices); err == nil {
			t.Error("expected error for three true/false choices")
		}
	})

	t.Run("FillBlankSkipsCheck", func(t *testing.T) {
		if err := validateChoiceInvariant(TypeFillBlank, nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestBuildChoices(t *testing.T) {
	t.Run("FillBlankFromCorrectAnswer", func(t *testing.T) {
		choices, err := buildChoices(TypeFillBlank, nil, "mitochondria")
		if err != nil {
			t.Fatalf("buildChoices() error = %v", err)
		}
		if len(choices) != 1 || !choices[0].IsCorrect || choices[0].Text != "mitochondria" {
			t.Errorf("unexpected choices %+v", choices)
		}
	})

	t.Run("FillBlankMissingAnswer", func(t *testing.T) {
		if _, err := buildChoices(TypeFillBlank, nil, ""); err == nil {
			t.Error("expected error for missing correct_answer")
		}
	})

	t.Run("EmptyChoiceText", func(t *testing.T) {
		dtos := []ChoiceDTO{{Text: "A", IsCorrect: true}, {Text: "  "}}
		if _, err := buildChoices(TypeMultipleChoice, dtos, ""); err == nil {
			t.Error("expected error for blank choice text")
		}
	})
}

func TestCandidateToQuestion(t *testing.T) {
	topicID := uuid.New()

	mcChoices := []aiquiz.CandidateChoice{
		{Text: "Paris", IsCorrect: true},
		{Text: "Lyon"},
		{Text: "Nice"},
		{Text: "Lille"},
	}

	t.Run("AutoVerifyAboveThreshold", func(t *testing.T) {
		conf := 0.85
		q, err := candidateToQuestion(aiquiz.Candidate{
			QuestionText: "Capital of France?",
			Choices:      mcChoices,
			Confidence:   &conf,
		}, topicID, DifficultyEasy, SourceAIGenerated, 0.5)
		if err != nil {
			t.Fatalf("candidateToQuestion() error = %v", err)
		}
		if !q.Verified {
			t.Error("expected high-confidence question to be auto-verified")
		}
		if q.Confidence == nil || *q.Confidence != 0.85 {
			t.Errorf("expected per-candidate confidence, got %v", q.Confidence)
		}
	})

	t.Run("ThresholdIsExclusive", func(t *testing.T) {
		conf := 0.7
		q, err := candidateToQuestion(aiquiz.Candidate{
			QuestionText: "Capital of France?",
			Choices:      mcChoices,
			Confidence:   &conf,
		}, topicID, DifficultyEasy, SourceAIGenerated, 0.7)
		if err != nil {
			t.Fatalf("candidateToQuestion() error = %v", err)
		}
		if q.Verified {
			t.Error("confidence of exactly 0.7 must not auto-verify")
		}
	})

	t.Run("DetectsTrueFalse", func(t *testing.T) {
		q, err := candidateToQuestion(aiquiz.Candidate{
			QuestionText: "The sky is green.",
			Choices: []aiquiz.CandidateChoice{
				{Text: "True"},
				{Text: "False", IsCorrect: true},
			},
		}, topicID, DifficultyEasy, SourceAIGenerated, 0.9)
		if err != nil {
			t.Fatalf("candidateToQuestion() error = %v", err)
		}
		if q.Type != TypeTrueFalse {
			t.Errorf("type = %v, want %v", q.Type, TypeTrueFalse)
		}
	})

	t.Run("FillBlank", func(t *testing.T) {
		q, err := candidateToQuestion(aiquiz.Candidate{
			QuestionText:  "Water is made of hydrogen and _____.",
			CorrectAnswer: "oxygen",
		}, topicID, DifficultyMedium, SourceFileUpload, 0.9)
		if err != nil {
			t.Fatalf("candidateToQuestion() error = %v", err)
		}
		if q.Type != TypeFillBlank {
			t.Errorf("type = %v, want %v", q.Type, TypeFillBlank)
		}
		if len(q.Choices) != 1 || !q.Choices[0].IsCorrect {
			t.Errorf("unexpected choices %+v", q.Choices)
		}
	})

	t.Run("RejectsEmptyCandidate", func(t *testing.T) {
		if _, err := candidateToQuestion(aiquiz.Candidate{QuestionText: "Q"}, topicID, DifficultyEasy, SourceAIGenerated, 0.9); err == nil {
			t.Error("expected error for candidate with no answers")
		}
	})
}
