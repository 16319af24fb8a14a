package attempt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/question"
)

func mathQuestion(points int) question.Question {
	return question.Question{
		ID:     uuid.New(),
		Text:   "2+2=?",
		Type:   question.TypeMultipleChoice,
		Points: points,
		Choices: []question.Choice{
			{ID: uuid.New(), Text: "3"},
			{ID: uuid.New(), Text: "4", IsCorrect: true},
			{ID: uuid.New(), Text: "5"},
			{ID: uuid.New(), Text: "6"},
		},
	}
}

func correctChoiceID(q question.Question) *uuid.UUID {
	for _, c := range q.Choices {
		if c.IsCorrect {
			id := c.ID
			return &id
		}
	}
	return nil
}

func TestGradeCorrectAnswer(t *testing.T) {
	q := mathQuestion(2)

	result := grade([]question.Question{q}, []AnswerDTO{
		{QuestionID: q.ID, SelectedChoiceID: correctChoiceID(q)},
	}, 1, 2, 1)

	if len(result.answers) != 1 {
		t.Fatalf("expected 1 graded answer, got %d", len(result.answers))
	}
	if !result.answers[0].IsCorrect {
		t.Error("expected answer to be marked correct")
	}
	if result.answers[0].PointsEarned != q.Points {
		t.Errorf("points_earned = %d, want %d", result.answers[0].PointsEarned, q.Points)
	}
	if result.score != 2 || result.correct != 1 || result.wrong != 0 {
		t.Errorf("score/correct/wrong = %d/%d/%d, want 2/1/0", result.score, result.correct, result.wrong)
	}
	if !result.passed {
		t.Error("expected pass with score above passing marks")
	}
}

func TestGradeWrongAnswer(t *testing.T) {
	q := mathQuestion(1)
	wrongID := q.Choices[0].ID

	result := grade([]question.Question{q}, []AnswerDTO{
		{QuestionID: q.ID, SelectedChoiceID: &wrongID},
	}, 1, 1, 1)

	if result.score != 0 || result.wrong != 1 {
		t.Errorf("score/wrong = %d/%d, want 0/1", result.score, result.wrong)
	}
	if result.passed {
		t.Error("expected fail with zero score")
	}
	if result.answers[0].PointsEarned != 0 {
		t.Errorf("points_earned = %d, want 0", result.answers[0].PointsEarned)
	}
}

func TestGradeUnanswered(t *testing.T) {
	q1 := mathQuestion(1)
	q2 := mathQuestion(1)
	q3 := mathQuestion(1)

	result := grade([]question.Question{q1, q2, q3}, []AnswerDTO{
		{QuestionID: q1.ID, SelectedChoiceID: correctChoiceID(q1)},
	}, 3, 3, 1)

	if result.unanswered != 2 {
		t.Errorf("unanswered = %d, want 2", result.unanswered)
	}
}

func TestGradePercentageRounding(t *testing.T) {
	q1 := mathQuestion(1)
	q2 := mathQuestion(1)
	q3 := mathQuestion(1)

	// 1 of 3 marks = 33.333...%, rounded to 33.33.
	result := grade([]question.Question{q1, q2, q3}, []AnswerDTO{
		{QuestionID: q1.ID, SelectedChoiceID: correctChoiceID(q1)},
	}, 3, 3, 2)

	if result.percentage != 33.33 {
		t.Errorf("percentage = %v, want 33.33", result.percentage)
	}
}

func TestGradeIgnoresForeignChoice(t *testing.T) {
	q1 := mathQuestion(1)
	q2 := mathQuestion(1)
	foreign := q2.Choices[1].ID

	// A choice id from another question must not score.
	result := grade([]question.Question{q1, q2}, []AnswerDTO{
		{QuestionID: q1.ID, SelectedChoiceID: &foreign},
	}, 2, 2, 1)

	if len(result.answers) != 0 {
		t.Errorf("expected foreign choice to be dropped, got %d answers", len(result.answers))
	}
	if result.unanswered != 2 {
		t.Errorf("unanswered = %d, want 2", result.unanswered)
	}
}

func TestGradeDuplicateAnswersScoreOnce(t *testing.T) {
	t.Run("RepeatedCorrectChoice", func(t *testing.T) {
		q := mathQuestion(1)
		correct := correctChoiceID(q)

		// The same correct answer submitted three times must not triple the
		// score or write three answer rows.
		result := grade([]question.Question{q}, []AnswerDTO{
			{QuestionID: q.ID, SelectedChoiceID: correct},
			{QuestionID: q.ID, SelectedChoiceID: correct},
			{QuestionID: q.ID, SelectedChoiceID: correct},
		}, 1, 1, 1)

		if result.score != 1 || result.correct != 1 {
			t.Errorf("score/correct = %d/%d, want 1/1", result.score, result.correct)
		}
		if len(result.answers) != 1 {
			t.Errorf("expected 1 answer row, got %d", len(result.answers))
		}
		if result.percentage != 100 {
			t.Errorf("percentage = %v, want 100", result.percentage)
		}
		if result.correct+result.wrong > 1 {
			t.Errorf("correct+wrong = %d, exceeds total questions", result.correct+result.wrong)
		}
	})

	t.Run("FirstScoredAnswerWins", func(t *testing.T) {
		q := mathQuestion(1)
		wrongID := q.Choices[0].ID

		result := grade([]question.Question{q}, []AnswerDTO{
			{QuestionID: q.ID, SelectedChoiceID: &wrongID},
			{QuestionID: q.ID, SelectedChoiceID: correctChoiceID(q)},
		}, 1, 1, 1)

		if result.score != 0 || result.wrong != 1 || result.correct != 0 {
			t.Errorf("score/wrong/correct = %d/%d/%d, want 0/1/0", result.score, result.wrong, result.correct)
		}
		if len(result.answers) != 1 {
			t.Errorf("expected 1 answer row, got %d", len(result.answers))
		}
	})

	t.Run("DroppedAnswerDoesNotBlockRetry", func(t *testing.T) {
		q1 := mathQuestion(1)
		q2 := mathQuestion(1)
		foreign := q2.Choices[1].ID

		// A foreign choice is dropped without scoring, so a later valid
		// answer for the same question still counts.
		result := grade([]question.Question{q1, q2}, []AnswerDTO{
			{QuestionID: q1.ID, SelectedChoiceID: &foreign},
			{QuestionID: q1.ID, SelectedChoiceID: correctChoiceID(q1)},
		}, 2, 2, 1)

		if result.score != 1 || result.correct != 1 {
			t.Errorf("score/correct = %d/%d, want 1/1", result.score, result.correct)
		}
	})
}

func TestGradeZeroTotalMarks(t *testing.T) {
	result := grade(nil, nil, 0, 0, 0)

	if result.percentage != 0 {
		t.Errorf("percentage = %v, want 0 for empty quiz", result.percentage)
	}
	// passing_marks of 0 means any score passes, including zero.
	if !result.passed {
		t.Error("expected pass when passing marks is zero")
	}
}

func TestGradePassBoundary(t *testing.T) {
	q1 := mathQuestion(1)
	q2 := mathQuestion(1)

	// Score equal to passing marks passes.
	result := grade([]question.Question{q1, q2}, []AnswerDTO{
		{QuestionID: q1.ID, SelectedChoiceID: correctChoiceID(q1)},
	}, 2, 2, 1)
	if !result.passed {
		t.Error("score == passing_marks must pass")
	}

	// One short of passing marks fails.
	result = grade([]question.Question{q1, q2}, []AnswerDTO{
		{QuestionID: q1.ID, SelectedChoiceID: correctChoiceID(q1)},
	}, 2, 2, 2)
	if result.passed {
		t.Error("score below passing_marks must fail")
	}
}
