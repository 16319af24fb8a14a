package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/question"
)

func makePool(n int, difficulty question.Difficulty) []question.Question {
	pool := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, question.Question{
			ID:         uuid.New(),
			Text:       fmt.Sprintf("question %d", i),
			Type:       question.TypeMultipleChoice,
			Difficulty: difficulty,
			Points:     1,
			Verified:   true,
			Choices: []question.Choice{
				{ID: uuid.New(), Text: "right", IsCorrect: true},
				{ID: uuid.New(), Text: "wrong"},
			},
		})
	}
	return pool
}

func TestAssembleQuizSucceedsWithEnoughQuestions(t *testing.T) {
	pool := makePool(12, question.DifficultyEasy)
	userID := uuid.New()

	quiz, selected, err := assembleQuiz(userID, "Algebra", question.DifficultyEasy, GenerateQuizDTO{NumQuestions: 10}, pool, 10)
	if err != nil {
		t.Fatalf("assembleQuiz() error = %v", err)
	}

	if len(selected) != 10 {
		t.Fatalf("selected %d questions, want 10", len(selected))
	}

	seen := make(map[uuid.UUID]bool)
	for _, q := range selected {
		if seen[q.ID] {
			t.Errorf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}

	wantMarks := 0
	for _, q := range selected {
		wantMarks += q.Points
	}
	if quiz.TotalMarks != wantMarks {
		t.Errorf("total_marks = %d, want %d", quiz.TotalMarks, wantMarks)
	}
	if quiz.CreatedBy != userID {
		t.Errorf("created_by = %v, want %v", quiz.CreatedBy, userID)
	}
}

func TestAssembleQuizInsufficientQuestions(t *testing.T) {
	pool := makePool(3, question.DifficultyMedium)

	_, _, err := assembleQuiz(uuid.New(), "Geometry", question.DifficultyMedium, GenerateQuizDTO{}, pool, 10)

	var insufficient *InsufficientQuestionsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientQuestionsError, got %v", err)
	}
	if insufficient.Found != 3 || insufficient.Requested != 10 {
		t.Errorf("reported found=%d requested=%d, want found=3 requested=10", insufficient.Found, insufficient.Requested)
	}
}

func TestAssembleQuizPassingMarks(t *testing.T) {
	cases := []struct {
		questions int
		points    int
		want      int
	}{
		{10, 1, 4},
		{7, 1, 2},
		{3, 1, 1},
		{5, 2, 4},
	}

	for _, tc := range cases {
		pool := makePool(tc.questions, question.DifficultyEasy)
		for i := range pool {
			pool[i].Points = tc.points
		}

		quiz, _, err := assembleQuiz(uuid.New(), "T", question.DifficultyEasy, GenerateQuizDTO{}, pool, tc.questions)
		if err != nil {
			t.Fatalf("assembleQuiz() error = %v", err)
		}

		total := tc.questions * tc.points
		if quiz.TotalMarks != total {
			t.Errorf("total_marks = %d, want %d", quiz.TotalMarks, total)
		}
		if quiz.PassingMarks != tc.want {
			t.Errorf("passing_marks for total %d = %d, want %d", total, quiz.PassingMarks, tc.want)
		}
	}
}

func TestSampleQuestionsWithoutReplacement(t *testing.T) {
	pool := makePool(20, question.DifficultyHard)

	for run := 0; run < 10; run++ {
		selected := sampleQuestions(pool, 5)
		if len(selected) != 5 {
			t.Fatalf("sample size = %d, want 5", len(selected))
		}
		seen := make(map[uuid.UUID]bool)
		for _, q := range selected {
			if seen[q.ID] {
				t.Fatalf("duplicate question %s in sample", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestPresentStableWithoutShuffle(t *testing.T) {
	pool := makePool(5, question.DifficultyEasy)
	quiz := &Quiz{
		ID:         uuid.New(),
		Title:      "Stable Quiz",
		TotalMarks: 5,
	}
	for i, q := range pool {
		quiz.Questions = append(quiz.Questions, QuizQuestion{
			QuizID:     quiz.ID,
			QuestionID: q.ID,
			Order:      i + 1,
			Question:   q,
		})
	}

	first := Present(quiz)
	second := Present(quiz)

	if len(first.Questions) != len(second.Questions) {
		t.Fatalf("question counts differ: %d vs %d", len(first.Questions), len(second.Questions))
	}
	for i := range first.Questions {
		if first.Questions[i].ID != second.Questions[i].ID {
			t.Errorf("question order changed at %d without shuffle", i)
		}
		for j := range first.Questions[i].Choices {
			if first.Questions[i].Choices[j].ID != second.Questions[i].Choices[j].ID {
				t.Errorf("choice order changed at question %d without shuffle", i)
			}
		}
	}
}

func TestPresentNeverLeaksCorrectFlag(t *testing.T) {
	pool := makePool(1, question.DifficultyEasy)
	quiz := &Quiz{ID: uuid.New(), ShuffleChoices: true}
	quiz.Questions = append(quiz.Questions, QuizQuestion{Question: pool[0], Order: 1})

	presented := Present(quiz)

	if len(presented.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(presented.Questions))
	}
	// PresentedChoice has no correctness field; verify the payload carries
	// only id and text for each choice.
	for _, c := range presented.Questions[0].Choices {
		if c.ID == uuid.Nil || c.Text == "" {
			t.Errorf("presented choice missing id or text: %+v", c)
		}
	}
}
