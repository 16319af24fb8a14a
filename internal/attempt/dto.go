package attempt

import (
	"time"

	"github.com/google/uuid"
)

type AnswerDTO struct {
	QuestionID       uuid.UUID  `json:"question_id"`
	SelectedChoiceID *uuid.UUID `json:"selected_choice_id"`
	TimeSpentSeconds int        `json:"time_spent_seconds"`
}

type SubmitDTO struct {
	Answers []AnswerDTO `json:"answers"`
}

type StartResponse struct {
	AttemptID        uuid.UUID `json:"attempt_id"`
	QuizID           uuid.UUID `json:"quiz_id"`
	StartTime        time.Time `json:"start_time"`
	TotalQuestions   int       `json:"total_questions"`
	TimeLimitMinutes int       `json:"time_limit_minutes,omitempty"`
}

type SubmitResponse struct {
	AttemptID      uuid.UUID `json:"attempt_id"`
	Score          int       `json:"score"`
	TotalMarks     int       `json:"total_marks"`
	Percentage     float64   `json:"percentage"`
	Passed         bool      `json:"passed"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	Unanswered     int       `json:"unanswered"`
	TimeTaken      int       `json:"time_taken_seconds"`
}

// AnswerResult pairs one submitted answer with the question's correct
// choice; it is only revealed after submission.
type AnswerResult struct {
	QuestionID        uuid.UUID  `json:"question_id"`
	QuestionText      string     `json:"question_text"`
	SelectedChoiceID  *uuid.UUID `json:"selected_choice_id,omitempty"`
	SelectedText      string     `json:"selected_text,omitempty"`
	CorrectChoiceID   *uuid.UUID `json:"correct_choice_id,omitempty"`
	CorrectChoiceText string     `json:"correct_choice_text,omitempty"`
	IsCorrect         bool       `json:"is_correct"`
	PointsEarned      int        `json:"points_earned"`
	Explanation       string     `json:"explanation,omitempty"`
}

type ResultsResponse struct {
	AttemptID      uuid.UUID      `json:"attempt_id"`
	QuizID         uuid.UUID      `json:"quiz_id"`
	QuizTitle      string         `json:"quiz_title"`
	Score          int            `json:"score"`
	TotalMarks     int            `json:"total_marks"`
	Percentage     float64        `json:"percentage"`
	Passed         bool           `json:"passed"`
	CorrectAnswers int            `json:"correct_answers"`
	WrongAnswers   int            `json:"wrong_answers"`
	Unanswered     int            `json:"unanswered"`
	Status         Status         `json:"status"`
	Answers        []AnswerResult `json:"answers"`
}
