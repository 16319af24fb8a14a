package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

type GenerateQuizDTO struct {
	TopicID         uuid.UUID `json:"topic_id"`
	SubcategoryID   uuid.UUID `json:"subcategory_id"`
	Difficulty      string    `json:"difficulty"`
	NumQuestions    int       `json:"num_questions"`
	UseAI           bool      `json:"use_ai"`
	TimeLimit       int       `json:"time_limit"`
	TimerOption     string    `json:"timer_option"`
	PerQuestionTime int       `json:"per_question_time"`
	Instructions    string    `json:"instructions"`
}

// InsufficientQuestionsError reports how far short the pool fell so clients
// can suggest reducing the count or enabling AI backfill.
type InsufficientQuestionsError struct {
	Found     int
	Requested int
}

func (e *InsufficientQuestionsError) Error() string {
	return fmt.Sprintf("not enough questions available: found %d, requested %d", e.Found, e.Requested)
}

// PresentedChoice deliberately omits the is_correct flag.
type PresentedChoice struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type PresentedQuestion struct {
	ID         uuid.UUID         `json:"id"`
	Text       string            `json:"text"`
	Type       string            `json:"type"`
	Difficulty string            `json:"difficulty"`
	Points     int               `json:"points"`
	Choices    []PresentedChoice `json:"choices"`
}

type PresentedQuiz struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description,omitempty"`
	TotalMarks       int                 `json:"total_marks"`
	PassingMarks     int                 `json:"passing_marks"`
	TimeLimitMinutes int                 `json:"time_limit_minutes,omitempty"`
	Difficulty       string              `json:"difficulty"`
	TimerOption      string              `json:"timer_option,omitempty"`
	PerQuestionTime  int                 `json:"per_question_time,omitempty"`
	Instructions     string              `json:"instructions,omitempty"`
	Questions        []PresentedQuestion `json:"questions"`
}

type QuizSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TotalMarks    int       `json:"total_marks"`
	PassingMarks  int       `json:"passing_marks"`
	Difficulty    string    `json:"difficulty"`
	QuestionCount int       `json:"question_count"`
	CreatedBy     uuid.UUID `json:"created_by"`
}
