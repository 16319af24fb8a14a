package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/question"
)

// Timer options: one clock for the whole quiz or a per-question countdown.
const (
	TimerWhole = "whole"
	TimerEach  = "each"
)

type Quiz struct {
	ID               uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title            string              `gorm:"type:varchar(255);not null" json:"title"`
	Description      string              `gorm:"type:text" json:"description,omitempty"`
	CreatedBy        uuid.UUID           `gorm:"type:uuid;not null;index" json:"created_by"`
	TotalMarks       int                 `gorm:"not null;default:0" json:"total_marks"`
	PassingMarks     int                 `gorm:"not null;default:0" json:"passing_marks"`
	TimeLimitMinutes int                 `json:"time_limit_minutes,omitempty"`
	Difficulty       question.Difficulty `gorm:"type:varchar(16)" json:"difficulty"`
	Published        bool                `gorm:"not null;default:false" json:"published"`
	Public           bool                `gorm:"not null;default:true" json:"public"`
	ShuffleQuestions bool                `gorm:"not null;default:false" json:"shuffle_questions"`
	ShuffleChoices   bool                `gorm:"not null;default:false" json:"shuffle_choices"`
	TimerOption      string              `gorm:"type:varchar(10)" json:"timer_option,omitempty"`
	PerQuestionTime  int                 `json:"per_question_time,omitempty"`
	Instructions     string              `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt        time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// QuizQuestion maps a bank question into a quiz at a fixed 1-based
// position.
type QuizQuestion struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_quiz_question" json:"quiz_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_quiz_question" json:"question_id"`
	Order      int       `gorm:"column:question_order;not null" json:"order"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Question question.Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }
