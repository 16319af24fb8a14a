package attempt

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusAbandoned  Status = "ABANDONED"
)

type Attempt struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"quiz_id"`
	StartTime        time.Time  `gorm:"not null" json:"start_time"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	TotalQuestions   int        `gorm:"not null;default:0" json:"total_questions"`
	Score            int        `gorm:"not null;default:0" json:"score"`
	Percentage       float64    `gorm:"type:decimal(5,2);not null;default:0" json:"percentage"`
	CorrectAnswers   int        `gorm:"not null;default:0" json:"correct_answers"`
	WrongAnswers     int        `gorm:"not null;default:0" json:"wrong_answers"`
	Unanswered       int        `gorm:"not null;default:0" json:"unanswered"`
	TimeTakenSeconds int        `gorm:"not null;default:0" json:"time_taken_seconds"`
	Passed           bool       `gorm:"not null;default:false" json:"passed"`
	Status           Status     `gorm:"type:varchar(16);not null;default:'IN_PROGRESS'" json:"status"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Answers []AttemptAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// AttemptAnswer is written once at submission and never mutated. The choice
// reference is nullable so deleting a choice later does not invalidate past
// results.
type AttemptAnswer struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AttemptID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"attempt_id"`
	QuestionID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"question_id"`
	SelectedChoiceID *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL" json:"selected_choice_id,omitempty"`
	IsCorrect        bool       `gorm:"not null;default:false" json:"is_correct"`
	PointsEarned     int        `gorm:"not null;default:0" json:"points_earned"`
	TimeSpentSeconds int        `gorm:"not null;default:0" json:"time_spent_seconds"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
