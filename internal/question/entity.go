package question

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TopicID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"topic_id"`
	Text        string       `gorm:"type:text;not null" json:"text"`
	Type        QuestionType `gorm:"type:varchar(32);not null" json:"type"`
	Difficulty  Difficulty   `gorm:"type:varchar(16);not null" json:"difficulty"`
	Points      int          `gorm:"not null;default:1" json:"points"`
	Explanation string       `gorm:"type:text" json:"explanation,omitempty"`
	Source      Source       `gorm:"type:varchar(32);not null;default:'MANUAL'" json:"source"`
	Confidence  *float64     `gorm:"type:decimal(3,2)" json:"confidence,omitempty"`
	Verified    bool         `gorm:"not null;default:false" json:"verified"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	Choices []Choice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"choices,omitempty"`
}

type Choice struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
