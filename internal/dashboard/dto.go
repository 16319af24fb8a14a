package dashboard

import (
	"time"

	"github.com/google/uuid"
)

type Stats struct {
	TotalAttempts     int     `json:"total_attempts"`
	CompletedAttempts int     `json:"completed_attempts"`
	AverageScore      float64 `json:"average_score"`
	CurrentStreak     int     `json:"current_streak"`
	LongestStreak     int     `json:"longest_streak"`
	TotalTimeHours    int     `json:"total_time_hours"`
}

type RecentAttempt struct {
	AttemptID  uuid.UUID `json:"attempt_id"`
	QuizTitle  string    `json:"quiz_title"`
	Score      int       `json:"score"`
	Percentage float64   `json:"percentage"`
	Passed     bool      `json:"passed"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
