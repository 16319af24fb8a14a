package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/attempt"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/streak"
	"gorm.io/gorm"
)

const (
	cacheTTL          = 5 * time.Minute
	recentAttemptsMax = 10
)

type DashboardService interface {
	Stats(ctx context.Context, userID uuid.UUID) (*Stats, error)
	RecentAttempts(ctx context.Context, userID uuid.UUID) ([]RecentAttempt, error)
}

type dashboardService struct {
	db      *gorm.DB
	streaks streak.StreakService
}

func NewService(db *gorm.DB, streaks streak.StreakService) DashboardService {
	return &dashboardService{db: db, streaks: streaks}
}

func (s *dashboardService) Stats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	log := config.WithContext(ctx)

	if cached, ok := s.readCache(userID); ok {
		return cached, nil
	}

	stats, err := s.computeStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.writeCache(userID, stats); err != nil {
		// Stale or missing cache only costs the next request a recompute.
		log.WithError(err).Warn("Failed to refresh dashboard cache")
	}
	return stats, nil
}

func (s *dashboardService) computeStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	var attempts []attempt.Attempt
	if err := s.db.Where("user_id = ?", userID).Find(&attempts).Error; err != nil {
		return nil, err
	}

	stats := Stats{TotalAttempts: len(attempts)}

	var percentageSum float64
	var secondsSum int
	for _, a := range attempts {
		if a.Status != attempt.StatusCompleted {
			continue
		}
		stats.CompletedAttempts++
		percentageSum += a.Percentage
		secondsSum += a.TimeTakenSeconds
	}
	if stats.CompletedAttempts > 0 {
		stats.AverageScore = math.Round(percentageSum/float64(stats.CompletedAttempts)*10) / 10
	}
	stats.TotalTimeHours = secondsSum / 3600

	record, err := s.streaks.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = record.CurrentStreak
	stats.LongestStreak = record.LongestStreak

	return &stats, nil
}

func (s *dashboardService) RecentAttempts(ctx context.Context, userID uuid.UUID) ([]RecentAttempt, error) {
	rows := make([]RecentAttempt, 0, recentAttemptsMax)
	err := s.db.
		Table("attempts").
		Select("attempts.id AS attempt_id, quizzes.title AS quiz_title, attempts.score, attempts.percentage, attempts.passed, attempts.status, attempts.created_at").
		Joins("LEFT JOIN quizzes ON quizzes.id = attempts.quiz_id").
		Where("attempts.user_id = ?", userID).
		Order("attempts.created_at DESC").
		Limit(recentAttemptsMax).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *dashboardService) readCache(userID uuid.UUID) (*Stats, bool) {
	var row StatsCache
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		return nil, false
	}
	if time.Since(row.RefreshedAt) > cacheTTL {
		return nil, false
	}

	var stats Stats
	if err := json.Unmarshal(row.Payload, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (s *dashboardService) writeCache(userID uuid.UUID, stats *Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	var row StatsCache
	err = s.db.Where("user_id = ?", userID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = StatsCache{UserID: userID, Payload: payload, RefreshedAt: time.Now().UTC()}
		return s.db.Create(&row).Error
	case err != nil:
		return err
	}

	row.Payload = payload
	row.RefreshedAt = time.Now().UTC()
	return s.db.Save(&row).Error
}
