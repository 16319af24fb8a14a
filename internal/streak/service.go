package streak

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/config"
	util "github.com/quizforge/quizforge/internal/utils"
	"gorm.io/gorm"
)

type StreakService interface {
	// Touch records today's quiz activity for the user inside tx. It is
	// idempotent per calendar day; the caller passes the same transaction
	// used for attempt submission so both commit or roll back together.
	Touch(ctx context.Context, tx *gorm.DB, userID uuid.UUID, passed bool) error
	Get(ctx context.Context, userID uuid.UUID) (*Streak, error)
}

type streakService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) StreakService {
	return &streakService{db: db}
}

func (s *streakService) Touch(ctx context.Context, tx *gorm.DB, userID uuid.UUID, passed bool) error {
	log := config.WithContext(ctx)

	var record Streak
	err := tx.Where("user_id = ?", userID).First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = Streak{UserID: userID}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	}

	if !apply(&record, passed, util.Today()) {
		return nil
	}

	if err := tx.Save(&record).Error; err != nil {
		return err
	}
	log.WithField("user_id", userID.String()).
		WithField("current_streak", record.CurrentStreak).
		Debug("Streak updated")
	return nil
}

func (s *streakService) Get(ctx context.Context, userID uuid.UUID) (*Streak, error) {
	var record Streak
	err := s.db.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Streak{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// apply advances the streak state for one day of activity and reports
// whether anything changed. A second call on the same day is a no-op.
func apply(s *Streak, passed bool, today util.Date) bool {
	if s.LastActivityDate != nil && s.LastActivityDate.Equal(today) {
		return false
	}

	yesterday := today.AddDays(-1)

	if passed {
		if s.LastActivityDate != nil && s.LastActivityDate.Equal(yesterday) {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
		if s.CurrentStreak > s.LongestStreak {
			s.LongestStreak = s.CurrentStreak
		}
	} else if s.LastActivityDate != nil && s.LastActivityDate.Before(yesterday) {
		// A failed quiz only breaks the streak after more than one idle
		// day.
		s.CurrentStreak = 0
	}

	s.LastActivityDate = &today
	return true
}
