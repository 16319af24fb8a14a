package cleanup

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/config"
	"gorm.io/gorm"
)

// defaultRetentionDays is how long unreferenced AI-generated questions are
// kept before the sweep removes them.
const defaultRetentionDays = 7

type Report struct {
	DeletedQuestions int64     `json:"deleted_questions"`
	SkippedQuestions int       `json:"skipped_questions"`
	DeletedChoices   int64     `json:"deleted_choices"`
	RetentionDays    int       `json:"retention_days"`
	RanAt            time.Time `json:"ran_at"`
}

type Stats struct {
	AIQuestions      int64 `json:"ai_questions"`
	StaleAIQuestions int   `json:"stale_ai_questions"`
	OrphanChoices    int64 `json:"orphan_choices"`
	RetentionDays    int   `json:"retention_days"`
}

type CleanupService interface {
	Run(ctx context.Context) (*Report, error)
	Stats(ctx context.Context) (*Stats, error)
}

type cleanupService struct {
	db            *gorm.DB
	repo          CleanupRepository
	retentionDays int
}

func NewService(db *gorm.DB, repo CleanupRepository) CleanupService {
	return &cleanupService{
		db:            db,
		repo:          repo,
		retentionDays: retentionDaysFromEnv(),
	}
}

func retentionDaysFromEnv() int {
	raw := os.Getenv("AI_RETENTION_DAYS")
	if raw == "" {
		return defaultRetentionDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return defaultRetentionDays
	}
	return days
}

// Run deletes AI-generated questions past the retention window, skipping any
// referenced by a quiz or an attempt, then removes orphaned choices. Each
// sweep commits in its own transaction so a failed choice sweep does not roll
// back the question sweep.
func (s *cleanupService) Run(ctx context.Context) (*Report, error) {
	log := config.WithContext(ctx)
	report := &Report{
		RetentionDays: s.retentionDays,
		RanAt:         time.Now().UTC(),
	}

	cutoff := retentionCutoff(report.RanAt, s.retentionDays)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		stale, err := repo.StaleAIQuestionIDs(cutoff)
		if err != nil {
			return err
		}
		referenced, err := repo.ReferencedQuestionIDs(stale)
		if err != nil {
			return err
		}

		deletable, skipped := partition(stale, referenced)
		report.SkippedQuestions = skipped

		deleted, err := repo.DeleteQuestions(deletable)
		if err != nil {
			return err
		}
		report.DeletedQuestions = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.repo.WithTx(tx).DeleteOrphanChoices()
		if err != nil {
			return err
		}
		report.DeletedChoices = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithField("deleted_questions", report.DeletedQuestions).
		WithField("skipped_questions", report.SkippedQuestions).
		WithField("deleted_choices", report.DeletedChoices).
		Info("Cleanup sweep finished")
	return report, nil
}

func (s *cleanupService) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{RetentionDays: s.retentionDays}

	total, err := s.repo.CountAIQuestions()
	if err != nil {
		return nil, err
	}
	stats.AIQuestions = total

	stale, err := s.repo.StaleAIQuestionIDs(retentionCutoff(time.Now().UTC(), s.retentionDays))
	if err != nil {
		return nil, err
	}
	stats.StaleAIQuestions = len(stale)

	orphans, err := s.repo.CountOrphanChoices()
	if err != nil {
		return nil, err
	}
	stats.OrphanChoices = orphans

	return stats, nil
}

func retentionCutoff(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// partition splits stale ids into deletable and skipped by reference status.
func partition(ids []uuid.UUID, referenced map[uuid.UUID]bool) ([]uuid.UUID, int) {
	deletable := make([]uuid.UUID, 0, len(ids))
	skipped := 0
	for _, id := range ids {
		if referenced[id] {
			skipped++
			continue
		}
		deletable = append(deletable, id)
	}
	return deletable, skipped
}
