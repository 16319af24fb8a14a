package cleanup

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/question"
	"gorm.io/gorm"
)

type CleanupRepository interface {
	WithTx(tx *gorm.DB) CleanupRepository
	StaleAIQuestionIDs(cutoff time.Time) ([]uuid.UUID, error)
	ReferencedQuestionIDs(ids []uuid.UUID) (map[uuid.UUID]bool, error)
	DeleteQuestions(ids []uuid.UUID) (int64, error)
	DeleteOrphanChoices() (int64, error)
	CountAIQuestions() (int64, error)
	CountOrphanChoices() (int64, error)
}

type cleanupRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CleanupRepository {
	return &cleanupRepository{db: db}
}

func (r *cleanupRepository) WithTx(tx *gorm.DB) CleanupRepository {
	return &cleanupRepository{db: tx}
}

func (r *cleanupRepository) StaleAIQuestionIDs(cutoff time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&question.Question{}).
		Where("source = ? AND created_at < ?", question.SourceAIGenerated, cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ReferencedQuestionIDs reports which of the given questions appear in a quiz
// mapping or an attempt answer. Referenced questions are skipped by the sweep.
func (r *cleanupRepository) ReferencedQuestionIDs(ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	referenced := make(map[uuid.UUID]bool)
	if len(ids) == 0 {
		return referenced, nil
	}

	var inQuiz []uuid.UUID
	err := r.db.Table("quiz_questions").
		Where("question_id IN ?", ids).
		Distinct().
		Pluck("question_id", &inQuiz).Error
	if err != nil {
		return nil, err
	}
	for _, id := range inQuiz {
		referenced[id] = true
	}

	var inAttempt []uuid.UUID
	err = r.db.Table("attempt_answers").
		Where("question_id IN ?", ids).
		Distinct().
		Pluck("question_id", &inAttempt).Error
	if err != nil {
		return nil, err
	}
	for _, id := range inAttempt {
		referenced[id] = true
	}

	return referenced, nil
}

func (r *cleanupRepository) DeleteQuestions(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Delete(&question.Question{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

func (r *cleanupRepository) DeleteOrphanChoices() (int64, error) {
	res := r.db.
		Where("question_id NOT IN (?)", r.db.Model(&question.Question{}).Select("id")).
		Delete(&question.Choice{})
	return res.RowsAffected, res.Error
}

func (r *cleanupRepository) CountAIQuestions() (int64, error) {
	var n int64
	err := r.db.Model(&question.Question{}).
		Where("source = ?", question.SourceAIGenerated).
		Count(&n).Error
	return n, err
}

func (r *cleanupRepository) CountOrphanChoices() (int64, error) {
	var n int64
	err := r.db.Model(&question.Choice{}).
		Where("question_id NOT IN (?)", r.db.Model(&question.Question{}).Select("id")).
		Count(&n).Error
	return n, err
}
