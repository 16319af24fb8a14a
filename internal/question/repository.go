package question

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// WithTx returns a repository bound to tx so multi-write operations can
	// share one transaction.
	WithTx(tx *gorm.DB) QuestionRepository

	Create(q *Question) error
	FindByID(id uuid.UUID) (*Question, error)
	List(filter ListFilter) ([]Question, int64, error)
	Update(q *Question) error
	ReplaceChoices(questionID uuid.UUID, choices []Choice) error
	Delete(id uuid.UUID) error

	FindVerifiedByTopic(topicID uuid.UUID, difficulty Difficulty) ([]Question, error)
	ReferencedByAttempt(id uuid.UUID) (bool, error)
	ReferencedByQuiz(id uuid.UUID) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *questionRepository) FindByID(id uuid.UUID) (*Question, error) {
	var q Question
	err := r.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) List(filter ListFilter) ([]Question, int64, error) {
	q := r.db.Model(&Question{})

	if filter.TopicID != uuid.Nil {
		q = q.Where("topic_id = ?", filter.TopicID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Difficulty != "" && filter.Difficulty != DifficultyMixed {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Source != "" {
		q = q.Where("source = ?", filter.Source)
	}
	if filter.Verified != nil {
		q = q.Where("verified = ?", *filter.Verified)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var questions []Question
	err := q.Preload("Choices").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (r *questionRepository) Update(q *Question) error {
	return r.db.Omit("Choices").Save(q).Error
}

func (r *questionRepository) ReplaceChoices(questionID uuid.UUID, choices []Choice) error {
	if err := r.db.Delete(&Choice{}, "question_id = ?", questionID).Error; err != nil {
		return err
	}
	if len(choices) == 0 {
		return nil
	}
	return r.db.Create(&choices).Error
}

func (r *questionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *questionRepository) FindVerifiedByTopic(topicID uuid.UUID, difficulty Difficulty) ([]Question, error) {
	q := r.db.Preload("Choices").
		Where("topic_id = ? AND verified = ?", topicID, true)
	if difficulty != "" && difficulty != DifficultyMixed {
		q = q.Where("difficulty = ?", difficulty)
	}

	var questions []Question
	if err := q.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ReferencedByAttempt(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Table("attempt_answers").Where("question_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *questionRepository) ReferencedByQuiz(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Table("quiz_questions").Where("question_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
