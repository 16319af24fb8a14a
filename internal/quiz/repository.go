package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	WithTx(tx *gorm.DB) QuizRepository

	Create(q *Quiz) error
	AddMappings(mappings []QuizQuestion) error
	FindByID(id uuid.UUID) (*Quiz, error)
	ListByCreator(userID uuid.UUID) ([]Quiz, error)
	ListPublic() ([]Quiz, error)
	Delete(id uuid.UUID) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) WithTx(tx *gorm.DB) QuizRepository {
	return &quizRepository{db: tx}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Omit("Questions").Create(q).Error
}

func (r *quizRepository) AddMappings(mappings []QuizQuestion) error {
	if len(mappings) == 0 {
		return nil
	}
	return r.db.Create(&mappings).Error
}

func (r *quizRepository) FindByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		Preload("Questions.Question.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) ListByCreator(userID uuid.UUID) ([]Quiz, error) {
	var quizzes []Quiz
	err := r.db.
		Preload("Questions").
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListPublic() ([]Quiz, error) {
	var quizzes []Quiz
	err := r.db.
		Preload("Questions").
		Where("published = ? AND public = ?", true, true).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}
