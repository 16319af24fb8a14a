package attempt

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	WithTx(tx *gorm.DB) AttemptRepository

	Create(a *Attempt) error
	FindByID(id uuid.UUID) (*Attempt, error)
	Update(a *Attempt) error
	AddAnswers(answers []AttemptAnswer) error
	ListByUser(userID uuid.UUID, limit int) ([]Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) Create(a *Attempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) FindByID(id uuid.UUID) (*Attempt, error) {
	var a Attempt
	err := r.db.Preload("Answers").First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) Update(a *Attempt) error {
	return r.db.Omit("Answers").Save(a).Error
}

func (r *attemptRepository) AddAnswers(answers []AttemptAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Create(&answers).Error
}

func (r *attemptRepository) ListByUser(userID uuid.UUID, limit int) ([]Attempt, error) {
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var attempts []Attempt
	if err := q.Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
