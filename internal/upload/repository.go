package upload

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentRepository interface {
	Create(a *Attachment) error
	FindByID(id uuid.UUID) (*Attachment, error)
	ListByUser(userID uuid.UUID) ([]Attachment, error)
	Delete(id uuid.UUID) error
}

type attachmentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(a *Attachment) error {
	return r.db.Create(a).Error
}

func (r *attachmentRepository) FindByID(id uuid.UUID) (*Attachment, error) {
	var a Attachment
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attachmentRepository) ListByUser(userID uuid.UUID) ([]Attachment, error) {
	var attachments []Attachment
	err := r.db.
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Limit(50).
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *attachmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Attachment{}, "id = ?", id).Error
}
