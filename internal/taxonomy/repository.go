package taxonomy

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaxonomyRepository interface {
	ListCategories() ([]Category, error)
	FindCategoryByID(id uuid.UUID) (*Category, error)
	CategoryNameExists(name string, excludeID uuid.UUID) (bool, error)
	CreateCategory(c *Category) error
	UpdateCategory(c *Category) error
	DeleteCategory(id uuid.UUID) error

	FindSubcategoryByID(id uuid.UUID) (*Subcategory, error)
	SubcategoryNameExists(categoryID uuid.UUID, name string) (bool, error)
	CreateSubcategory(sc *Subcategory) error

	FindTopicByID(id uuid.UUID) (*Topic, error)
	TopicNameExists(subcategoryID uuid.UUID, name string) (bool, error)
	CreateTopic(t *Topic) error
	// FirstTopicOfSubcategory returns the subcategory's first topic by name
	// order, or nil when the subcategory has no topics.
	FirstTopicOfSubcategory(subcategoryID uuid.UUID) (*Topic, error)
	CountQuestionsForTopic(topicID uuid.UUID) (int64, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListCategories() ([]Category, error) {
	var categories []Category
	err := r.db.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Subcategories.Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *taxonomyRepository) FindCategoryByID(id uuid.UUID) (*Category, error) {
	var c Category
	err := r.db.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Subcategories.Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *taxonomyRepository) CategoryNameExists(name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.Model(&Category{}).Where("name = ?", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *taxonomyRepository) CreateCategory(c *Category) error {
	return r.db.Create(c).Error
}

func (r *taxonomyRepository) UpdateCategory(c *Category) error {
	return r.db.Save(c).Error
}

func (r *taxonomyRepository) DeleteCategory(id uuid.UUID) error {
	return r.db.Delete(&Category{}, "id = ?", id).Error
}

func (r *taxonomyRepository) FindSubcategoryByID(id uuid.UUID) (*Subcategory, error) {
	var sc Subcategory
	if err := r.db.First(&sc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sc, nil
}

func (r *taxonomyRepository) SubcategoryNameExists(categoryID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.Model(&Subcategory{}).
		Where("category_id = ? AND name = ?", categoryID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *taxonomyRepository) CreateSubcategory(sc *Subcategory) error {
	return r.db.Create(sc).Error
}

func (r *taxonomyRepository) FindTopicByID(id uuid.UUID) (*Topic, error) {
	var t Topic
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *taxonomyRepository) TopicNameExists(subcategoryID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.Model(&Topic{}).
		Where("subcategory_id = ? AND name = ?", subcategoryID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *taxonomyRepository) CreateTopic(t *Topic) error {
	return r.db.Create(t).Error
}

func (r *taxonomyRepository) FirstTopicOfSubcategory(subcategoryID uuid.UUID) (*Topic, error) {
	var t Topic
	err := r.db.
		Where("subcategory_id = ?", subcategoryID).
		Order("name ASC").
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *taxonomyRepository) CountQuestionsForTopic(topicID uuid.UUID) (int64, error) {
	var count int64
	// The question entity lives in the question package; counting through the
	// table name avoids an import cycle.
	if err := r.db.Table("questions").Where("topic_id = ?", topicID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
