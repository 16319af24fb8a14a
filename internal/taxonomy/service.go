package taxonomy

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge/internal/config"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrTopicNotFound       = errors.New("topic not found")
	ErrDuplicateName       = errors.New("name already exists")
)

type TaxonomyService interface {
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error)
	CreateCategory(ctx context.Context, dto CreateCategoryDTO) (*Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, dto UpdateCategoryDTO) (*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateSubcategory(ctx context.Context, dto CreateSubcategoryDTO) (*Subcategory, error)
	CreateTopic(ctx context.Context, dto CreateTopicDTO) (*Topic, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*TopicResponse, error)

	// ResolveTopic maps a topic or subcategory id to a concrete topic.
	// A subcategory resolves to its first topic by name order.
	ResolveTopic(ctx context.Context, id uuid.UUID) (*Topic, error)
}

type taxonomyService struct {
	repo TaxonomyRepository
}

func NewService(repo TaxonomyRepository) TaxonomyService {
	return &taxonomyService{repo: repo}
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		resp, err := s.toCategoryResponse(&categories[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *taxonomyService) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	c, err := s.repo.FindCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return s.toCategoryResponse(c)
}

func (s *taxonomyService) CreateCategory(ctx context.Context, dto CreateCategoryDTO) (*Category, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	if exists, err := s.repo.CategoryNameExists(name, uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicateName
	}

	c := Category{
		Name:        name,
		Description: dto.Description,
		Icon:        dto.Icon,
	}
	if err := s.repo.CreateCategory(&c); err != nil {
		log.WithError(err).Error("Failed to create category")
		return nil, err
	}

	log.WithField("category_id", c.ID.String()).Info("Category created")
	return &c, nil
}

func (s *taxonomyService) UpdateCategory(ctx context.Context, id uuid.UUID, dto UpdateCategoryDTO) (*Category, error) {
	c, err := s.repo.FindCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, errors.New("name cannot be empty")
		}
		if name != c.Name {
			if exists, err := s.repo.CategoryNameExists(name, c.ID); err != nil {
				return nil, err
			} else if exists {
				return nil, ErrDuplicateName
			}
			c.Name = name
		}
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	if dto.Icon != nil {
		c.Icon = *dto.Icon
	}

	if err := s.repo.UpdateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	c, err := s.repo.FindCategoryByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCategoryNotFound
	}

	if err := s.repo.DeleteCategory(id); err != nil {
		return err
	}
	log.WithField("category_id", id.String()).Info("Category deleted")
	return nil
}

func (s *taxonomyService) CreateSubcategory(ctx context.Context, dto CreateSubcategoryDTO) (*Subcategory, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	c, err := s.repo.FindCategoryByID(dto.CategoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	if exists, err := s.repo.SubcategoryNameExists(dto.CategoryID, name); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicateName
	}

	sc := Subcategory{
		CategoryID:  dto.CategoryID,
		Name:        name,
		Description: dto.Description,
	}
	if err := s.repo.CreateSubcategory(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *taxonomyService) CreateTopic(ctx context.Context, dto CreateTopicDTO) (*Topic, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	sc, err := s.repo.FindSubcategoryByID(dto.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, ErrSubcategoryNotFound
	}

	if exists, err := s.repo.TopicNameExists(dto.SubcategoryID, name); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicateName
	}

	t := Topic{
		SubcategoryID: dto.SubcategoryID,
		Name:          name,
		Description:   dto.Description,
	}
	if err := s.repo.CreateTopic(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taxonomyService) GetTopic(ctx context.Context, id uuid.UUID) (*TopicResponse, error) {
	t, err := s.repo.FindTopicByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}

	count, err := s.repo.CountQuestionsForTopic(t.ID)
	if err != nil {
		return nil, err
	}

	return &TopicResponse{
		ID:            t.ID,
		SubcategoryID: t.SubcategoryID,
		Name:          t.Name,
		Description:   t.Description,
		QuestionCount: count,
	}, nil
}

func (s *taxonomyService) ResolveTopic(ctx context.Context, id uuid.UUID) (*Topic, error) {
	t, err := s.repo.FindTopicByID(id)
	if err != nil {
		return nil, err
	}
	if t != nil {
		return t, nil
	}

	sc, err := s.repo.FindSubcategoryByID(id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, ErrTopicNotFound
	}

	t, err = s.repo.FirstTopicOfSubcategory(sc.ID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}
	return t, nil
}

func (s *taxonomyService) toCategoryResponse(c *Category) (*CategoryResponse, error) {
	subs := make([]SubcategoryResponse, 0, len(c.Subcategories))
	for _, sc := range c.Subcategories {
		topics := make([]TopicResponse, 0, len(sc.Topics))
		for _, t := range sc.Topics {
			count, err := s.repo.CountQuestionsForTopic(t.ID)
			if err != nil {
				return nil, err
			}
			topics = append(topics, TopicResponse{
				ID:            t.ID,
				SubcategoryID: t.SubcategoryID,
				Name:          t.Name,
				Description:   t.Description,
				QuestionCount: count,
			})
		}
		subs = append(subs, SubcategoryResponse{
			ID:          sc.ID,
			Name:        sc.Name,
			Description: sc.Description,
			Topics:      topics,
		})
	}

	return &CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Icon:          c.Icon,
		Subcategories: subs,
	}, nil
}
