package taxonomy

import "github.com/google/uuid"

type CreateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type CreateSubcategoryDTO struct {
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type CreateTopicDTO struct {
	SubcategoryID uuid.UUID `json:"subcategory_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
}

type TopicResponse struct {
	ID            uuid.UUID `json:"id"`
	SubcategoryID uuid.UUID `json:"subcategory_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int64     `json:"question_count"`
}

type SubcategoryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Topics      []TopicResponse `json:"topics,omitempty"`
}

type CategoryResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Icon          string                `json:"icon,omitempty"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}
