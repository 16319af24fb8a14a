package taxonomy

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"type:varchar(255)" json:"icon,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

type Subcategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_subcategory_per_category" json:"category_id"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_subcategory_per_category" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Topics []Topic `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE" json:"topics,omitempty"`
}

type Topic struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SubcategoryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_topic_per_subcategory" json:"subcategory_id"`
	Name          string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_topic_per_subcategory" json:"name"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
