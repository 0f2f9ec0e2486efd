package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlogPost is one article managed from the admin panel. Body holds the
// editor's block document as JSONB; rendering happens elsewhere.
type BlogPost struct {
	BaseModel
	Title         string         `gorm:"not null"`
	Slug          string         `gorm:"uniqueIndex;not null"`
	Excerpt       string
	Body          datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CoverImageURL string
	CategoryID    uuid.UUID      `gorm:"type:uuid;index"`
	IsPublished   bool           `gorm:"default:false;index"`
	PublishedAt   *int64

	Category Category `gorm:"foreignKey:CategoryID"`
}
