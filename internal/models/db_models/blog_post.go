package db_models

import "github.com/google/uuid"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

type BlogPost struct {
	BaseModel
	Title         string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;not null"`
	Content       string `gorm:"type:text;not null"`
	Excerpt       string `gorm:"type:text"`
	FeaturedImage string

	Status PostStatus `gorm:"size:16;default:'DRAFT';index"`

	SEOTitle       string
	SEODescription string `gorm:"type:text"`

	AuthorID uuid.UUID `gorm:"type:uuid;index"`
	Author   User      `gorm:"foreignKey:AuthorID"`

	// Unix seconds, stamped once on the first transition to PUBLISHED.
	PublishedAt *int64
}
