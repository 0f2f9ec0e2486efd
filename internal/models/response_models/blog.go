package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type BlogPostResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Excerpt       string          `json:"excerpt,omitempty"`
	Body          json.RawMessage `json:"body,omitempty"`
	CoverImageURL string          `json:"cover_image_url,omitempty"`
	CategoryID    uuid.UUID       `json:"category_id"`
	IsPublished   bool            `json:"is_published"`
	PublishedAt   *int64          `json:"published_at,omitempty"`
	CreatedAt     int64           `json:"created_at"`
	UpdatedAt     int64           `json:"updated_at"`
}

// BlogPostSummary omits the body for list endpoints.
type BlogPostSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	CategoryID    uuid.UUID `json:"category_id"`
	PublishedAt   *int64    `json:"published_at,omitempty"`
}
