package request_models

import "encoding/json"

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateBlogPostRequest struct {
	Title         string          `json:"title" binding:"required"`
	Excerpt       string          `json:"excerpt"`
	Body          json.RawMessage `json:"body"`
	CoverImageURL string          `json:"cover_image_url"`
	CategoryID    string          `json:"category_id" binding:"required,uuid4"`
	IsPublished   bool            `json:"is_published"`
}

// UpdateBlogPostRequest is a partial delta; nil fields are left untouched.
type UpdateBlogPostRequest struct {
	Title         *string         `json:"title"`
	Excerpt       *string         `json:"excerpt"`
	Body          json.RawMessage `json:"body"`
	CoverImageURL *string         `json:"cover_image_url"`
	CategoryID    *string         `json:"category_id"`
	IsPublished   *bool           `json:"is_published"`
}
