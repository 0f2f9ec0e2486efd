package utils

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanAlreadyExists = errors.New("a plan with this name and billing interval already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrPostNotFound      = errors.New("blog post not found")
	ErrSlugAlreadyExists = errors.New("slug already in use")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
)

// ValidationError rejects malformed input before it reaches the database or
// the billing provider. Field names the offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
