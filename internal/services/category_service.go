package services

import (
	"context"
	"strings"

	"trendlens/internal/models/db_models"
	"trendlens/internal/models/response_models"
	"trendlens/internal/repositories"
	"trendlens/pkg/utils"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, name string) (*response_models.CategoryResponse, error)
	Rename(ctx context.Context, id string, name string) (*response_models.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*response_models.CategoryResponse, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.NewValidationError("name", "must not be empty")
	}

	slug := utils.Slugify(name)
	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSlugAlreadyExists
	}

	category := &db_models.Category{Name: name, Slug: slug}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toCategoryResponse(category), nil
}

func (s *CategoryService) Rename(ctx context.Context, id string, name string) (*response_models.CategoryResponse, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.NewValidationError("name", "must not be empty")
	}

	category, err := s.categoryRepo.GetById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	slug := utils.Slugify(name)
	if slug != category.Slug {
		existing, err := s.categoryRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrSlugAlreadyExists
		}
	}

	category.Name = name
	category.Slug = slug
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toCategoryResponse(category), nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {

	category, err := s.categoryRepo.GetById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]response_models.CategoryResponse, error) {

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, *toCategoryResponse(&categories[i]))
	}
	return result, nil
}

func toCategoryResponse(category *db_models.Category) *response_models.CategoryResponse {
	return &response_models.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}
