package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/datatypes"
	"trendlens/internal/models/db_models"
	"trendlens/internal/models/request_models"
	"trendlens/internal/models/response_models"
	"trendlens/internal/repositories"
	"trendlens/pkg/utils"
)

type BlogServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateBlogPostRequest) (*response_models.BlogPostResponse, error)
	Update(ctx context.Context, id string, req request_models.UpdateBlogPostRequest) (*response_models.BlogPostResponse, error)
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*response_models.BlogPostResponse, error)
	ListPublished(ctx context.Context, page, pageSize int) ([]response_models.BlogPostSummary, error)
	ListAll(ctx context.Context, page, pageSize int) ([]response_models.BlogPostSummary, error)
}

type BlogService struct {
	blogRepo     repositories.BlogRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewBlogService(
	blogRepo repositories.BlogRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface) BlogServiceInterface {
	return &BlogService{
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *BlogService) Create(ctx context.Context, req request_models.CreateBlogPostRequest) (*response_models.BlogPostResponse, error) {

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, utils.NewValidationError("title", "must not be empty")
	}

	category, err := s.categoryRepo.GetById(ctx, req.CategoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	slug := utils.Slugify(title)
	existing, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSlugAlreadyExists
	}

	post := &db_models.BlogPost{
		Title:         title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		CoverImageURL: req.CoverImageURL,
		CategoryID:    category.ID,
		IsPublished:   req.IsPublished,
	}
	if len(req.Body) > 0 {
		post.Body = datatypes.JSON(req.Body)
	}
	if req.IsPublished {
		now := time.Now().Unix()
		post.PublishedAt = &now
	}

	if err := s.blogRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toBlogPostResponse(post), nil
}

func (s *BlogService) Update(ctx context.Context, id string, req request_models.UpdateBlogPostRequest) (*response_models.BlogPostResponse, error) {

	post, err := s.blogRepo.GetById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, utils.NewValidationError("title", "must not be empty")
		}
		slug := utils.Slugify(title)
		if slug != post.Slug {
			existing, err := s.blogRepo.GetBySlug(ctx, slug)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if existing != nil {
				return nil, utils.ErrSlugAlreadyExists
			}
		}
		post.Title = title
		post.Slug = slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if len(req.Body) > 0 {
		post.Body = datatypes.JSON(req.Body)
	}
	if req.CoverImageURL != nil {
		post.CoverImageURL = *req.CoverImageURL
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetById(ctx, *req.CategoryID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
		post.CategoryID = category.ID
	}
	if req.IsPublished != nil {
		if *req.IsPublished && !post.IsPublished {
			now := time.Now().Unix()
			post.PublishedAt = &now
		}
		post.IsPublished = *req.IsPublished
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toBlogPostResponse(post), nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {

	post, err := s.blogRepo.GetById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*response_models.BlogPostResponse, error) {

	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil || !post.IsPublished {
		return nil, utils.ErrPostNotFound
	}

	return toBlogPostResponse(post), nil
}

func (s *BlogService) ListPublished(ctx context.Context, page, pageSize int) ([]response_models.BlogPostSummary, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	posts, err := s.blogRepo.ListPublished(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBlogPostSummaries(posts), nil
}

func (s *BlogService) ListAll(ctx context.Context, page, pageSize int) ([]response_models.BlogPostSummary, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	posts, err := s.blogRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBlogPostSummaries(posts), nil
}

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func toBlogPostResponse(post *db_models.BlogPost) *response_models.BlogPostResponse {
	return &response_models.BlogPostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Body:          []byte(post.Body),
		CoverImageURL: post.CoverImageURL,
		CategoryID:    post.CategoryID,
		IsPublished:   post.IsPublished,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

func toBlogPostSummaries(posts []db_models.BlogPost) []response_models.BlogPostSummary {
	result := make([]response_models.BlogPostSummary, 0, len(posts))
	for _, post := range posts {
		result = append(result, response_models.BlogPostSummary{
			ID:            post.ID,
			Title:         post.Title,
			Slug:          post.Slug,
			Excerpt:       post.Excerpt,
			CoverImageURL: post.CoverImageURL,
			CategoryID:    post.CategoryID,
			PublishedAt:   post.PublishedAt,
		})
	}
	return result
}
