package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"trendlens/internal/models/db_models"
)

type BlogRepositoryInterface interface {
	Insert(ctx context.Context, post *db_models.BlogPost) error
	Update(ctx context.Context, post *db_models.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetById(ctx context.Context, id string) (*db_models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error)
	ListPublished(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error)
	ListAll(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error)
}

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepositoryInterface {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Insert(ctx context.Context, post *db_models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *BlogRepository) Update(ctx context.Context, post *db_models.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.BlogPost{}, "id = ?", id).Error
}

func (r *BlogRepository) GetById(ctx context.Context, id string) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) ListPublished(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error) {
	var posts []db_models.BlogPost
	err := r.db.WithContext(ctx).
		Where("is_published = TRUE").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) ListAll(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, error) {
	var posts []db_models.BlogPost
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
