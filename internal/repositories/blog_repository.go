package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
)

type BlogRepository interface {
	Create(ctx context.Context, post *db_models.BlogPost) (uuid.UUID, error)
	Update(ctx context.Context, post *db_models.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id string) (*db_models.BlogPost, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error)
	ListPublished(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, int64, error)
	ListAll(ctx context.Context) ([]db_models.BlogPost, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, post *db_models.BlogPost) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return uuid.Nil, err
	}
	return post.ID, nil
}

func (r *blogRepository) Update(ctx context.Context, post *db_models.BlogPost) error {
	result := r.db.WithContext(ctx).Save(post)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.BlogPost{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id string) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ? AND status = ?", slug, db_models.PostStatusPublished).
		First(&post).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) ListPublished(ctx context.Context, page, pageSize int) ([]db_models.BlogPost, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&db_models.BlogPost{}).
		Where("status = ?", db_models.PostStatusPublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []db_models.BlogPost
	offset := (page - 1) * pageSize

	err := query.
		Preload("Author").
		Order("created_at desc").
		Offset(offset).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *blogRepository) ListAll(ctx context.Context) ([]db_models.BlogPost, error) {
	var posts []db_models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
