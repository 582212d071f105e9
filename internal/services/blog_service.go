package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/models/response_models"
	"promptly/internal/repositories"
	"promptly/pkg/utils"
)

type BlogServiceInterface interface {
	ListPublished(ctx context.Context, page, pageSize int) (response_models.PagedData, error)
	GetPublishedBySlug(ctx context.Context, slug string) (response_models.BlogPostResponse, error)
	ListAll(ctx context.Context) ([]response_models.BlogPostResponse, error)
	GetByID(ctx context.Context, id string) (response_models.BlogPostResponse, error)
	Create(ctx context.Context, request request_models.CreatePostRequest, authorID uuid.UUID) (response_models.BlogPostResponse, error)
	Update(ctx context.Context, id string, request request_models.UpdatePostRequest) (response_models.BlogPostResponse, error)
	Delete(ctx context.Context, id string) error
}

type BlogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogServiceInterface {
	return &BlogService{
		blogRepo: blogRepo,
	}
}

func (b *BlogService) ListPublished(ctx context.Context, page, pageSize int) (response_models.PagedData, error) {
	posts, total, err := b.blogRepo.ListPublished(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing blog posts: %v", err)
		return response_models.PagedData{}, utils.ErrDatabaseError
	}

	responses := make([]response_models.BlogPostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, response_models.NewBlogListResponse(&posts[i]))
	}

	return response_models.PagedData{
		Data: responses,
		Meta: response_models.NewMeta(total, page, pageSize),
	}, nil
}

func (b *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (response_models.BlogPostResponse, error) {
	post, err := b.blogRepo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		log.Printf("Error fetching blog post: %v", err)
		return response_models.BlogPostResponse{}, utils.ErrDatabaseError
	}
	if post == nil {
		return response_models.BlogPostResponse{}, utils.ErrPostNotFound
	}
	return response_models.NewBlogPostResponse(post), nil
}

func (b *BlogService) ListAll(ctx context.Context) ([]response_models.BlogPostResponse, error) {
	posts, err := b.blogRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing blog posts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.BlogPostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, response_models.NewBlogListResponse(&posts[i]))
	}
	return responses, nil
}

func (b *BlogService) GetByID(ctx context.Context, id string) (response_models.BlogPostResponse, error) {
	post, err := b.blogRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching blog post: %v", err)
		return response_models.BlogPostResponse{}, utils.ErrDatabaseError
	}
	if post == nil {
		return response_models.BlogPostResponse{}, utils.ErrPostNotFound
	}
	return response_models.NewBlogPostResponse(post), nil
}

func (b *BlogService) Create(ctx context.Context, request request_models.CreatePostRequest, authorID uuid.UUID) (response_models.BlogPostResponse, error) {
	if !utils.ValidSlug(request.Slug) {
		return response_models.BlogPostResponse{}, utils.ErrInvalidSlug
	}

	status := db_models.PostStatusDraft
	if request.Status != "" {
		status = db_models.PostStatus(request.Status)
	}

	post := &db_models.BlogPost{
		Title:          request.Title,
		Slug:           request.Slug,
		Content:        request.Content,
		Excerpt:        request.Excerpt,
		FeaturedImage:  request.FeaturedImage,
		Status:         status,
		SEOTitle:       request.SEOTitle,
		SEODescription: request.SEODescription,
		AuthorID:       authorID,
	}

	if status == db_models.PostStatusPublished {
		now := time.Now().Unix()
		post.PublishedAt = &now
	}

	if _, err := b.blogRepo.Create(ctx, post); err != nil {
		// The unique index arbitrates slug races; no read-then-write check.
		if repositories.IsUniqueViolation(err) {
			return response_models.BlogPostResponse{}, utils.ErrSlugTaken
		}
		log.Printf("Error creating blog post: %v", err)
		return response_models.BlogPostResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewBlogPostResponse(post), nil
}

func (b *BlogService) Update(ctx context.Context, id string, request request_models.UpdatePostRequest) (response_models.BlogPostResponse, error) {
	post, err := b.blogRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching blog post: %v", err)
		return response_models.BlogPostResponse{}, utils.ErrDatabaseError
	}
	if post == nil {
		return response_models.BlogPostResponse{}, utils.ErrPostNotFound
	}

	if request.Slug != nil {
		if !utils.ValidSlug(*request.Slug) {
			return response_models.BlogPostResponse{}, utils.ErrInvalidSlug
		}
		post.Slug = *request.Slug
	}
	if request.Title != nil {
		post.Title = *request.Title
	}
	if request.Content != nil {
		post.Content = *request.Content
	}
	if request.Excerpt != nil {
		post.Excerpt = *request.Excerpt
	}
	if request.FeaturedImage != nil {
		post.FeaturedImage = *request.FeaturedImage
	}
	if request.SEOTitle != nil {
		post.SEOTitle = *request.SEOTitle
	}
	if request.SEODescription != nil {
		post.SEODescription = *request.SEODescription
	}
	if request.Status != nil {
		post.Status = db_models.PostStatus(*request.Status)
		// published_at is stamped exactly once, on the first publish
		if post.Status == db_models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now().Unix()
			post.PublishedAt = &now
		}
	}

	if err := b.blogRepo.Update(ctx, post); err != nil {
		if repositories.IsUniqueViolation(err) {
			return response_models.BlogPostResponse{}, utils.ErrSlugTaken
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response_models.BlogPostResponse{}, utils.ErrPostNotFound
		}
		log.Printf("Error updating blog post: %v", err)
		return response_models.BlogPostResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewBlogPostResponse(post), nil
}

func (b *BlogService) Delete(ctx context.Context, id string) error {
	post, err := b.blogRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching blog post: %v", err)
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if err := b.blogRepo.Delete(ctx, post.ID); err != nil {
		log.Printf("Error deleting blog post: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
