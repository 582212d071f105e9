package response_models

import "promptly/internal/models/db_models"

type PostAuthor struct {
	Name string `json:"name"`
}

type BlogPostResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Content        string     `json:"content,omitempty"`
	Excerpt        string     `json:"excerpt,omitempty"`
	FeaturedImage  string     `json:"featuredImage,omitempty"`
	Status         string     `json:"status"`
	SEOTitle       string     `json:"seoTitle,omitempty"`
	SEODescription string     `json:"seoDescription,omitempty"`
	Author         PostAuthor `json:"author"`
	PublishedAt    *int64     `json:"publishedAt,omitempty"`
	CreatedAt      int64      `json:"createdAt"`
}

func NewBlogPostResponse(p *db_models.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		Slug:           p.Slug,
		Content:        p.Content,
		Excerpt:        p.Excerpt,
		FeaturedImage:  p.FeaturedImage,
		Status:         string(p.Status),
		SEOTitle:       p.SEOTitle,
		SEODescription: p.SEODescription,
		Author:         PostAuthor{Name: p.Author.Name},
		PublishedAt:    p.PublishedAt,
		CreatedAt:      p.CreatedAt,
	}
}

// NewBlogListResponse omits the full content for index pages.
func NewBlogListResponse(p *db_models.BlogPost) BlogPostResponse {
	resp := NewBlogPostResponse(p)
	resp.Content = ""
	return resp
}
