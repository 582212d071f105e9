package request_models

type CreatePostRequest struct {
	Title          string `json:"title" binding:"required,min=1"`
	Slug           string `json:"slug" binding:"required,min=1"`
	Content        string `json:"content" binding:"required,min=1"`
	Excerpt        string `json:"excerpt"`
	FeaturedImage  string `json:"featuredImage"`
	Status         string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

type UpdatePostRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1"`
	Slug           *string `json:"slug" binding:"omitempty,min=1"`
	Content        *string `json:"content" binding:"omitempty,min=1"`
	Excerpt        *string `json:"excerpt"`
	FeaturedImage  *string `json:"featuredImage"`
	Status         *string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	SEOTitle       *string `json:"seoTitle"`
	SEODescription *string `json:"seoDescription"`
}
