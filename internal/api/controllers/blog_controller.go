package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"promptly/internal/models/request_models"
	"promptly/internal/services"
	"promptly/pkg/utils"
)

type BlogController struct {
	blogService services.BlogServiceInterface
}

func NewBlogController(blogService services.BlogServiceInterface) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

func (b *BlogController) ListPublished(c *gin.Context) {
	page, limit, err := parsePaging(c, 10)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	paged, err := b.blogService.ListPublished(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, paged, "Posts fetched successfully")
}

func (b *BlogController) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Slug is required")
		return
	}

	post, err := b.blogService.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

func (b *BlogController) ListAll(c *gin.Context) {
	posts, err := b.blogService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"data": posts}, "Posts fetched successfully")
}

func (b *BlogController) GetByID(c *gin.Context) {
	postID := c.Param("id")

	post, err := b.blogService.GetByID(c.Request.Context(), postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

// Create godoc
// @Summary Create a blog post (admin/editor)
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/admin/blog [post]
func (b *BlogController) Create(c *gin.Context) {
	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	authorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session principal")
		return
	}

	post, err := b.blogService.Create(c.Request.Context(), req, authorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created successfully")
}

func (b *BlogController) Update(c *gin.Context) {
	postID := c.Param("id")

	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := b.blogService.Update(c.Request.Context(), postID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

func (b *BlogController) Delete(c *gin.Context) {
	postID := c.Param("id")

	if err := b.blogService.Delete(c.Request.Context(), postID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true}, "Post deleted successfully")
}
