package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"promptly/internal/models/request_models"
	"promptly/internal/repositories"
	"promptly/internal/services"
	"promptly/pkg/utils"
)

type PromptController struct {
	promptService services.PromptServiceInterface
}

func NewPromptController(promptService services.PromptServiceInterface) *PromptController {
	return &PromptController{
		promptService: promptService,
	}
}

// ListPrompts godoc
// @Summary List library prompts
// @Tags Prompts
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12, max 100)"
// @Param category query string false "Exact category match; All disables the filter"
// @Param search query string false "Substring match over title, tags and prompt text"
// @Success 200 {object} utils.APIResponse
// @Router /api/prompts [get]
func (p *PromptController) ListPrompts(c *gin.Context) {
	page, limit, err := parsePaging(c, 12)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filter := repositories.PromptFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	paged, err := p.promptService.ListPrompts(c.Request.Context(), filter, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, paged, "Prompts fetched successfully")
}

func (p *PromptController) GetPromptByID(c *gin.Context) {
	promptID := c.Param("id")
	if promptID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Prompt ID is required")
		return
	}

	prompt, err := p.promptService.GetPromptByID(c.Request.Context(), promptID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompt, "Prompt fetched successfully")
}

// CreatePrompt godoc
// @Summary Create a library prompt (admin)
// @Tags Prompts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePromptRequest true "Prompt payload"
// @Success 201 {object} utils.APIResponse
// @Router /api/admin/prompts [post]
func (p *PromptController) CreatePrompt(c *gin.Context) {
	var req request_models.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	prompt, err := p.promptService.CreatePrompt(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, prompt, "Prompt created successfully")
}
