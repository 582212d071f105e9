package services

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/models/response_models"
	"promptly/internal/repositories"
	"promptly/pkg/utils"
)

type PromptServiceInterface interface {
	GetPromptByID(ctx context.Context, id string) (response_models.PromptResponse, error)
	ListPrompts(ctx context.Context, filter repositories.PromptFilter, page, pageSize int) (response_models.PagedData, error)
	CreatePrompt(ctx context.Context, request request_models.CreatePromptRequest) (response_models.PromptResponse, error)
}

type PromptService struct {
	promptRepo repositories.PromptRepository
}

func NewPromptService(promptRepo repositories.PromptRepository) PromptServiceInterface {
	return &PromptService{
		promptRepo: promptRepo,
	}
}

func (p *PromptService) GetPromptByID(ctx context.Context, id string) (response_models.PromptResponse, error) {
	prompt, err := p.promptRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching prompt: %v", err)
		return response_models.PromptResponse{}, utils.ErrDatabaseError
	}

	if prompt == nil {
		return response_models.PromptResponse{}, utils.ErrPromptNotFound
	}

	return response_models.NewPromptResponse(prompt), nil
}

func (p *PromptService) ListPrompts(ctx context.Context, filter repositories.PromptFilter, page, pageSize int) (response_models.PagedData, error) {
	prompts, total, err := p.promptRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		log.Printf("Error listing prompts: %v", err)
		return response_models.PagedData{}, utils.ErrDatabaseError
	}

	responses := make([]response_models.PromptResponse, 0, len(prompts))
	for i := range prompts {
		responses = append(responses, response_models.NewPromptResponse(&prompts[i]))
	}

	return response_models.PagedData{
		Data: responses,
		Meta: response_models.NewMeta(total, page, pageSize),
	}, nil
}

func (p *PromptService) CreatePrompt(ctx context.Context, request request_models.CreatePromptRequest) (response_models.PromptResponse, error) {
	aiPercentage := 0
	if request.AIPercentage != nil {
		aiPercentage = *request.AIPercentage
	}

	newPrompt := &db_models.Prompt{
		Title:                  request.Title,
		Description:            request.Description,
		Category:               request.Category,
		FullPrompt:             request.FullPrompt,
		Tags:                   request.Tags,
		ImageURL:               request.ImageURL,
		PreviewImage:           request.ImageURL,
		AIPercentage:           aiPercentage,
		ManualSteps:            encodeStringList(request.ManualSteps),
		AITools:                encodeStringList(request.AITools),
		ManualTools:            encodeStringList(request.ManualTools),
		ShowExecutionBreakdown: request.ShowExecutionBreakdown,
	}

	if _, err := p.promptRepo.Create(ctx, newPrompt); err != nil {
		log.Printf("Error creating prompt: %v", err)
		return response_models.PromptResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewPromptResponse(newPrompt), nil
}

func encodeStringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}
