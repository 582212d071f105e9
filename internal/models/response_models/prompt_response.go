package response_models

import (
	"encoding/json"

	"promptly/internal/models/db_models"
)

type PromptResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"desc"`
	Category     string `json:"category"`
	FullPrompt   string `json:"fullPrompt"`
	Tags         string `json:"tags"`
	ImageURL     string `json:"imageUrl,omitempty"`
	PreviewImage string `json:"previewImage,omitempty"`
	CreatedAt    int64  `json:"createdAt"`

	AIPercentage           int      `json:"aiPercentage"`
	ManualSteps            []string `json:"manualSteps"`
	AITools                []string `json:"aiTools"`
	ManualTools            []string `json:"manualTools"`
	ShowExecutionBreakdown bool     `json:"showExecutionBreakdown"`
}

func NewPromptResponse(p *db_models.Prompt) PromptResponse {
	return PromptResponse{
		ID:                     p.ID.String(),
		Title:                  p.Title,
		Description:            p.Description,
		Category:               p.Category,
		FullPrompt:             p.FullPrompt,
		Tags:                   p.Tags,
		ImageURL:               p.ImageURL,
		PreviewImage:           p.PreviewImage,
		CreatedAt:              p.CreatedAt,
		AIPercentage:           p.AIPercentage,
		ManualSteps:            decodeStringList(p.ManualSteps),
		AITools:                decodeStringList(p.AITools),
		ManualTools:            decodeStringList(p.ManualTools),
		ShowExecutionBreakdown: p.ShowExecutionBreakdown,
	}
}

func decodeStringList(raw []byte) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}
