package request_models

type CreatePromptRequest struct {
	Title       string `json:"title" binding:"required,min=1"`
	Description string `json:"desc" binding:"required,min=1"`
	Category    string `json:"category" binding:"required,min=1"`
	FullPrompt  string `json:"fullPrompt" binding:"required,min=1"`
	Tags        string `json:"tags"` // comma separated
	ImageURL    string `json:"imageUrl"`

	AIPercentage           *int     `json:"aiPercentage" binding:"omitempty,min=0,max=100"`
	ManualSteps            []string `json:"manualSteps"`
	AITools                []string `json:"aiTools"`
	ManualTools            []string `json:"manualTools"`
	ShowExecutionBreakdown bool     `json:"showExecutionBreakdown"`
}
