package request_models

// SubmitPromptRequest is bound from the public multipart form; the optional
// image file is read off the form separately.
type SubmitPromptRequest struct {
	Name       string `form:"name" binding:"required,min=1"`
	Handle     string `form:"handle"`
	Email      string `form:"email" binding:"required,email"`
	Tool       string `form:"tool" binding:"required"`
	PromptText string `form:"promptText" binding:"required,min=5"`
	Link       string `form:"link" binding:"omitempty,url"`
	Consent    bool   `form:"consent"`
}

type ModerateSubmissionRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
