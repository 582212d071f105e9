package response_models

import "promptly/internal/models/db_models"

type SubmissionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Handle      string `json:"handle,omitempty"`
	Email       string `json:"email,omitempty"`
	Tool        string `json:"tool"`
	PromptText  string `json:"promptText"`
	Link        string `json:"link,omitempty"`
	AssetPath   string `json:"assetPath,omitempty"`
	Status      string `json:"status"`
	ModeratedBy string `json:"moderatedBy,omitempty"`
	ModeratedAt *int64 `json:"moderatedAt,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// NewSubmissionResponse is the moderation-queue view, email included.
func NewSubmissionResponse(s *db_models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Handle:      s.Handle,
		Email:       s.Email,
		Tool:        s.Tool,
		PromptText:  s.PromptText,
		Link:        s.Link,
		AssetPath:   s.AssetPath,
		Status:      string(s.Status),
		ModeratedBy: s.ModeratedBy,
		ModeratedAt: s.ModeratedAt,
		CreatedAt:   s.CreatedAt,
	}
}

// NewCommunityResponse is the public view of an approved submission; the
// submitter's email never leaves the moderation queue.
func NewCommunityResponse(s *db_models.Submission) SubmissionResponse {
	resp := NewSubmissionResponse(s)
	resp.Email = ""
	resp.ModeratedBy = ""
	return resp
}
