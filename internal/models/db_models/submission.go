package db_models

import "github.com/google/uuid"

type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Terminal reports whether a status can no longer change. There is no
// reopening path once a submission is moderated.
func (s SubmissionStatus) Terminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

type Submission struct {
	BaseModel
	Name       string `gorm:"not null"`
	Handle     string
	Email      string `gorm:"not null"`
	Tool       string `gorm:"not null"`
	PromptText string `gorm:"type:text;not null"`
	Link       string
	AssetPath  string
	Consent    bool

	Status      SubmissionStatus `gorm:"size:16;default:'pending';index"`
	ModeratedBy string
	ModeratedAt *int64

	SubmitterID *uuid.UUID `gorm:"type:uuid;index"` // set when the visitor was logged in
}

// DerivedPrompt builds the library entry an approval materializes.
func (s *Submission) DerivedPrompt() *Prompt {
	return &Prompt{
		Title:        s.Name + "'s Prompt",
		Description:  "Community Submission",
		Category:     s.Tool,
		FullPrompt:   s.PromptText,
		Tags:         "community",
		ImageURL:     s.AssetPath,
		PreviewImage: s.AssetPath,
	}
}
