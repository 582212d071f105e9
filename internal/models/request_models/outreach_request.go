package request_models

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
	// Anti-spam: humans leave this empty.
	Honeypot string `json:"honeypot"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}
