package db_models

// Append-only records from the public contact and newsletter forms.

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`
}

type NewsletterSubscriber struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null"`
}
