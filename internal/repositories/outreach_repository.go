package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"promptly/internal/models/db_models"
)

type OutreachRepository interface {
	CreateContactMessage(ctx context.Context, message *db_models.ContactMessage) error
	FindSubscriberByEmail(ctx context.Context, email string) (*db_models.NewsletterSubscriber, error)
	CreateSubscriber(ctx context.Context, subscriber *db_models.NewsletterSubscriber) error
}

type outreachRepository struct {
	db *gorm.DB
}

func NewOutreachRepository(db *gorm.DB) OutreachRepository {
	return &outreachRepository{db: db}
}

func (r *outreachRepository) CreateContactMessage(ctx context.Context, message *db_models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *outreachRepository) FindSubscriberByEmail(ctx context.Context, email string) (*db_models.NewsletterSubscriber, error) {
	var subscriber db_models.NewsletterSubscriber
	err := r.db.WithContext(ctx).First(&subscriber, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *outreachRepository) CreateSubscriber(ctx context.Context, subscriber *db_models.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Create(subscriber).Error
}
