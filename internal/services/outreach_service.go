package services

import (
	"context"
	"log"

	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/repositories"
	"promptly/pkg/utils"
)

type OutreachServiceInterface interface {
	SubmitContact(ctx context.Context, request request_models.ContactRequest) error
	Subscribe(ctx context.Context, email string) (created bool, err error)
}

type OutreachService struct {
	outreachRepo repositories.OutreachRepository
	mailService  IMailService
}

func NewOutreachService(outreachRepo repositories.OutreachRepository, mailService IMailService) OutreachServiceInterface {
	return &OutreachService{
		outreachRepo: outreachRepo,
		mailService:  mailService,
	}
}

func (o *OutreachService) SubmitContact(ctx context.Context, request request_models.ContactRequest) error {
	// Bots fill the honeypot; answer success without writing anything.
	if request.Honeypot != "" {
		return nil
	}

	message := &db_models.ContactMessage{
		Name:    request.Name,
		Email:   request.Email,
		Message: request.Message,
	}

	if err := o.outreachRepo.CreateContactMessage(ctx, message); err != nil {
		log.Printf("Error storing contact message: %v", err)
		return utils.ErrDatabaseError
	}

	go func() {
		if err := o.mailService.SendContactNotification(request.Name, request.Email, request.Message); err != nil {
			log.Printf("Error sending contact notification: %v", err)
		}
	}()

	return nil
}

// Subscribe is idempotent on email: subscribing twice succeeds both times
// but creates exactly one row. The welcome mail is fire-and-forget.
func (o *OutreachService) Subscribe(ctx context.Context, email string) (bool, error) {
	existing, err := o.outreachRepo.FindSubscriberByEmail(ctx, email)
	if err != nil {
		log.Printf("Error fetching subscriber: %v", err)
		return false, utils.ErrDatabaseError
	}
	if existing != nil {
		return false, nil
	}

	subscriber := &db_models.NewsletterSubscriber{Email: email}
	if err := o.outreachRepo.CreateSubscriber(ctx, subscriber); err != nil {
		if repositories.IsUniqueViolation(err) {
			// Concurrent subscribe with the same address; still a success.
			return false, nil
		}
		log.Printf("Error creating subscriber: %v", err)
		return false, utils.ErrDatabaseError
	}

	go func() {
		if err := o.mailService.SendNewsletterWelcome(email); err != nil {
			log.Printf("Error sending welcome mail: %v", err)
		}
	}()

	return true, nil
}
