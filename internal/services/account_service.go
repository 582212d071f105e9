package services

import (
	"context"
	"log"

	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/policy"
	"promptly/internal/repositories"
	"promptly/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, string, error)
	Register(ctx context.Context, request request_models.SignUpRequest) error
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
	}
}

// Login returns a signed token and the account role.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, string, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return "", "", utils.ErrDatabaseError
	}

	if user == nil {
		return "", "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return "", "", utils.ErrInvalidCredentials
	}

	return token, user.Role, nil
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         policy.RoleUser,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		if repositories.IsUniqueViolation(err) {
			return utils.ErrEmailAlreadyExists
		}
		log.Printf("Error creating account: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}
