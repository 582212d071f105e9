package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"promptly/internal/repositories"
	"promptly/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}
