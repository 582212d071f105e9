package promptfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"promptly/internal/repositories"
	"promptly/internal/services"
)

var Module = fx.Provide(
	providePromptRepo, providePromptService)

func providePromptRepo(db *gorm.DB) repositories.PromptRepository {
	return repositories.NewPromptRepository(db)
}

func providePromptService(promptRepo repositories.PromptRepository) services.PromptServiceInterface {
	return services.NewPromptService(promptRepo)
}
