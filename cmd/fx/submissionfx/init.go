package submissionfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"promptly/internal/infra"
	"promptly/internal/repositories"
	"promptly/internal/services"
)

var Module = fx.Provide(
	provideSubmissionRepo, provideSubmissionService)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepository {
	return repositories.NewSubmissionRepository(db)
}

func provideSubmissionService(submissionRepo repositories.SubmissionRepository, assets infra.ObjectStore) services.SubmissionServiceInterface {
	return services.NewSubmissionService(submissionRepo, assets)
}
