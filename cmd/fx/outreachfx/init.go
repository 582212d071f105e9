package outreachfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"promptly/internal/repositories"
	"promptly/internal/services"
)

var Module = fx.Provide(
	provideOutreachRepo, provideOutreachService)

func provideOutreachRepo(db *gorm.DB) repositories.OutreachRepository {
	return repositories.NewOutreachRepository(db)
}

func provideOutreachService(outreachRepo repositories.OutreachRepository, mailService services.IMailService) services.OutreachServiceInterface {
	return services.NewOutreachService(outreachRepo, mailService)
}
