package blogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"promptly/internal/repositories"
	"promptly/internal/services"
)

var Module = fx.Provide(
	provideBlogRepo, provideBlogService)

func provideBlogRepo(db *gorm.DB) repositories.BlogRepository {
	return repositories.NewBlogRepository(db)
}

func provideBlogService(blogRepo repositories.BlogRepository) services.BlogServiceInterface {
	return services.NewBlogService(blogRepo)
}
