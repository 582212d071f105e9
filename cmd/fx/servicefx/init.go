package servicefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"promptly/internal/repositories"
	"promptly/internal/services"
)

var Module = fx.Provide(
	provideServiceRepo, provideRequestRepo, provideCatalogService, provideRequestService)

func provideServiceRepo(db *gorm.DB) repositories.ServiceRepository {
	return repositories.NewServiceRepository(db)
}

func provideRequestRepo(db *gorm.DB) repositories.ServiceRequestRepository {
	return repositories.NewServiceRequestRepository(db)
}

func provideCatalogService(serviceRepo repositories.ServiceRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(serviceRepo)
}

func provideRequestService(requestRepo repositories.ServiceRequestRepository, serviceRepo repositories.ServiceRepository) services.RequestServiceInterface {
	return services.NewRequestService(requestRepo, serviceRepo)
}
