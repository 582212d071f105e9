package services

import (
	"context"
	"log"

	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/models/response_models"
	"promptly/internal/repositories"
	"promptly/pkg/utils"
)

// CatalogService owns the offered-services catalog (admin CRUD, public list).
type CatalogServiceInterface interface {
	ListActive(ctx context.Context) ([]response_models.ServiceResponse, error)
	Create(ctx context.Context, request request_models.CreateServiceRequest) (response_models.ServiceResponse, error)
	Update(ctx context.Context, id string, request request_models.UpdateServiceRequest) (response_models.ServiceResponse, error)
	Delete(ctx context.Context, id string) error
}

type CatalogService struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogServiceInterface {
	return &CatalogService{
		serviceRepo: serviceRepo,
	}
}

func (s *CatalogService) ListActive(ctx context.Context) ([]response_models.ServiceResponse, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		log.Printf("Error listing services: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, response_models.NewServiceResponse(&services[i]))
	}
	return responses, nil
}

func (s *CatalogService) Create(ctx context.Context, request request_models.CreateServiceRequest) (response_models.ServiceResponse, error) {
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	service := &db_models.Service{
		Title:         request.Title,
		Description:   request.Description,
		StartingPrice: request.StartingPrice,
		IsActive:      isActive,
	}

	if _, err := s.serviceRepo.Create(ctx, service); err != nil {
		log.Printf("Error creating service: %v", err)
		return response_models.ServiceResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewServiceResponse(service), nil
}

func (s *CatalogService) Update(ctx context.Context, id string, request request_models.UpdateServiceRequest) (response_models.ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching service: %v", err)
		return response_models.ServiceResponse{}, utils.ErrDatabaseError
	}
	if service == nil {
		return response_models.ServiceResponse{}, utils.ErrServiceNotFound
	}

	if request.Title != nil {
		service.Title = *request.Title
	}
	if request.Description != nil {
		service.Description = *request.Description
	}
	if request.StartingPrice != nil {
		service.StartingPrice = *request.StartingPrice
	}
	if request.IsActive != nil {
		service.IsActive = *request.IsActive
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		log.Printf("Error updating service: %v", err)
		return response_models.ServiceResponse{}, utils.ErrDatabaseError
	}

	return response_models.NewServiceResponse(service), nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching service: %v", err)
		return utils.ErrDatabaseError
	}
	if service == nil {
		return utils.ErrServiceNotFound
	}

	if err := s.serviceRepo.Delete(ctx, service.ID); err != nil {
		log.Printf("Error deleting service: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
