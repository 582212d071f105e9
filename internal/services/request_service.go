package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/models/response_models"
	"promptly/internal/repositories"
	"promptly/pkg/utils"
)

// RequestService drives the done-for-you service-request lifecycle:
// NEW → IN_PROGRESS → COMPLETED, REJECTED reachable from either.
type RequestServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, request request_models.CreateRequestRequest) (response_models.ServiceRequestResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]response_models.ServiceRequestResponse, error)
	ListForAdmin(ctx context.Context, status db_models.RequestStatus) ([]response_models.ServiceRequestResponse, error)
	SetStatus(ctx context.Context, id string, status db_models.RequestStatus) (response_models.ServiceRequestResponse, error)
	SetPaymentStatus(ctx context.Context, id string, status db_models.PaymentStatus) (response_models.ServiceRequestResponse, error)
}

type RequestService struct {
	requestRepo repositories.ServiceRequestRepository
	serviceRepo repositories.ServiceRepository
}

func NewRequestService(requestRepo repositories.ServiceRequestRepository, serviceRepo repositories.ServiceRepository) RequestServiceInterface {
	return &RequestService{
		requestRepo: requestRepo,
		serviceRepo: serviceRepo,
	}
}

func (r *RequestService) Create(ctx context.Context, userID uuid.UUID, request request_models.CreateRequestRequest) (response_models.ServiceRequestResponse, error) {
	service, err := r.serviceRepo.FindByID(ctx, request.ServiceID)
	if err != nil {
		log.Printf("Error fetching service: %v", err)
		return response_models.ServiceRequestResponse{}, utils.ErrDatabaseError
	}
	if service == nil {
		return response_models.ServiceRequestResponse{}, utils.ErrServiceNotFound
	}

	paymentStatus := db_models.PaymentStatusUnpaid
	if request.PaymentRef != "" {
		// A supplied transfer reference goes straight to the manual
		// verification queue.
		paymentStatus = db_models.PaymentStatusVerifying
	}

	newRequest := &db_models.ServiceRequest{
		UserID:        userID,
		ServiceID:     service.ID,
		Budget:        request.Budget,
		Deadline:      request.Deadline,
		Requirements:  datatypes.JSON(request.Requirements),
		Status:        db_models.RequestStatusNew,
		PaymentStatus: paymentStatus,
		PaymentRef:    request.PaymentRef,
	}

	if _, err := r.requestRepo.Create(ctx, newRequest); err != nil {
		log.Printf("Error creating service request: %v", err)
		return response_models.ServiceRequestResponse{}, utils.ErrDatabaseError
	}

	newRequest.Service = *service
	return response_models.NewServiceRequestResponse(newRequest), nil
}

func (r *RequestService) ListForUser(ctx context.Context, userID uuid.UUID) ([]response_models.ServiceRequestResponse, error) {
	requests, err := r.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing service requests: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, response_models.NewServiceRequestResponse(&requests[i]))
	}
	return responses, nil
}

func (r *RequestService) ListForAdmin(ctx context.Context, status db_models.RequestStatus) ([]response_models.ServiceRequestResponse, error) {
	requests, err := r.requestRepo.ListAll(ctx, status)
	if err != nil {
		log.Printf("Error listing service requests: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ServiceRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, response_models.NewAdminRequestResponse(&requests[i]))
	}
	return responses, nil
}

func (r *RequestService) SetStatus(ctx context.Context, id string, status db_models.RequestStatus) (response_models.ServiceRequestResponse, error) {
	existing, err := r.requestRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching service request: %v", err)
		return response_models.ServiceRequestResponse{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.ServiceRequestResponse{}, utils.ErrRequestNotFound
	}

	if !db_models.CanTransition(existing.Status, status) {
		return response_models.ServiceRequestResponse{}, utils.ErrIllegalTransition
	}

	if err := r.requestRepo.UpdateStatus(ctx, id, existing.Status, status); err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			// The status moved under us; the transition we validated no
			// longer applies.
			return response_models.ServiceRequestResponse{}, utils.ErrIllegalTransition
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response_models.ServiceRequestResponse{}, utils.ErrRequestNotFound
		}
		log.Printf("Error updating service request: %v", err)
		return response_models.ServiceRequestResponse{}, utils.ErrDatabaseError
	}

	existing.Status = status
	return response_models.NewAdminRequestResponse(existing), nil
}

func (r *RequestService) SetPaymentStatus(ctx context.Context, id string, status db_models.PaymentStatus) (response_models.ServiceRequestResponse, error) {
	existing, err := r.requestRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching service request: %v", err)
		return response_models.ServiceRequestResponse{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.ServiceRequestResponse{}, utils.ErrRequestNotFound
	}

	if err := r.requestRepo.UpdatePayment(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response_models.ServiceRequestResponse{}, utils.ErrRequestNotFound
		}
		log.Printf("Error updating payment status: %v", err)
		return response_models.ServiceRequestResponse{}, utils.ErrDatabaseError
	}

	existing.PaymentStatus = status
	return response_models.NewAdminRequestResponse(existing), nil
}
