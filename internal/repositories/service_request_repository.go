package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *db_models.ServiceRequest) (uuid.UUID, error)
	FindByID(ctx context.Context, id string) (*db_models.ServiceRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ServiceRequest, error)
	ListAll(ctx context.Context, status db_models.RequestStatus) ([]db_models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to db_models.RequestStatus) error
	UpdatePayment(ctx context.Context, id string, status db_models.PaymentStatus) error
}

type serviceRequestRepository struct {
	db *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *db_models.ServiceRequest) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return uuid.Nil, err
	}
	return request.ID, nil
}

func (r *serviceRequestRepository) FindByID(ctx context.Context, id string) (*db_models.ServiceRequest, error) {
	var request db_models.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		First(&request, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *serviceRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ServiceRequest, error) {
	var requests []db_models.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) ListAll(ctx context.Context, status db_models.RequestStatus) ([]db_models.ServiceRequest, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []db_models.ServiceRequest
	err := query.Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus is conditional on the status the caller validated against,
// so two racing updates cannot produce an illegal sequence; the loser sees
// ErrStatusConflict.
func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, id string, from, to db_models.RequestStatus) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.ServiceRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *serviceRequestRepository) UpdatePayment(ctx context.Context, id string, status db_models.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.ServiceRequest{}).
		Where("id = ?", id).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
