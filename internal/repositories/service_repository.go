package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *db_models.Service) (uuid.UUID, error)
	Update(ctx context.Context, service *db_models.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id string) (*db_models.Service, error)
	ListActive(ctx context.Context) ([]db_models.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *db_models.Service) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return uuid.Nil, err
	}
	return service.ID, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *db_models.Service) error {
	result := r.db.WithContext(ctx).Save(service)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Service{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*db_models.Service, error) {
	var service db_models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]db_models.Service, error) {
	var services []db_models.Service
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("created_at desc").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
