package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/models/db_models"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *db_models.Submission) (uuid.UUID, error)
	FindByID(ctx context.Context, id string) (*db_models.Submission, error)
	ListByStatus(ctx context.Context, status db_models.SubmissionStatus, page, pageSize int) ([]db_models.Submission, int64, error)
	Moderate(ctx context.Context, id string, decision db_models.SubmissionStatus, moderator string, derived *db_models.Prompt) (*db_models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *db_models.Submission) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return uuid.Nil, err
	}
	return submission.ID, nil
}

func (r *submissionRepository) FindByID(ctx context.Context, id string) (*db_models.Submission, error) {
	var submission db_models.Submission
	err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) ListByStatus(ctx context.Context, status db_models.SubmissionStatus, page, pageSize int) ([]db_models.Submission, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&db_models.Submission{}).
		Where("status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []db_models.Submission
	offset := (page - 1) * pageSize

	err := query.
		Order("created_at desc").
		Offset(offset).
		Limit(pageSize).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

// Moderate performs the status flip and, on approval, the derived library
// insert as one transaction. The row is re-read inside the transaction so a
// concurrent second call cannot approve twice or duplicate the derived
// prompt; ErrAlreadyDecided signals a lost race / repeat call.
func (r *submissionRepository) Moderate(ctx context.Context, id string, decision db_models.SubmissionStatus, moderator string, derived *db_models.Prompt) (*db_models.Submission, error) {
	var submission db_models.Submission

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&submission, "id = ?", id).Error; err != nil {
			return err
		}

		if submission.Status.Terminal() {
			return ErrAlreadyDecided
		}

		now := time.Now().Unix()
		result := tx.Model(&db_models.Submission{}).
			Where("id = ? AND status = ?", id, db_models.SubmissionStatusPending).
			Updates(map[string]interface{}{
				"status":       decision,
				"moderated_by": moderator,
				"moderated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyDecided
		}

		submission.Status = decision
		submission.ModeratedBy = moderator
		submission.ModeratedAt = &now

		if decision == db_models.SubmissionStatusApproved && derived != nil {
			if err := tx.Create(derived).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return &submission, nil
}
