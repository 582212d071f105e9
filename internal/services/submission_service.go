package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"promptly/internal/infra"
	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/internal/models/response_models"
	"promptly/internal/repositories"
	"promptly/pkg/utils"
)

type SubmissionServiceInterface interface {
	Submit(ctx context.Context, request request_models.SubmitPromptRequest, file *multipart.FileHeader, submitterID *uuid.UUID) (uuid.UUID, error)
	ListCommunity(ctx context.Context, page, pageSize int) (response_models.PagedData, error)
	ListForModeration(ctx context.Context, status db_models.SubmissionStatus, page, pageSize int) (response_models.PagedData, error)
	Moderate(ctx context.Context, id string, decision db_models.SubmissionStatus, moderator string) (response_models.SubmissionResponse, error)
}

type SubmissionService struct {
	submissionRepo repositories.SubmissionRepository
	assets         infra.ObjectStore
}

func NewSubmissionService(submissionRepo repositories.SubmissionRepository, assets infra.ObjectStore) SubmissionServiceInterface {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		assets:         assets,
	}
}

func (s *SubmissionService) Submit(ctx context.Context, request request_models.SubmitPromptRequest, file *multipart.FileHeader, submitterID *uuid.UUID) (uuid.UUID, error) {
	assetPath := ""

	if file != nil {
		url, err := s.uploadAsset(ctx, file)
		if err != nil {
			log.Printf("Error uploading submission asset: %v", err)
			return uuid.Nil, utils.ErrDatabaseError
		}
		assetPath = url
	}

	submission := &db_models.Submission{
		Name:        request.Name,
		Handle:      request.Handle,
		Email:       request.Email,
		Tool:        request.Tool,
		PromptText:  request.PromptText,
		Link:        request.Link,
		AssetPath:   assetPath,
		Consent:     request.Consent,
		Status:      db_models.SubmissionStatusPending,
		SubmitterID: submitterID,
	}

	id, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		log.Printf("Error creating submission: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	return id, nil
}

func (s *SubmissionService) uploadAsset(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	key := fmt.Sprintf("submissions/%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], path.Ext(file.Filename))

	return s.assets.Upload(ctx, key, contentType, io.Reader(src), file.Size)
}

func (s *SubmissionService) ListCommunity(ctx context.Context, page, pageSize int) (response_models.PagedData, error) {
	submissions, total, err := s.submissionRepo.ListByStatus(ctx, db_models.SubmissionStatusApproved, page, pageSize)
	if err != nil {
		log.Printf("Error listing community submissions: %v", err)
		return response_models.PagedData{}, utils.ErrDatabaseError
	}

	responses := make([]response_models.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, response_models.NewCommunityResponse(&submissions[i]))
	}

	return response_models.PagedData{
		Data: responses,
		Meta: response_models.NewMeta(total, page, pageSize),
	}, nil
}

func (s *SubmissionService) ListForModeration(ctx context.Context, status db_models.SubmissionStatus, page, pageSize int) (response_models.PagedData, error) {
	submissions, total, err := s.submissionRepo.ListByStatus(ctx, status, page, pageSize)
	if err != nil {
		log.Printf("Error listing submissions: %v", err)
		return response_models.PagedData{}, utils.ErrDatabaseError
	}

	responses := make([]response_models.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, response_models.NewSubmissionResponse(&submissions[i]))
	}

	return response_models.PagedData{
		Data: responses,
		Meta: response_models.NewMeta(total, page, pageSize),
	}, nil
}

// Moderate drives the one-shot pending → approved/rejected transition.
// Approval also materializes the derived library prompt; both writes happen
// in a single transaction inside the repository.
func (s *SubmissionService) Moderate(ctx context.Context, id string, decision db_models.SubmissionStatus, moderator string) (response_models.SubmissionResponse, error) {
	if decision != db_models.SubmissionStatusApproved && decision != db_models.SubmissionStatusRejected {
		return response_models.SubmissionResponse{}, utils.ErrInvalidDecision
	}

	existing, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching submission: %v", err)
		return response_models.SubmissionResponse{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.SubmissionResponse{}, utils.ErrSubmissionNotFound
	}
	if existing.Status.Terminal() {
		return response_models.SubmissionResponse{}, utils.ErrAlreadyModerated
	}

	var derived *db_models.Prompt
	if decision == db_models.SubmissionStatusApproved {
		derived = existing.DerivedPrompt()
	}

	moderated, err := s.submissionRepo.Moderate(ctx, id, decision, moderator, derived)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAlreadyDecided):
			// Lost a race with another moderator.
			return response_models.SubmissionResponse{}, utils.ErrAlreadyModerated
		case errors.Is(err, gorm.ErrRecordNotFound):
			return response_models.SubmissionResponse{}, utils.ErrSubmissionNotFound
		default:
			log.Printf("Error moderating submission: %v", err)
			return response_models.SubmissionResponse{}, utils.ErrDatabaseError
		}
	}

	return response_models.NewSubmissionResponse(moderated), nil
}
