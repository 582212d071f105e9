package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"promptly/internal/models/db_models"
	"promptly/internal/models/request_models"
	"promptly/pkg/utils"
)

func newTestRequestService(t *testing.T) (*fakeRequestRepo, *fakeServiceRepo, RequestServiceInterface, uuid.UUID) {
	t.Helper()
	requestRepo := newFakeRequestRepo()
	serviceRepo := newFakeServiceRepo()

	serviceID, err := serviceRepo.Create(context.Background(), &db_models.Service{
		Title:         "Custom Prompt Pack",
		Description:   "Ten prompts tailored to your brand",
		StartingPrice: 4900,
		IsActive:      true,
	})
	require.NoError(t, err)

	return requestRepo, serviceRepo, NewRequestService(requestRepo, serviceRepo), serviceID
}

func TestCreateRequestStartsNew(t *testing.T) {
	repo, _, svc, serviceID := newTestRequestService(t)
	userID := uuid.New()

	created, err := svc.Create(context.Background(), userID, request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Budget:       "$500",
		Deadline:     "2026-10-01",
		Requirements: json.RawMessage(`{"tone":"playful"}`),
	})
	require.NoError(t, err)
	require.Equal(t, string(db_models.RequestStatusNew), created.Status)
	require.Equal(t, string(db_models.PaymentStatusUnpaid), created.PaymentStatus)
	require.Equal(t, "Custom Prompt Pack", created.ServiceTitle)

	stored := repo.requests[created.ID]
	require.NotNil(t, stored)
	require.Equal(t, userID, stored.UserID)
}

func TestCreateRequestWithPaymentRefGoesToVerifying(t *testing.T) {
	_, _, svc, serviceID := newTestRequestService(t)

	created, err := svc.Create(context.Background(), uuid.New(), request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Requirements: json.RawMessage(`{}`),
		PaymentRef:   "TRF-2026-0042",
	})
	require.NoError(t, err)
	require.Equal(t, string(db_models.PaymentStatusVerifying), created.PaymentStatus)
	require.Equal(t, "TRF-2026-0042", created.PaymentRef)
}

func TestCreateRequestUnknownService(t *testing.T) {
	_, _, svc, _ := newTestRequestService(t)

	_, err := svc.Create(context.Background(), uuid.New(), request_models.CreateRequestRequest{
		ServiceID:    uuid.New().String(),
		Requirements: json.RawMessage(`{}`),
	})
	require.ErrorIs(t, err, utils.ErrServiceNotFound)
}

func TestStatusLifecycleLegalChain(t *testing.T) {
	_, _, svc, serviceID := newTestRequestService(t)

	created, err := svc.Create(context.Background(), uuid.New(), request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Requirements: json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), created.ID, db_models.RequestStatusInProgress)
	require.NoError(t, err)
	require.Equal(t, string(db_models.RequestStatusInProgress), updated.Status)

	updated, err = svc.SetStatus(context.Background(), created.ID, db_models.RequestStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, string(db_models.RequestStatusCompleted), updated.Status)
}

func TestStatusLifecycleIllegalTransitions(t *testing.T) {
	_, _, svc, serviceID := newTestRequestService(t)

	created, err := svc.Create(context.Background(), uuid.New(), request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Requirements: json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	// NEW cannot jump straight to COMPLETED.
	_, err = svc.SetStatus(context.Background(), created.ID, db_models.RequestStatusCompleted)
	require.ErrorIs(t, err, utils.ErrIllegalTransition)

	_, err = svc.SetStatus(context.Background(), created.ID, db_models.RequestStatusRejected)
	require.NoError(t, err)

	// REJECTED is terminal.
	_, err = svc.SetStatus(context.Background(), created.ID, db_models.RequestStatusInProgress)
	require.ErrorIs(t, err, utils.ErrIllegalTransition)
	_, err = svc.SetStatus(context.Background(), created.ID, db_models.RequestStatusNew)
	require.ErrorIs(t, err, utils.ErrIllegalTransition)
}

// staleReadRequestRepo hands out a snapshot taken before a concurrent
// update landed, the way a second admin's read can go stale between the
// legality check and the write.
type staleReadRequestRepo struct {
	*fakeRequestRepo
	snapshot db_models.ServiceRequest
}

func (s *staleReadRequestRepo) FindByID(ctx context.Context, id string) (*db_models.ServiceRequest, error) {
	copied := s.snapshot
	return &copied, nil
}

func TestSetStatusLostRaceIsConflict(t *testing.T) {
	repo, _, svc, serviceID := newTestRequestService(t)

	created, err := svc.Create(context.Background(), uuid.New(), request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Requirements: json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	// Another admin rejects the request; this caller still holds the NEW
	// snapshot its legality check ran against.
	snapshot := *repo.requests[created.ID]
	repo.requests[created.ID].Status = db_models.RequestStatusRejected

	stale := &staleReadRequestRepo{fakeRequestRepo: repo, snapshot: snapshot}
	staleSvc := NewRequestService(stale, newFakeServiceRepo())

	_, err = staleSvc.SetStatus(context.Background(), created.ID, db_models.RequestStatusInProgress)
	require.ErrorIs(t, err, utils.ErrIllegalTransition)
	require.Equal(t, db_models.RequestStatusRejected, repo.requests[created.ID].Status)
}

func TestSetStatusUnknownRequest(t *testing.T) {
	_, _, svc, _ := newTestRequestService(t)

	_, err := svc.SetStatus(context.Background(), uuid.New().String(), db_models.RequestStatusInProgress)
	require.ErrorIs(t, err, utils.ErrRequestNotFound)
}

func TestSetPaymentStatus(t *testing.T) {
	repo, _, svc, serviceID := newTestRequestService(t)

	created, err := svc.Create(context.Background(), uuid.New(), request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Requirements: json.RawMessage(`{}`),
		PaymentRef:   "TRF-77",
	})
	require.NoError(t, err)

	updated, err := svc.SetPaymentStatus(context.Background(), created.ID, db_models.PaymentStatusPaid)
	require.NoError(t, err)
	require.Equal(t, string(db_models.PaymentStatusPaid), updated.PaymentStatus)
	require.Equal(t, db_models.PaymentStatusPaid, repo.requests[created.ID].PaymentStatus)
}

func TestListForUserScopesToOwner(t *testing.T) {
	_, _, svc, serviceID := newTestRequestService(t)
	owner := uuid.New()
	stranger := uuid.New()

	_, err := svc.Create(context.Background(), owner, request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Requirements: json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), stranger, request_models.CreateRequestRequest{
		ServiceID:    serviceID.String(),
		Requirements: json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	owned, err := svc.ListForUser(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, owned, 1)

	all, err := svc.ListForAdmin(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}
