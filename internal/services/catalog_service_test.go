package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"promptly/internal/models/request_models"
	"promptly/pkg/utils"
)

func TestCatalogCreateDefaultsActive(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo)

	created, err := svc.Create(context.Background(), request_models.CreateServiceRequest{
		Title:         "Prompt Audit",
		Description:   "We review and tighten your prompt library",
		StartingPrice: 9900,
	})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
}

func TestCatalogDeactivatedServiceHiddenFromList(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo)

	created, err := svc.Create(context.Background(), request_models.CreateServiceRequest{
		Title:         "Prompt Audit",
		Description:   "desc",
		StartingPrice: 9900,
	})
	require.NoError(t, err)

	off := false
	_, err = svc.Update(context.Background(), created.ID, request_models.UpdateServiceRequest{
		IsActive: &off,
	})
	require.NoError(t, err)

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestCatalogUpdateUnknownService(t *testing.T) {
	svc := NewCatalogService(newFakeServiceRepo())

	title := "nope"
	_, err := svc.Update(context.Background(), uuid.New().String(), request_models.UpdateServiceRequest{
		Title: &title,
	})
	require.ErrorIs(t, err, utils.ErrServiceNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), uuid.New().String()), utils.ErrServiceNotFound)
}
