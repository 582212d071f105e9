package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"promptly/internal/models/request_models"
)

func TestSubscribeIsIdempotent(t *testing.T) {
	repo := newFakeOutreachRepo()
	mail := newFakeMailService()
	svc := NewOutreachService(repo, mail)

	created, err := svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.True(t, created)

	created, err = svc.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.False(t, created)

	require.Len(t, repo.subscribers, 1)

	select {
	case to := <-mail.welcomes:
		require.Equal(t, "reader@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("welcome mail was never sent")
	}
}

func TestSubmitContactStoresAndNotifies(t *testing.T) {
	repo := newFakeOutreachRepo()
	mail := newFakeMailService()
	svc := NewOutreachService(repo, mail)

	err := svc.SubmitContact(context.Background(), request_models.ContactRequest{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "I would like a custom prompt pack.",
	})
	require.NoError(t, err)
	require.Len(t, repo.messages, 1)

	select {
	case from := <-mail.notifications:
		require.Equal(t, "grace@example.com", from)
	case <-time.After(time.Second):
		t.Fatal("contact notification was never sent")
	}
}

func TestSubmitContactHoneypotDropsSilently(t *testing.T) {
	repo := newFakeOutreachRepo()
	mail := newFakeMailService()
	svc := NewOutreachService(repo, mail)

	err := svc.SubmitContact(context.Background(), request_models.ContactRequest{
		Name:     "Bot",
		Email:    "bot@example.com",
		Message:  "Totally legitimate inquiry.",
		Honeypot: "http://spam.example",
	})
	require.NoError(t, err)
	require.Empty(t, repo.messages)
	require.Empty(t, mail.notifications)
}
