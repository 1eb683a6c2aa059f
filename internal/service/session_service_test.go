package service_test

import (
	"testing"
	"time"

	"github.com/sefazor/weddingplanner-backend/internal/models"
	"github.com/sefazor/weddingplanner-backend/internal/service"
	"github.com/sefazor/weddingplanner-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_IssueAndResolve(t *testing.T) {
	svc := service.NewSessionService(testutil.NewSessionRepo(), time.Hour)

	issued, err := svc.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)

	resolved, err := svc.Resolve(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), resolved.UserID)
}

func TestSessionService_Resolve_Anonymous(t *testing.T) {
	svc := service.NewSessionService(testutil.NewSessionRepo(), time.Hour)

	_, err := svc.Resolve("")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	_, err = svc.Resolve("no-such-token")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSessionService_Resolve_Expired(t *testing.T) {
	repo := testutil.NewSessionRepo()
	svc := service.NewSessionService(repo, time.Hour)

	require.NoError(t, repo.Create(&models.Session{
		Token:     "stale",
		UserID:    42,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := svc.Resolve("stale")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// The expired row is gone for good
	_, ok := repo.Sessions["stale"]
	assert.False(t, ok)
}

func TestSessionService_Revoke(t *testing.T) {
	svc := service.NewSessionService(testutil.NewSessionRepo(), time.Hour)

	issued, err := svc.Issue(42)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(issued.Token))

	_, err = svc.Resolve(issued.Token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// Revoking an unknown or empty token is a no-op
	assert.NoError(t, svc.Revoke("no-such-token"))
	assert.NoError(t, svc.Revoke(""))
}

func TestSessionService_TokensAreUnique(t *testing.T) {
	svc := service.NewSessionService(testutil.NewSessionRepo(), time.Hour)

	first, err := svc.Issue(1)
	require.NoError(t, err)
	second, err := svc.Issue(1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}
