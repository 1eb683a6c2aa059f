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

func weddingFixture() models.WeddingRequest {
	return models.WeddingRequest{
		WedderOne: "Alice",
		WedderTwo: "Bob",
		Date:      time.Now().Add(30 * 24 * time.Hour),
		Address:   "1 Chapel St",
	}
}

func TestWeddingService_Create(t *testing.T) {
	repo := testutil.NewWeddingRepo(testutil.NewRSVPRepo(), testutil.NewUserRepo())
	svc := service.NewWeddingService(repo, false)

	wedding, err := svc.Create(7, weddingFixture())
	require.NoError(t, err)

	assert.Equal(t, uint(7), wedding.UserID)
	assert.Equal(t, "Alice", wedding.WedderOne)
	assert.NotZero(t, wedding.ID)
}

func TestWeddingService_GetAll_CreationOrder(t *testing.T) {
	repo := testutil.NewWeddingRepo(testutil.NewRSVPRepo(), testutil.NewUserRepo())
	svc := service.NewWeddingService(repo, false)

	first, err := svc.Create(1, weddingFixture())
	require.NoError(t, err)
	second, err := svc.Create(2, weddingFixture())
	require.NoError(t, err)

	weddings, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, weddings, 2)
	assert.Equal(t, first.ID, weddings[0].ID)
	assert.Equal(t, second.ID, weddings[1].ID)
}

func TestWeddingService_GetWithGuests_NotFound(t *testing.T) {
	repo := testutil.NewWeddingRepo(testutil.NewRSVPRepo(), testutil.NewUserRepo())
	svc := service.NewWeddingService(repo, false)

	_, err := svc.GetWithGuests(99)
	assert.ErrorIs(t, err, service.ErrWeddingNotFound)
}

func TestWeddingService_Delete(t *testing.T) {
	t.Run("missing wedding reports not found", func(t *testing.T) {
		repo := testutil.NewWeddingRepo(testutil.NewRSVPRepo(), testutil.NewUserRepo())
		svc := service.NewWeddingService(repo, false)

		err := svc.Delete(1, 99)
		assert.ErrorIs(t, err, service.ErrWeddingNotFound)
	})

	t.Run("any authenticated user may delete by default", func(t *testing.T) {
		repo := testutil.NewWeddingRepo(testutil.NewRSVPRepo(), testutil.NewUserRepo())
		svc := service.NewWeddingService(repo, false)

		wedding, err := svc.Create(1, weddingFixture())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(2, wedding.ID))

		weddings, err := svc.GetAll()
		require.NoError(t, err)
		assert.Empty(t, weddings)
	})

	t.Run("owner-only mode rejects other users", func(t *testing.T) {
		repo := testutil.NewWeddingRepo(testutil.NewRSVPRepo(), testutil.NewUserRepo())
		svc := service.NewWeddingService(repo, true)

		wedding, err := svc.Create(1, weddingFixture())
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Delete(2, wedding.ID), service.ErrNotWeddingOwner)
		assert.NoError(t, svc.Delete(1, wedding.ID))
	})

	t.Run("deleting a wedding drops its rsvps", func(t *testing.T) {
		rsvps := testutil.NewRSVPRepo()
		repo := testutil.NewWeddingRepo(rsvps, testutil.NewUserRepo())
		svc := service.NewWeddingService(repo, false)

		wedding, err := svc.Create(1, weddingFixture())
		require.NoError(t, err)

		_, err = rsvps.Create(&models.RSVP{UserID: 2, WeddingID: wedding.ID})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(1, wedding.ID))
		assert.Empty(t, rsvps.Rows)
	})
}
