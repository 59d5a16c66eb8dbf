package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

func TestLeaseCreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	notifier := NewNotificationRepository(s)
	repo := NewLeaseRepository(s, notifier)

	created, err := repo.Create(ctx, "u1", &models.Lease{
		TenantID:   "tenant-1",
		PropertyID: "prop-1",
		StartDate:  "2026-01-01",
		EndDate:    "2026-12-31",
		RentAmount: 45000,
		Terms:      "annual, paid quarterly",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// fetching by the returned id gives back every input field unchanged
	got, err := repo.GetByID(ctx, created.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, created, got)
	require.Equal(t, "tenant-1", got.TenantID)
	require.Equal(t, float64(45000), got.RentAmount)
	require.Equal(t, "annual, paid quarterly", got.Terms)
}

func TestLeaseNotificationTargetsUnitOverProperty(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	notifier := NewNotificationRepository(s)
	repo := NewLeaseRepository(s, notifier)

	_, err := repo.Create(ctx, "u1", &models.Lease{
		TenantID:   "tenant-1",
		PropertyID: "prop-1",
		UnitID:     "unit-9",
		StartDate:  "2026-01-01",
		RentAmount: 2000,
	})
	require.NoError(t, err)

	feed, err := notifier.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, "Lease Created", feed[0].Title)
	require.Contains(t, feed[0].Message, "unit-9")
}
