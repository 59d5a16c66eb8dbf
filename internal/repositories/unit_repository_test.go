package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

func newUnitFixture(t *testing.T) (NotificationRepository, PropertyRepository, UnitRepository) {
	t.Helper()
	s := store.NewMemory()
	notifier := NewNotificationRepository(s)
	return notifier, NewPropertyRepository(s, notifier), NewUnitRepository(s, notifier)
}

func TestUnitCreateRequiresOwnedBuilding(t *testing.T) {
	ctx := context.Background()
	_, props, units := newUnitFixture(t)

	building, err := props.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	villa, err := props.Create(ctx, "u1", &models.Property{Name: "Villa", Type: models.PropertyTypeVilla})
	require.NoError(t, err)

	created, err := units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)
	require.Equal(t, models.StatusVacant, created.Status)
	require.Equal(t, building.ID, created.PropertyID)

	// villas are let whole, never sub-divided
	_, err = units.Create(ctx, "u1", &models.Unit{PropertyID: villa.ID, UnitNumber: "A-2"})
	require.ErrorIs(t, err, ErrNotABuilding)

	// someone else's building looks like it does not exist
	_, err = units.Create(ctx, "intruder", &models.Unit{PropertyID: building.ID, UnitNumber: "A-3"})
	require.ErrorIs(t, err, ErrNotFoundOrForbidden)

	_, err = units.Create(ctx, "u1", &models.Unit{PropertyID: "no-such-property", UnitNumber: "A-4"})
	require.ErrorIs(t, err, ErrNotFoundOrForbidden)
}

func TestUnitListByProperty(t *testing.T) {
	ctx := context.Background()
	_, props, units := newUnitFixture(t)

	b1, err := props.Create(ctx, "u1", &models.Property{Name: "Tower 1", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	b2, err := props.Create(ctx, "u1", &models.Property{Name: "Tower 2", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)

	for _, n := range []string{"A-1", "A-2"} {
		_, err := units.Create(ctx, "u1", &models.Unit{PropertyID: b1.ID, UnitNumber: n})
		require.NoError(t, err)
	}
	_, err = units.Create(ctx, "u1", &models.Unit{PropertyID: b2.ID, UnitNumber: "B-1"})
	require.NoError(t, err)

	got, err := units.ListByProperty(ctx, b1.ID, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	all, err := units.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 3)

	foreign, err := units.ListByProperty(ctx, b1.ID, "intruder")
	require.NoError(t, err)
	require.Empty(t, foreign)
}

func TestUnitSetOccupancy(t *testing.T) {
	ctx := context.Background()
	_, props, units := newUnitFixture(t)

	building, err := props.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	unit, err := units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)

	occupied, err := units.SetOccupancy(ctx, unit.ID, "u1", "tenant-1", true)
	require.NoError(t, err)
	require.Equal(t, "tenant-1", occupied.TenantID)
	require.Equal(t, models.StatusOccupied, occupied.Status)
	require.NotEmpty(t, occupied.StartDate)

	// removing from an already-vacant unit is a harmless overwrite
	vacant, err := units.SetOccupancy(ctx, unit.ID, "u1", "", false)
	require.NoError(t, err)
	vacant, err = units.SetOccupancy(ctx, unit.ID, "u1", "", false)
	require.NoError(t, err)
	require.Empty(t, vacant.TenantID)
	require.Equal(t, models.StatusVacant, vacant.Status)
}
