package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

type occupancyFixture struct {
	notifier   repositories.NotificationRepository
	properties repositories.PropertyRepository
	units      repositories.UnitRepository
	tenants    repositories.TenantRepository
	occupancy  *OccupancyService
}

func newOccupancyFixture(t *testing.T) *occupancyFixture {
	t.Helper()
	s := store.NewMemory()
	notifier := repositories.NewNotificationRepository(s)
	properties := repositories.NewPropertyRepository(s, notifier)
	units := repositories.NewUnitRepository(s, notifier)
	tenants := repositories.NewTenantRepository(s, notifier)
	return &occupancyFixture{
		notifier:   notifier,
		properties: properties,
		units:      units,
		tenants:    tenants,
		occupancy:  NewOccupancyService(units, properties, tenants, notifier),
	}
}

func TestAssignTenantToUnitOverwrites(t *testing.T) {
	ctx := context.Background()
	f := newOccupancyFixture(t)

	building, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	unit, err := f.units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)
	t1, err := f.tenants.Create(ctx, "u1", &models.Tenant{Name: "Ali"})
	require.NoError(t, err)
	t2, err := f.tenants.Create(ctx, "u1", &models.Tenant{Name: "Omar"})
	require.NoError(t, err)

	occupied, err := f.occupancy.AssignTenantToUnit(ctx, "u1", unit.ID, t1.ID)
	require.NoError(t, err)
	require.Equal(t, t1.ID, occupied.TenantID)
	require.Equal(t, models.StatusOccupied, occupied.Status)

	// assigning over an existing occupant silently replaces them
	occupied, err = f.occupancy.AssignTenantToUnit(ctx, "u1", unit.ID, t2.ID)
	require.NoError(t, err)
	require.Equal(t, t2.ID, occupied.TenantID)
	require.Equal(t, models.StatusOccupied, occupied.Status)

	// the tenant records themselves never change
	got, err := f.tenants.GetByID(ctx, t1.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, "Ali", got.Name)
}

func TestRemoveTenantFromUnitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newOccupancyFixture(t)

	building, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	unit, err := f.units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)
	tenant, err := f.tenants.Create(ctx, "u1", &models.Tenant{Name: "Ali"})
	require.NoError(t, err)

	_, err = f.occupancy.AssignTenantToUnit(ctx, "u1", unit.ID, tenant.ID)
	require.NoError(t, err)

	vacant, err := f.occupancy.RemoveTenantFromUnit(ctx, "u1", unit.ID)
	require.NoError(t, err)
	require.Empty(t, vacant.TenantID)
	require.Equal(t, models.StatusVacant, vacant.Status)

	// removing again succeeds and leaves the unit vacant
	vacant, err = f.occupancy.RemoveTenantFromUnit(ctx, "u1", unit.ID)
	require.NoError(t, err)
	require.Empty(t, vacant.TenantID)
	require.Equal(t, models.StatusVacant, vacant.Status)
}

func TestAssignUnknownTenantFails(t *testing.T) {
	ctx := context.Background()
	f := newOccupancyFixture(t)

	building, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	unit, err := f.units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)

	_, err = f.occupancy.AssignTenantToUnit(ctx, "u1", unit.ID, "no-such-tenant")
	require.ErrorIs(t, err, repositories.ErrNotFoundOrForbidden)

	// the unit stayed vacant
	got, err := f.units.GetByID(ctx, unit.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, models.StatusVacant, got.Status)
}

func TestDirectLetOnlyForNonBuildings(t *testing.T) {
	ctx := context.Background()
	f := newOccupancyFixture(t)

	villa, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Villa", Type: models.PropertyTypeVilla})
	require.NoError(t, err)
	building, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	tenant, err := f.tenants.Create(ctx, "u1", &models.Tenant{Name: "Ali"})
	require.NoError(t, err)

	occupied, err := f.occupancy.AssignTenantToProperty(ctx, "u1", villa.ID, tenant.ID)
	require.NoError(t, err)
	require.Equal(t, tenant.ID, occupied.TenantID)
	require.Equal(t, models.StatusOccupied, occupied.Status)

	vacant, err := f.occupancy.RemoveTenantFromProperty(ctx, "u1", villa.ID)
	require.NoError(t, err)
	require.Empty(t, vacant.TenantID)
	require.Equal(t, models.StatusVacant, vacant.Status)

	_, err = f.occupancy.AssignTenantToProperty(ctx, "u1", building.ID, tenant.ID)
	require.ErrorIs(t, err, ErrNotDirectlyLettable)
	_, err = f.occupancy.RemoveTenantFromProperty(ctx, "u1", building.ID)
	require.ErrorIs(t, err, ErrNotDirectlyLettable)
}

func TestOccupancyNotifiesOncePerOperation(t *testing.T) {
	ctx := context.Background()
	f := newOccupancyFixture(t)

	building, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	unit, err := f.units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)
	tenant, err := f.tenants.Create(ctx, "u1", &models.Tenant{Name: "Ali"})
	require.NoError(t, err)

	before, err := f.notifier.ListByUser(ctx, "u1")
	require.NoError(t, err)

	_, err = f.occupancy.AssignTenantToUnit(ctx, "u1", unit.ID, tenant.ID)
	require.NoError(t, err)

	after, err := f.notifier.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	require.Equal(t, "Tenant Assigned", after[0].Title)
}

// Notifications name the unit or property, not the document id.
func TestOccupancyNotificationsUseReadableNames(t *testing.T) {
	ctx := context.Background()
	f := newOccupancyFixture(t)

	building, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	unit, err := f.units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-12"})
	require.NoError(t, err)
	villa, err := f.properties.Create(ctx, "u1", &models.Property{Name: "Villa Rawda", Type: models.PropertyTypeVilla})
	require.NoError(t, err)
	tenant, err := f.tenants.Create(ctx, "u1", &models.Tenant{Name: "Ali"})
	require.NoError(t, err)

	_, err = f.occupancy.AssignTenantToUnit(ctx, "u1", unit.ID, tenant.ID)
	require.NoError(t, err)
	_, err = f.occupancy.AssignTenantToProperty(ctx, "u1", villa.ID, tenant.ID)
	require.NoError(t, err)

	feed, err := f.notifier.ListByUser(ctx, "u1")
	require.NoError(t, err)
	// newest first: property assignment, then unit assignment
	require.Contains(t, feed[0].Message, "Villa Rawda")
	require.NotContains(t, feed[0].Message, villa.ID)
	require.Contains(t, feed[1].Message, "A-12")
	require.NotContains(t, feed[1].Message, unit.ID)
}
