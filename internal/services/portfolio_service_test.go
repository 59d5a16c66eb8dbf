package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

func TestPortfolioSummary(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	notifier := repositories.NewNotificationRepository(s)
	properties := repositories.NewPropertyRepository(s, notifier)
	units := repositories.NewUnitRepository(s, notifier)
	tenants := repositories.NewTenantRepository(s, notifier)
	occupancy := NewOccupancyService(units, properties, tenants, notifier)
	portfolio := NewPortfolioService(properties, units)

	villa, err := properties.Create(ctx, "u1", &models.Property{
		Name:           "Villa",
		Type:           models.PropertyTypeVilla,
		OperatingCosts: 200,
	})
	require.NoError(t, err)
	building, err := properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)

	u1, err := units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)
	_, err = units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-2"})
	require.NoError(t, err)

	tenant, err := tenants.Create(ctx, "u1", &models.Tenant{Name: "Ali"})
	require.NoError(t, err)
	_, err = occupancy.AssignTenantToProperty(ctx, "u1", villa.ID, tenant.ID)
	require.NoError(t, err)
	_, err = occupancy.AssignTenantToUnit(ctx, "u1", u1.ID, tenant.ID)
	require.NoError(t, err)

	_, err = properties.ApplyFinancials(ctx, villa.ID, "u1", 1000, 300)
	require.NoError(t, err)
	_, err = properties.ApplyFinancials(ctx, building.ID, "u1", 500, 0)
	require.NoError(t, err)

	// a second user's portfolio must not bleed in
	_, err = properties.Create(ctx, "u2", &models.Property{Name: "Other", Type: models.PropertyTypeVilla})
	require.NoError(t, err)

	summary, err := portfolio.Summary(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 2, summary.TotalProperties)
	// the villa counts as one rentable unit next to the building's two
	require.Equal(t, 3, summary.TotalUnits)
	require.Equal(t, 2, summary.OccupiedUnits)
	require.Equal(t, 1, summary.VacantUnits)
	require.Equal(t, float64(1500), summary.TotalIncome)
	require.Equal(t, float64(300), summary.TotalExpenses)
	require.Equal(t, float64(200), summary.TotalOperatingCosts)
	require.Equal(t, float64(1000), summary.NetProfit)
}

func TestPortfolioSummaryEmpty(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	notifier := repositories.NewNotificationRepository(s)
	properties := repositories.NewPropertyRepository(s, notifier)
	units := repositories.NewUnitRepository(s, notifier)
	portfolio := NewPortfolioService(properties, units)

	summary, err := portfolio.Summary(ctx, "nobody")
	require.NoError(t, err)
	require.Zero(t, summary.TotalProperties)
	require.Zero(t, summary.TotalUnits)
	require.Zero(t, summary.NetProfit)
}
