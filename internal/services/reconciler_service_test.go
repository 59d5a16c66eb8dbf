package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

func TestReconcilerRepairsDriftedAggregates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	notifier := repositories.NewNotificationRepository(s)
	properties := repositories.NewPropertyRepository(s, notifier)
	payments := repositories.NewPaymentRepository(s)
	expenses := repositories.NewExpenseRepository(s)
	reconciler := NewReconcilerService(s)

	prop, err := properties.Create(ctx, "u1", &models.Property{Name: "Villa", Type: models.PropertyTypeVilla})
	require.NoError(t, err)

	_, err = payments.Create(ctx, "u1", &models.Payment{PropertyID: prop.ID, Amount: 700, PaymentDate: "2026-01-10"})
	require.NoError(t, err)
	_, err = payments.Create(ctx, "u1", &models.Payment{PropertyID: prop.ID, Amount: 300, PaymentDate: "2026-02-10"})
	require.NoError(t, err)
	_, err = expenses.Create(ctx, "u1", &models.Expense{PropertyID: prop.ID, ExpenseType: "maintenance", Amount: 250, ExpenseDate: "2026-02-15"})
	require.NoError(t, err)

	// simulate a crashed aggregate write: ledger says 1000/250, cache says 0/0
	require.NoError(t, reconciler.Run(ctx))

	got, err := properties.GetByID(ctx, prop.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, float64(1000), got.Income)
	require.Equal(t, float64(250), got.Expenses)
	require.Equal(t, float64(75), got.Profitability)

	// a second run finds nothing to repair and changes nothing
	require.NoError(t, reconciler.Run(ctx))
	again, err := properties.GetByID(ctx, prop.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, got.Income, again.Income)
	require.Equal(t, got.Profitability, again.Profitability)
}

func TestReconcilerIgnoresForeignLedgerEntries(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	notifier := repositories.NewNotificationRepository(s)
	properties := repositories.NewPropertyRepository(s, notifier)
	payments := repositories.NewPaymentRepository(s)
	reconciler := NewReconcilerService(s)

	prop, err := properties.Create(ctx, "u1", &models.Property{Name: "Villa", Type: models.PropertyTypeVilla})
	require.NoError(t, err)

	// a stray payment by another user against u1's property must not count
	_, err = payments.Create(ctx, "u2", &models.Payment{PropertyID: prop.ID, Amount: 999, PaymentDate: "2026-01-10"})
	require.NoError(t, err)
	_, err = payments.Create(ctx, "u1", &models.Payment{PropertyID: prop.ID, Amount: 400, PaymentDate: "2026-01-11"})
	require.NoError(t, err)

	require.NoError(t, reconciler.Run(ctx))

	got, err := properties.GetByID(ctx, prop.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, float64(400), got.Income)
}

func TestReconcilerSweepsOrphans(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	notifier := repositories.NewNotificationRepository(s)
	properties := repositories.NewPropertyRepository(s, notifier)
	units := repositories.NewUnitRepository(s, notifier)
	payments := repositories.NewPaymentRepository(s)
	reconciler := NewReconcilerService(s)

	building, err := properties.Create(ctx, "u1", &models.Property{Name: "Tower", Type: models.PropertyTypeBuilding})
	require.NoError(t, err)
	keeper, err := properties.Create(ctx, "u1", &models.Property{Name: "Villa", Type: models.PropertyTypeVilla})
	require.NoError(t, err)

	orphanUnit, err := units.Create(ctx, "u1", &models.Unit{PropertyID: building.ID, UnitNumber: "A-1"})
	require.NoError(t, err)
	_, err = payments.Create(ctx, "u1", &models.Payment{PropertyID: building.ID, Amount: 100, PaymentDate: "2026-01-10"})
	require.NoError(t, err)
	keptPayment, err := payments.Create(ctx, "u1", &models.Payment{PropertyID: keeper.ID, Amount: 50, PaymentDate: "2026-01-11"})
	require.NoError(t, err)

	// deleting the building leaves its unit and payment dangling
	require.NoError(t, properties.Delete(ctx, building.ID, "u1"))

	require.NoError(t, reconciler.Run(ctx))

	_, err = units.GetByID(ctx, orphanUnit.ID, "u1")
	require.ErrorIs(t, err, repositories.ErrNotFoundOrForbidden)

	orphaned, err := payments.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orphaned, 1)
	require.Equal(t, keptPayment.ID, orphaned[0].ID)

	// the surviving property was reconciled against its remaining ledger
	got, err := properties.GetByID(ctx, keeper.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, float64(50), got.Income)
}
