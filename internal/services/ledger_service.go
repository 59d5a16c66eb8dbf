package services

import (
	"context"
	"fmt"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
)

/*
LedgerService owns the financial side-effects around payments and
expenses. Every mutation is a fixed write sequence:

 1. the ledger document itself (payment or expense)
 2. the parent property's cached aggregates (income/expenses +
    profitability), as a separate write
 3. one notification for the acting user

If step 2 or 3 fails the earlier writes are NOT rolled back; the cached
aggregates may drift from the ledger until the reconciler recomputes them
from scratch.
*/
type LedgerService struct {
	payments   repositories.PaymentRepository
	expenses   repositories.ExpenseRepository
	properties repositories.PropertyRepository
	notifier   repositories.NotificationRepository
}

func NewLedgerService(
	payments repositories.PaymentRepository,
	expenses repositories.ExpenseRepository,
	properties repositories.PropertyRepository,
	notifier repositories.NotificationRepository,
) *LedgerService {
	return &LedgerService{
		payments:   payments,
		expenses:   expenses,
		properties: properties,
		notifier:   notifier,
	}
}

/* ---------- payments ---------- */

func (s *LedgerService) CreatePayment(ctx context.Context, userID string, p *models.Payment) (*models.Payment, error) {
	created, err := s.payments.Create(ctx, userID, p)
	if err != nil {
		return nil, err
	}

	prop, err := s.properties.ApplyFinancials(ctx, created.PropertyID, userID, created.Amount, 0)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Append(ctx, userID, "Payment Recorded",
		fmt.Sprintf("Payment of %.2f SAR recorded for property %q.", created.Amount, prop.Name)); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *LedgerService) GetPayment(ctx context.Context, userID, id string) (*models.Payment, error) {
	return s.payments.GetByID(ctx, id, userID)
}

func (s *LedgerService) ListPayments(ctx context.Context, userID string) ([]*models.Payment, error) {
	return s.payments.ListByUser(ctx, userID)
}

func (s *LedgerService) UpdatePayment(ctx context.Context, userID, id string, partial map[string]any) (*models.Payment, error) {
	old, err := s.payments.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.payments.Update(ctx, id, userID, partial)
	if err != nil {
		return nil, err
	}

	prop, err := s.properties.ApplyFinancials(ctx, old.PropertyID, userID, updated.Amount-old.Amount, 0)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Append(ctx, userID, "Payment Updated",
		fmt.Sprintf("Payment updated to %.2f SAR for property %q.", updated.Amount, prop.Name)); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *LedgerService) DeletePayment(ctx context.Context, userID, id string) error {
	old, err := s.payments.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.payments.Delete(ctx, id, userID); err != nil {
		return err
	}

	prop, err := s.properties.ApplyFinancials(ctx, old.PropertyID, userID, -old.Amount, 0)
	if err != nil {
		return err
	}

	return s.notifier.Append(ctx, userID, "Payment Deleted",
		fmt.Sprintf("Deleted payment of %.2f SAR from property %q.", old.Amount, prop.Name))
}

/* ---------- expenses ---------- */

func (s *LedgerService) CreateExpense(ctx context.Context, userID string, e *models.Expense) (*models.Expense, error) {
	created, err := s.expenses.Create(ctx, userID, e)
	if err != nil {
		return nil, err
	}

	prop, err := s.properties.ApplyFinancials(ctx, created.PropertyID, userID, 0, created.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Append(ctx, userID, "Expense Added",
		fmt.Sprintf("Expense of %.2f SAR added to property %q.", created.Amount, prop.Name)); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *LedgerService) GetExpense(ctx context.Context, userID, id string) (*models.Expense, error) {
	return s.expenses.GetByID(ctx, id, userID)
}

func (s *LedgerService) ListExpenses(ctx context.Context, userID string) ([]*models.Expense, error) {
	return s.expenses.ListByUser(ctx, userID)
}

func (s *LedgerService) UpdateExpense(ctx context.Context, userID, id string, partial map[string]any) (*models.Expense, error) {
	old, err := s.expenses.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.expenses.Update(ctx, id, userID, partial)
	if err != nil {
		return nil, err
	}

	prop, err := s.properties.ApplyFinancials(ctx, old.PropertyID, userID, 0, updated.Amount-old.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Append(ctx, userID, "Expense Updated",
		fmt.Sprintf("Expense updated to %.2f SAR for property %q.", updated.Amount, prop.Name)); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *LedgerService) DeleteExpense(ctx context.Context, userID, id string) error {
	old, err := s.expenses.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.expenses.Delete(ctx, id, userID); err != nil {
		return err
	}

	prop, err := s.properties.ApplyFinancials(ctx, old.PropertyID, userID, 0, -old.Amount)
	if err != nil {
		return err
	}

	return s.notifier.Append(ctx, userID, "Expense Deleted",
		fmt.Sprintf("Deleted expense of %.2f SAR from property %q.", old.Amount, prop.Name))
}
