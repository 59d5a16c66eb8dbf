package repositories

import (
	"context"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

/* ------------------------------------------------------------------
   Public interfaces
------------------------------------------------------------------ */

// PaymentRepository and ExpenseRepository are deliberately free of
// notification and aggregation side-effects: the ledger service sequences
// the document write, the property aggregate write and the notification,
// in that order.
type PaymentRepository interface {
	Create(ctx context.Context, userID string, p *models.Payment) (*models.Payment, error)

	GetByID(ctx context.Context, id, userID string) (*models.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Payment, error)

	Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Payment, error)
	Delete(ctx context.Context, id, userID string) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, userID string, e *models.Expense) (*models.Expense, error)

	GetByID(ctx context.Context, id, userID string) (*models.Expense, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Expense, error)

	Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Expense, error)
	Delete(ctx context.Context, id, userID string) error
}

/* ------------------------------------------------------------------
   Implementations
------------------------------------------------------------------ */

type paymentRepo struct {
	baseOwnedRepo[models.Payment]
}

func NewPaymentRepository(s store.Store) PaymentRepository {
	return &paymentRepo{baseOwnedRepo[models.Payment]{store: s, collection: store.CollectionPayments}}
}

func (r *paymentRepo) Create(ctx context.Context, userID string, p *models.Payment) (*models.Payment, error) {
	fields, err := toFields(p)
	if err != nil {
		return nil, err
	}
	fields[fieldUserID] = userID
	return r.create(ctx, fields)
}

func (r *paymentRepo) GetByID(ctx context.Context, id, userID string) (*models.Payment, error) {
	return r.getByID(ctx, id, userID)
}

func (r *paymentRepo) ListByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	return r.listByUser(ctx, userID)
}

func (r *paymentRepo) Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Payment, error) {
	return r.update(ctx, id, userID, partial)
}

func (r *paymentRepo) Delete(ctx context.Context, id, userID string) error {
	return r.delete(ctx, id, userID)
}

type expenseRepo struct {
	baseOwnedRepo[models.Expense]
}

func NewExpenseRepository(s store.Store) ExpenseRepository {
	return &expenseRepo{baseOwnedRepo[models.Expense]{store: s, collection: store.CollectionExpenses}}
}

func (r *expenseRepo) Create(ctx context.Context, userID string, e *models.Expense) (*models.Expense, error) {
	fields, err := toFields(e)
	if err != nil {
		return nil, err
	}
	fields[fieldUserID] = userID
	return r.create(ctx, fields)
}

func (r *expenseRepo) GetByID(ctx context.Context, id, userID string) (*models.Expense, error) {
	return r.getByID(ctx, id, userID)
}

func (r *expenseRepo) ListByUser(ctx context.Context, userID string) ([]*models.Expense, error) {
	return r.listByUser(ctx, userID)
}

func (r *expenseRepo) Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Expense, error) {
	return r.update(ctx, id, userID, partial)
}

func (r *expenseRepo) Delete(ctx context.Context, id, userID string) error {
	return r.delete(ctx, id, userID)
}
