package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/constants"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, userID string, p *models.Property) (*models.Property, error)

	GetByID(ctx context.Context, id, userID string) (*models.Property, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Property, error)

	Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Property, error)
	Delete(ctx context.Context, id, userID string) error

	// ApplyFinancials shifts the cached income/expenses aggregates and
	// recomputes profitability under an optimistic-locking retry loop.
	// It never emits a notification and never touches operatingCosts.
	ApplyFinancials(ctx context.Context, id, userID string, incomeDelta, expenseDelta float64) (*models.Property, error)

	// SetFinancials overwrites the aggregates outright (reconciliation).
	SetFinancials(ctx context.Context, id string, income, expenses float64) error

	// SetOccupancy drives the direct-let state machine on non-building
	// properties. Assign overwrites an existing occupant; remove is a no-op
	// overwrite on a vacant property.
	SetOccupancy(ctx context.Context, id, userID, tenantID string, occupied bool) (*models.Property, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	baseOwnedRepo[models.Property]
	notifier NotificationRepository
}

func NewPropertyRepository(s store.Store, notifier NotificationRepository) PropertyRepository {
	return &propertyRepo{
		baseOwnedRepo: baseOwnedRepo[models.Property]{store: s, collection: store.CollectionProperties},
		notifier:      notifier,
	}
}

func (r *propertyRepo) Create(ctx context.Context, userID string, p *models.Property) (*models.Property, error) {
	fields, err := toFields(p)
	if err != nil {
		return nil, err
	}
	fields[fieldUserID] = userID
	// Aggregates always start present so the ledger rules have something
	// to shift.
	for _, k := range []string{"income", "expenses", "operatingCosts", "profitability"} {
		if _, ok := fields[k]; !ok {
			fields[k] = float64(0)
		}
	}

	created, err := r.create(ctx, fields)
	if err != nil {
		return nil, err
	}
	if err := r.notifier.Append(ctx, userID, "Property Added", fmt.Sprintf("Property %q was added.", created.Name)); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id, userID string) (*models.Property, error) {
	return r.getByID(ctx, id, userID)
}

func (r *propertyRepo) ListByUser(ctx context.Context, userID string) ([]*models.Property, error) {
	return r.listByUser(ctx, userID)
}

func (r *propertyRepo) Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Property, error) {
	updated, err := r.update(ctx, id, userID, partial)
	if err != nil {
		return nil, err
	}
	if err := r.notifier.Append(ctx, userID, "Property Updated", fmt.Sprintf("Property %q was updated.", updated.Name)); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes only the property document. Units, payments and expenses
// that reference it stay behind; the reconciler sweeps them out of band.
func (r *propertyRepo) Delete(ctx context.Context, id, userID string) error {
	existing, err := r.getByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := r.delete(ctx, id, userID); err != nil {
		return err
	}
	return r.notifier.Append(ctx, userID, "Property Deleted", fmt.Sprintf("Property %q was deleted.", existing.Name))
}

func (r *propertyRepo) ApplyFinancials(ctx context.Context, id, userID string, incomeDelta, expenseDelta float64) (*models.Property, error) {
	for attempt := 0; attempt < constants.AggregateUpdateMaxRetries; attempt++ {
		doc, err := r.getOwnedDoc(ctx, id, userID)
		if err != nil {
			return nil, err
		}

		income := numField(doc.Fields, "income") + incomeDelta
		expenses := numField(doc.Fields, "expenses") + expenseDelta
		partial := map[string]any{
			"income":        income,
			"expenses":      expenses,
			"profitability": models.Profitability(income, expenses),
		}

		updated, err := r.store.UpdateIfVersion(ctx, r.collection, id, partial, doc.Version)
		if errors.Is(err, store.ErrVersionConflict) {
			continue // someone else updated first – retry
		}
		if err != nil {
			return nil, err
		}
		return decodeDoc[models.Property](updated)
	}
	return nil, fmt.Errorf("too much contention updating %q: %w", id, utils.ErrRowVersionConflict)
}

func (r *propertyRepo) SetFinancials(ctx context.Context, id string, income, expenses float64) error {
	_, err := r.store.Update(ctx, r.collection, id, map[string]any{
		"income":        income,
		"expenses":      expenses,
		"profitability": models.Profitability(income, expenses),
	})
	return err
}

func (r *propertyRepo) SetOccupancy(ctx context.Context, id, userID, tenantID string, occupied bool) (*models.Property, error) {
	partial := map[string]any{
		"tenantId":  nil,
		"status":    string(models.StatusVacant),
		"startDate": nil,
	}
	if occupied {
		partial["tenantId"] = tenantID
		partial["status"] = string(models.StatusOccupied)
		partial["startDate"] = time.Now().UTC().Format(time.RFC3339)
	}
	return r.update(ctx, id, userID, partial)
}
