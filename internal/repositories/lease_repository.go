package repositories

import (
	"context"
	"fmt"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// LeaseRepository is plain owner-scoped CRUD. Leases do not drive
// payments, expenses or occupancy.
type LeaseRepository interface {
	Create(ctx context.Context, userID string, l *models.Lease) (*models.Lease, error)

	GetByID(ctx context.Context, id, userID string) (*models.Lease, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Lease, error)

	Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Lease, error)
	Delete(ctx context.Context, id, userID string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type leaseRepo struct {
	baseOwnedRepo[models.Lease]
	notifier NotificationRepository
}

func NewLeaseRepository(s store.Store, notifier NotificationRepository) LeaseRepository {
	return &leaseRepo{
		baseOwnedRepo: baseOwnedRepo[models.Lease]{store: s, collection: store.CollectionLeases},
		notifier:      notifier,
	}
}

func (r *leaseRepo) Create(ctx context.Context, userID string, l *models.Lease) (*models.Lease, error) {
	fields, err := toFields(l)
	if err != nil {
		return nil, err
	}
	fields[fieldUserID] = userID

	created, err := r.create(ctx, fields)
	if err != nil {
		return nil, err
	}
	target := created.UnitID
	if target == "" {
		target = created.PropertyID
	}
	if err := r.notifier.Append(ctx, userID, "Lease Created", fmt.Sprintf("A new lease was created for %s.", target)); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *leaseRepo) GetByID(ctx context.Context, id, userID string) (*models.Lease, error) {
	return r.getByID(ctx, id, userID)
}

func (r *leaseRepo) ListByUser(ctx context.Context, userID string) ([]*models.Lease, error) {
	return r.listByUser(ctx, userID)
}

func (r *leaseRepo) Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Lease, error) {
	updated, err := r.update(ctx, id, userID, partial)
	if err != nil {
		return nil, err
	}
	if err := r.notifier.Append(ctx, userID, "Lease Updated", fmt.Sprintf("Lease %s was updated.", updated.ID)); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *leaseRepo) Delete(ctx context.Context, id, userID string) error {
	if err := r.delete(ctx, id, userID); err != nil {
		return err
	}
	return r.notifier.Append(ctx, userID, "Lease Deleted", fmt.Sprintf("Lease %s was deleted.", id))
}
