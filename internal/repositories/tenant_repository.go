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

type TenantRepository interface {
	Create(ctx context.Context, userID string, t *models.Tenant) (*models.Tenant, error)

	GetByID(ctx context.Context, id, userID string) (*models.Tenant, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Tenant, error)

	Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Tenant, error)
	Delete(ctx context.Context, id, userID string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type tenantRepo struct {
	baseOwnedRepo[models.Tenant]
	notifier NotificationRepository
}

func NewTenantRepository(s store.Store, notifier NotificationRepository) TenantRepository {
	return &tenantRepo{
		baseOwnedRepo: baseOwnedRepo[models.Tenant]{store: s, collection: store.CollectionTenants},
		notifier:      notifier,
	}
}

func (r *tenantRepo) Create(ctx context.Context, userID string, t *models.Tenant) (*models.Tenant, error) {
	fields, err := toFields(t)
	if err != nil {
		return nil, err
	}
	fields[fieldUserID] = userID

	created, err := r.create(ctx, fields)
	if err != nil {
		return nil, err
	}
	if err := r.notifier.Append(ctx, userID, "Tenant Added", fmt.Sprintf("Tenant %q was added.", created.Name)); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *tenantRepo) GetByID(ctx context.Context, id, userID string) (*models.Tenant, error) {
	return r.getByID(ctx, id, userID)
}

func (r *tenantRepo) ListByUser(ctx context.Context, userID string) ([]*models.Tenant, error) {
	return r.listByUser(ctx, userID)
}

func (r *tenantRepo) Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Tenant, error) {
	updated, err := r.update(ctx, id, userID, partial)
	if err != nil {
		return nil, err
	}
	if err := r.notifier.Append(ctx, userID, "Tenant Updated", fmt.Sprintf("Tenant %q was updated.", updated.Name)); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the tenant record only; any unit or property still
// pointing at it keeps its occupancy state until unassigned.
func (r *tenantRepo) Delete(ctx context.Context, id, userID string) error {
	existing, err := r.getByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := r.delete(ctx, id, userID); err != nil {
		return err
	}
	return r.notifier.Append(ctx, userID, "Tenant Deleted", fmt.Sprintf("Tenant %q was deleted.", existing.Name))
}
