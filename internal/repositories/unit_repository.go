package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
)

// ErrNotABuilding is returned when a unit operation targets a property
// that is not of type building.
var ErrNotABuilding = errors.New("property_not_a_building")

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UnitRepository interface {
	Create(ctx context.Context, userID string, u *models.Unit) (*models.Unit, error)

	GetByID(ctx context.Context, id, userID string) (*models.Unit, error)
	ListByProperty(ctx context.Context, propertyID, userID string) ([]*models.Unit, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Unit, error)

	Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Unit, error)
	Delete(ctx context.Context, id, userID string) error

	// SetOccupancy drives the vacant⇄occupied state machine without
	// emitting a notification; the occupancy service owns that.
	SetOccupancy(ctx context.Context, id, userID, tenantID string, occupied bool) (*models.Unit, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type unitRepo struct {
	baseOwnedRepo[models.Unit]
	notifier NotificationRepository
}

func NewUnitRepository(s store.Store, notifier NotificationRepository) UnitRepository {
	return &unitRepo{
		baseOwnedRepo: baseOwnedRepo[models.Unit]{store: s, collection: store.CollectionUnits},
		notifier:      notifier,
	}
}

// Create checks that the parent property exists, belongs to the caller and
// is a building; only buildings are sub-divided into units.
func (r *unitRepo) Create(ctx context.Context, userID string, u *models.Unit) (*models.Unit, error) {
	parent, err := r.store.GetByID(ctx, store.CollectionProperties, u.PropertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFoundOrForbidden
		}
		return nil, err
	}
	if parent.Fields[fieldUserID] != userID {
		return nil, ErrNotFoundOrForbidden
	}
	if parent.Fields["type"] != string(models.PropertyTypeBuilding) {
		return nil, ErrNotABuilding
	}

	fields, err := toFields(u)
	if err != nil {
		return nil, err
	}
	fields[fieldUserID] = userID
	if _, ok := fields["status"]; !ok {
		fields["status"] = string(models.StatusVacant)
	}

	created, err := r.create(ctx, fields)
	if err != nil {
		return nil, err
	}
	if err := r.notifier.Append(ctx, userID, "Unit Added", fmt.Sprintf("A new unit was added to property %s.", created.PropertyID)); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *unitRepo) GetByID(ctx context.Context, id, userID string) (*models.Unit, error) {
	return r.getByID(ctx, id, userID)
}

func (r *unitRepo) ListByProperty(ctx context.Context, propertyID, userID string) ([]*models.Unit, error) {
	return r.list(ctx, []store.Filter{
		{Field: "propertyId", Value: propertyID},
		{Field: fieldUserID, Value: userID},
	})
}

func (r *unitRepo) ListByUser(ctx context.Context, userID string) ([]*models.Unit, error) {
	return r.listByUser(ctx, userID)
}

func (r *unitRepo) Update(ctx context.Context, id, userID string, partial map[string]any) (*models.Unit, error) {
	updated, err := r.update(ctx, id, userID, partial)
	if err != nil {
		return nil, err
	}
	if err := r.notifier.Append(ctx, userID, "Unit Updated", fmt.Sprintf("Unit %s was updated.", updated.ID)); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *unitRepo) Delete(ctx context.Context, id, userID string) error {
	if err := r.delete(ctx, id, userID); err != nil {
		return err
	}
	return r.notifier.Append(ctx, userID, "Unit Deleted", fmt.Sprintf("Unit %s was deleted.", id))
}

func (r *unitRepo) SetOccupancy(ctx context.Context, id, userID, tenantID string, occupied bool) (*models.Unit, error) {
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
