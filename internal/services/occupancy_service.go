package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
)

// ErrNotDirectlyLettable is returned when a direct tenant assignment
// targets a building; buildings let space through their units.
var ErrNotDirectlyLettable = errors.New("property_not_directly_lettable")

/*
OccupancyService drives the vacant⇄occupied state machine on units and
on directly-let (non-building) properties.

Assigning over an existing occupant is an allowed overwrite: tenantId and
startDate are simply replaced. Removing a tenant from an already-vacant
target is an idempotent no-op overwrite. The tenant record itself is never
modified; only the unit's or property's pointer to it changes.
*/
type OccupancyService struct {
	units      repositories.UnitRepository
	properties repositories.PropertyRepository
	tenants    repositories.TenantRepository
	notifier   repositories.NotificationRepository
}

func NewOccupancyService(
	units repositories.UnitRepository,
	properties repositories.PropertyRepository,
	tenants repositories.TenantRepository,
	notifier repositories.NotificationRepository,
) *OccupancyService {
	return &OccupancyService{
		units:      units,
		properties: properties,
		tenants:    tenants,
		notifier:   notifier,
	}
}

func (s *OccupancyService) AssignTenantToUnit(ctx context.Context, userID, unitID, tenantID string) (*models.Unit, error) {
	if _, err := s.tenants.GetByID(ctx, tenantID, userID); err != nil {
		return nil, err
	}

	unit, err := s.units.SetOccupancy(ctx, unitID, userID, tenantID, true)
	if err != nil {
		return nil, err
	}
	if err := s.notifier.Append(ctx, userID, "Tenant Assigned", fmt.Sprintf("Tenant assigned to unit %s.", unitLabel(unit))); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *OccupancyService) RemoveTenantFromUnit(ctx context.Context, userID, unitID string) (*models.Unit, error) {
	unit, err := s.units.SetOccupancy(ctx, unitID, userID, "", false)
	if err != nil {
		return nil, err
	}
	if err := s.notifier.Append(ctx, userID, "Tenant Removed", fmt.Sprintf("Tenant removed from unit %s.", unitLabel(unit))); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *OccupancyService) AssignTenantToProperty(ctx context.Context, userID, propertyID, tenantID string) (*models.Property, error) {
	prop, err := s.properties.GetByID(ctx, propertyID, userID)
	if err != nil {
		return nil, err
	}
	if prop.Type == models.PropertyTypeBuilding {
		return nil, ErrNotDirectlyLettable
	}
	if _, err := s.tenants.GetByID(ctx, tenantID, userID); err != nil {
		return nil, err
	}

	updated, err := s.properties.SetOccupancy(ctx, propertyID, userID, tenantID, true)
	if err != nil {
		return nil, err
	}
	if err := s.notifier.Append(ctx, userID, "Tenant Assigned", fmt.Sprintf("Tenant assigned to %q.", updated.Name)); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *OccupancyService) RemoveTenantFromProperty(ctx context.Context, userID, propertyID string) (*models.Property, error) {
	prop, err := s.properties.GetByID(ctx, propertyID, userID)
	if err != nil {
		return nil, err
	}
	if prop.Type == models.PropertyTypeBuilding {
		return nil, ErrNotDirectlyLettable
	}

	updated, err := s.properties.SetOccupancy(ctx, propertyID, userID, "", false)
	if err != nil {
		return nil, err
	}
	if err := s.notifier.Append(ctx, userID, "Tenant Removed", fmt.Sprintf("Tenant removed from %q.", updated.Name)); err != nil {
		return nil, err
	}
	return updated, nil
}

// unitLabel prefers the human-readable unit number over the raw id.
func unitLabel(u *models.Unit) string {
	if u.UnitNumber != "" {
		return u.UnitNumber
	}
	return u.ID
}
