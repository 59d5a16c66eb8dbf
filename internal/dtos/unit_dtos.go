package dtos

import (
	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type CreateUnitRequest struct {
	PropertyID  string   `json:"propertyId" validate:"required"`
	UnitNumber  *string  `json:"unitNumber,omitempty"`
	Size        *float64 `json:"size,omitempty" validate:"omitempty,gte=0"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	RentAmount  *float64 `json:"rentAmount,omitempty" validate:"omitempty,gte=0"`
	FloorNumber *int     `json:"floorNumber,omitempty" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r *CreateUnitRequest) Model() *models.Unit {
	return &models.Unit{
		PropertyID:  r.PropertyID,
		UnitNumber:  utils.Val(r.UnitNumber),
		Size:        utils.Val(r.Size),
		Bedrooms:    utils.Val(r.Bedrooms),
		Bathrooms:   utils.Val(r.Bathrooms),
		RentAmount:  utils.Val(r.RentAmount),
		FloorNumber: utils.Val(r.FloorNumber),
		Notes:       utils.Val(r.Notes),
		Status:      models.StatusVacant,
	}
}

// UpdateUnitRequest excludes occupancy fields (tenantId/status/startDate);
// those move only through the occupancy endpoints.
type UpdateUnitRequest struct {
	UnitNumber  *string  `json:"unitNumber,omitempty"`
	Size        *float64 `json:"size,omitempty" validate:"omitempty,gte=0"`
	Bedrooms    *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	RentAmount  *float64 `json:"rentAmount,omitempty" validate:"omitempty,gte=0"`
	FloorNumber *int     `json:"floorNumber,omitempty" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r *UpdateUnitRequest) Fields() map[string]any {
	m := map[string]any{}
	setIf(m, "unitNumber", r.UnitNumber)
	setIf(m, "size", r.Size)
	setIf(m, "bedrooms", r.Bedrooms)
	setIf(m, "bathrooms", r.Bathrooms)
	setIf(m, "rentAmount", r.RentAmount)
	setIf(m, "floorNumber", r.FloorNumber)
	setIf(m, "notes", r.Notes)
	return m
}
