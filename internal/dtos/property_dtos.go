package dtos

import (
	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type CreatePropertyRequest struct {
	Name           string   `json:"name" validate:"required"`
	Type           string   `json:"type" validate:"required,oneof=building villa commercial"`
	Address        *string  `json:"address,omitempty"`
	State          *string  `json:"state,omitempty"`
	City           *string  `json:"city,omitempty"`
	ImageURL       *string  `json:"imageUrl,omitempty"`
	AnnualRent     *float64 `json:"annualRent,omitempty" validate:"omitempty,gte=0"`
	Floors         *int     `json:"floors,omitempty" validate:"omitempty,gte=0"`
	Bedrooms       *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms      *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	OperatingCosts *float64 `json:"operatingCosts,omitempty" validate:"omitempty,gte=0"`
}

func (r *CreatePropertyRequest) Model() *models.Property {
	return &models.Property{
		Name:           r.Name,
		Type:           models.PropertyType(r.Type),
		Address:        utils.Val(r.Address),
		State:          utils.Val(r.State),
		City:           utils.Val(r.City),
		ImageURL:       utils.Val(r.ImageURL),
		AnnualRent:     utils.Val(r.AnnualRent),
		Floors:         utils.Val(r.Floors),
		Bedrooms:       utils.Val(r.Bedrooms),
		Bathrooms:      utils.Val(r.Bathrooms),
		OperatingCosts: utils.Val(r.OperatingCosts),
	}
}

// UpdatePropertyRequest carries a partial edit; only set fields are
// written. Aggregate fields are deliberately absent – income, expenses
// and profitability belong to the ledger, not to property edits.
type UpdatePropertyRequest struct {
	Name           *string  `json:"name,omitempty"`
	Type           *string  `json:"type,omitempty" validate:"omitempty,oneof=building villa commercial"`
	Address        *string  `json:"address,omitempty"`
	State          *string  `json:"state,omitempty"`
	City           *string  `json:"city,omitempty"`
	ImageURL       *string  `json:"imageUrl,omitempty"`
	AnnualRent     *float64 `json:"annualRent,omitempty" validate:"omitempty,gte=0"`
	Floors         *int     `json:"floors,omitempty" validate:"omitempty,gte=0"`
	Bedrooms       *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms      *int     `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	OperatingCosts *float64 `json:"operatingCosts,omitempty" validate:"omitempty,gte=0"`
}

func (r *UpdatePropertyRequest) Fields() map[string]any {
	m := map[string]any{}
	setIf(m, "name", r.Name)
	setIf(m, "type", r.Type)
	setIf(m, "address", r.Address)
	setIf(m, "state", r.State)
	setIf(m, "city", r.City)
	setIf(m, "imageUrl", r.ImageURL)
	setIf(m, "annualRent", r.AnnualRent)
	setIf(m, "floors", r.Floors)
	setIf(m, "bedrooms", r.Bedrooms)
	setIf(m, "bathrooms", r.Bathrooms)
	setIf(m, "operatingCosts", r.OperatingCosts)
	return m
}

func setIf[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}
