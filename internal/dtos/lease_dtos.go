package dtos

import (
	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type CreateLeaseRequest struct {
	TenantID   string   `json:"tenantId" validate:"required"`
	PropertyID *string  `json:"propertyId,omitempty"`
	UnitID     *string  `json:"unitId,omitempty"`
	StartDate  string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    *string  `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentAmount float64  `json:"rentAmount" validate:"required,gt=0"`
	Terms      *string  `json:"terms,omitempty"`
}

func (r *CreateLeaseRequest) Model() *models.Lease {
	return &models.Lease{
		TenantID:   r.TenantID,
		PropertyID: utils.Val(r.PropertyID),
		UnitID:     utils.Val(r.UnitID),
		StartDate:  r.StartDate,
		EndDate:    utils.Val(r.EndDate),
		RentAmount: r.RentAmount,
		Terms:      utils.Val(r.Terms),
	}
}

type UpdateLeaseRequest struct {
	StartDate  *string  `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string  `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RentAmount *float64 `json:"rentAmount,omitempty" validate:"omitempty,gt=0"`
	Terms      *string  `json:"terms,omitempty"`
}

func (r *UpdateLeaseRequest) Fields() map[string]any {
	m := map[string]any{}
	setIf(m, "startDate", r.StartDate)
	setIf(m, "endDate", r.EndDate)
	setIf(m, "rentAmount", r.RentAmount)
	setIf(m, "terms", r.Terms)
	return m
}
