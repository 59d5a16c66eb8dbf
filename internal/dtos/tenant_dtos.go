package dtos

import (
	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type CreateTenantRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	State    *string `json:"state,omitempty"`
	City     *string `json:"city,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (r *CreateTenantRequest) Model() *models.Tenant {
	return &models.Tenant{
		Name:     r.Name,
		Email:    utils.Val(r.Email),
		Phone:    utils.Val(r.Phone),
		State:    utils.Val(r.State),
		City:     utils.Val(r.City),
		ImageURL: utils.Val(r.ImageURL),
	}
}

type UpdateTenantRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	State    *string `json:"state,omitempty"`
	City     *string `json:"city,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

func (r *UpdateTenantRequest) Fields() map[string]any {
	m := map[string]any{}
	setIf(m, "name", r.Name)
	setIf(m, "email", r.Email)
	setIf(m, "phone", r.Phone)
	setIf(m, "state", r.State)
	setIf(m, "city", r.City)
	setIf(m, "imageUrl", r.ImageURL)
	return m
}
