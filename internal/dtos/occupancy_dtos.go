package dtos

type AssignTenantRequest struct {
	TenantID string `json:"tenantId" validate:"required"`
}
