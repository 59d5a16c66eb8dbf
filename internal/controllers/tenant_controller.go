package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type TenantController struct {
	tenants repositories.TenantRepository
}

func NewTenantController(tenants repositories.TenantRepository) *TenantController {
	return &TenantController{tenants: tenants}
}

// ----------------------------------------------------------------
// POST /api/v1/tenants
// ----------------------------------------------------------------
func (c *TenantController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for create-tenant payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	created, err := c.tenants.Create(r.Context(), userID, body.Model())
	if err != nil {
		respondDomainError(w, err, "Could not create tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants
// ----------------------------------------------------------------
func (c *TenantController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	tenants, err := c.tenants.ListByUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not list tenants")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants/{id}
// ----------------------------------------------------------------
func (c *TenantController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	tenant, err := c.tenants.GetByID(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		respondDomainError(w, err, "Could not fetch tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// PATCH /api/v1/tenants/{id}
// ----------------------------------------------------------------
func (c *TenantController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for update-tenant payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	updated, err := c.tenants.Update(r.Context(), mux.Vars(r)["id"], userID, body.Fields())
	if err != nil {
		respondDomainError(w, err, "Could not update tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// ----------------------------------------------------------------
// DELETE /api/v1/tenants/{id}
// ----------------------------------------------------------------
func (c *TenantController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := c.tenants.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		respondDomainError(w, err, "Could not delete tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
