package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/services"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

// OccupancyController exposes the assign/remove tenant endpoints for
// units and directly-let properties.
type OccupancyController struct {
	occupancy *services.OccupancyService
}

func NewOccupancyController(occupancy *services.OccupancyService) *OccupancyController {
	return &OccupancyController{occupancy: occupancy}
}

// ----------------------------------------------------------------
// PUT /api/v1/units/{id}/tenant
// ----------------------------------------------------------------
func (c *OccupancyController) AssignUnitTenantHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.AssignTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for assign-tenant payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	unit, err := c.occupancy.AssignTenantToUnit(r.Context(), userID, mux.Vars(r)["id"], body.TenantID)
	if err != nil {
		respondDomainError(w, err, "Could not assign tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// ----------------------------------------------------------------
// DELETE /api/v1/units/{id}/tenant
// ----------------------------------------------------------------
func (c *OccupancyController) RemoveUnitTenantHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	unit, err := c.occupancy.RemoveTenantFromUnit(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err, "Could not remove tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// ----------------------------------------------------------------
// PUT /api/v1/properties/{id}/tenant
// ----------------------------------------------------------------
func (c *OccupancyController) AssignPropertyTenantHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.AssignTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for assign-tenant payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	prop, err := c.occupancy.AssignTenantToProperty(r.Context(), userID, mux.Vars(r)["id"], body.TenantID)
	if err != nil {
		respondDomainError(w, err, "Buildings cannot be let directly; assign tenants to units")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prop)
}

// ----------------------------------------------------------------
// DELETE /api/v1/properties/{id}/tenant
// ----------------------------------------------------------------
func (c *OccupancyController) RemovePropertyTenantHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	prop, err := c.occupancy.RemoveTenantFromProperty(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err, "Buildings cannot be let directly; assign tenants to units")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prop)
}
