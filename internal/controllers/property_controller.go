package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type PropertyController struct {
	properties repositories.PropertyRepository
	units      repositories.UnitRepository
}

func NewPropertyController(properties repositories.PropertyRepository, units repositories.UnitRepository) *PropertyController {
	return &PropertyController{properties: properties, units: units}
}

// ----------------------------------------------------------------
// POST /api/v1/properties
// ----------------------------------------------------------------
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for create-property payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	created, err := c.properties.Create(r.Context(), userID, body.Model())
	if err != nil {
		respondDomainError(w, err, "Could not create property")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ----------------------------------------------------------------
// GET /api/v1/properties
// ----------------------------------------------------------------
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	props, err := c.properties.ListByUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not list properties")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// ----------------------------------------------------------------
// GET /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	prop, err := c.properties.GetByID(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		respondDomainError(w, err, "Could not fetch property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prop)
}

// ----------------------------------------------------------------
// PATCH /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for update-property payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	updated, err := c.properties.Update(r.Context(), mux.Vars(r)["id"], userID, body.Fields())
	if err != nil {
		respondDomainError(w, err, "Could not update property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// ----------------------------------------------------------------
// DELETE /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := c.properties.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		respondDomainError(w, err, "Could not delete property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ----------------------------------------------------------------
// GET /api/v1/properties/{id}/units
// ----------------------------------------------------------------
func (c *PropertyController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	units, err := c.units.ListByProperty(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		respondDomainError(w, err, "Could not list units")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}
