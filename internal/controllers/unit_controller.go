package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type UnitController struct {
	units repositories.UnitRepository
}

func NewUnitController(units repositories.UnitRepository) *UnitController {
	return &UnitController{units: units}
}

// ----------------------------------------------------------------
// POST /api/v1/units
// ----------------------------------------------------------------
func (c *UnitController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for create-unit payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	created, err := c.units.Create(r.Context(), userID, body.Model())
	if err != nil {
		respondDomainError(w, err, "Units can only be added to buildings")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ----------------------------------------------------------------
// GET /api/v1/units
// ----------------------------------------------------------------
func (c *UnitController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	units, err := c.units.ListByUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not list units")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// ----------------------------------------------------------------
// GET /api/v1/units/{id}
// ----------------------------------------------------------------
func (c *UnitController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	unit, err := c.units.GetByID(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		respondDomainError(w, err, "Could not fetch unit")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// ----------------------------------------------------------------
// PATCH /api/v1/units/{id}
// ----------------------------------------------------------------
func (c *UnitController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for update-unit payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	updated, err := c.units.Update(r.Context(), mux.Vars(r)["id"], userID, body.Fields())
	if err != nil {
		respondDomainError(w, err, "Could not update unit")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// ----------------------------------------------------------------
// DELETE /api/v1/units/{id}
// ----------------------------------------------------------------
func (c *UnitController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := c.units.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		respondDomainError(w, err, "Could not delete unit")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
