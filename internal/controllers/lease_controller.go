package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type LeaseController struct {
	leases repositories.LeaseRepository
}

func NewLeaseController(leases repositories.LeaseRepository) *LeaseController {
	return &LeaseController{leases: leases}
}

// ----------------------------------------------------------------
// POST /api/v1/leases
// ----------------------------------------------------------------
func (c *LeaseController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for create-lease payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	created, err := c.leases.Create(r.Context(), userID, body.Model())
	if err != nil {
		respondDomainError(w, err, "Could not create lease")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ----------------------------------------------------------------
// GET /api/v1/leases
// ----------------------------------------------------------------
func (c *LeaseController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	leases, err := c.leases.ListByUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not list leases")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, leases)
}

// ----------------------------------------------------------------
// GET /api/v1/leases/{id}
// ----------------------------------------------------------------
func (c *LeaseController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	lease, err := c.leases.GetByID(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		respondDomainError(w, err, "Could not fetch lease")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lease)
}

// ----------------------------------------------------------------
// PATCH /api/v1/leases/{id}
// ----------------------------------------------------------------
func (c *LeaseController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.UpdateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for update-lease payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	updated, err := c.leases.Update(r.Context(), mux.Vars(r)["id"], userID, body.Fields())
	if err != nil {
		respondDomainError(w, err, "Could not update lease")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// ----------------------------------------------------------------
// DELETE /api/v1/leases/{id}
// ----------------------------------------------------------------
func (c *LeaseController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := c.leases.Delete(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		respondDomainError(w, err, "Could not delete lease")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
