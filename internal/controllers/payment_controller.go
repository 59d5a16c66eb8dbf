package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/services"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

// PaymentController routes payment mutations through the ledger service
// so the property aggregates stay in step with the ledger.
type PaymentController struct {
	ledger *services.LedgerService
}

func NewPaymentController(ledger *services.LedgerService) *PaymentController {
	return &PaymentController{ledger: ledger}
}

// ----------------------------------------------------------------
// POST /api/v1/payments
// ----------------------------------------------------------------
func (c *PaymentController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for create-payment payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	created, err := c.ledger.CreatePayment(r.Context(), userID, body.Model())
	if err != nil {
		respondDomainError(w, err, "Could not record payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ----------------------------------------------------------------
// GET /api/v1/payments
// ----------------------------------------------------------------
func (c *PaymentController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	payments, err := c.ledger.ListPayments(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not list payments")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// ----------------------------------------------------------------
// GET /api/v1/payments/{id}
// ----------------------------------------------------------------
func (c *PaymentController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	payment, err := c.ledger.GetPayment(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err, "Could not fetch payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// ----------------------------------------------------------------
// PATCH /api/v1/payments/{id}
// ----------------------------------------------------------------
func (c *PaymentController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for update-payment payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	updated, err := c.ledger.UpdatePayment(r.Context(), userID, mux.Vars(r)["id"], body.Fields())
	if err != nil {
		respondDomainError(w, err, "Could not update payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// ----------------------------------------------------------------
// DELETE /api/v1/payments/{id}
// ----------------------------------------------------------------
func (c *PaymentController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := c.ledger.DeletePayment(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondDomainError(w, err, "Could not delete payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
