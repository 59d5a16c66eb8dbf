package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/dtos"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/services"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type ExpenseController struct {
	ledger *services.LedgerService
}

func NewExpenseController(ledger *services.LedgerService) *ExpenseController {
	return &ExpenseController{ledger: ledger}
}

// ----------------------------------------------------------------
// POST /api/v1/expenses
// ----------------------------------------------------------------
func (c *ExpenseController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for create-expense payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	created, err := c.ledger.CreateExpense(r.Context(), userID, body.Model())
	if err != nil {
		respondDomainError(w, err, "Could not add expense")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// ----------------------------------------------------------------
// GET /api/v1/expenses
// ----------------------------------------------------------------
func (c *ExpenseController) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	expenses, err := c.ledger.ListExpenses(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err, "Could not list expenses")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, expenses)
}

// ----------------------------------------------------------------
// GET /api/v1/expenses/{id}
// ----------------------------------------------------------------
func (c *ExpenseController) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	expense, err := c.ledger.GetExpense(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err, "Could not fetch expense")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, expense)
}

// ----------------------------------------------------------------
// PATCH /api/v1/expenses/{id}
// ----------------------------------------------------------------
func (c *ExpenseController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var body dtos.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for update-expense payload", nil, err,
		)
		return
	}
	if !validateBody(w, &body) {
		return
	}

	updated, err := c.ledger.UpdateExpense(r.Context(), userID, mux.Vars(r)["id"], body.Fields())
	if err != nil {
		respondDomainError(w, err, "Could not update expense")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// ----------------------------------------------------------------
// DELETE /api/v1/expenses/{id}
// ----------------------------------------------------------------
func (c *ExpenseController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := c.ledger.DeleteExpense(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondDomainError(w, err, "Could not delete expense")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
