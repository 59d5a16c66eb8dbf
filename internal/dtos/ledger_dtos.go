package dtos

import (
	"github.com/Sulaimonyusuf123/Landlord-app/internal/models"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

type CreatePaymentRequest struct {
	PropertyID  string  `json:"propertyId" validate:"required"`
	UnitID      *string `json:"unitId,omitempty"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate string  `json:"paymentDate" validate:"required,datetime=2006-01-02"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreatePaymentRequest) Model() *models.Payment {
	return &models.Payment{
		PropertyID:  r.PropertyID,
		UnitID:      utils.Val(r.UnitID),
		Amount:      r.Amount,
		PaymentDate: r.PaymentDate,
		Notes:       utils.Val(r.Notes),
	}
}

// UpdatePaymentRequest: a payment's identity (property/unit) is fixed;
// only amount, date and notes are editable.
type UpdatePaymentRequest struct {
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaymentDate *string  `json:"paymentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r *UpdatePaymentRequest) Fields() map[string]any {
	m := map[string]any{}
	setIf(m, "amount", r.Amount)
	setIf(m, "paymentDate", r.PaymentDate)
	setIf(m, "notes", r.Notes)
	return m
}

type CreateExpenseRequest struct {
	PropertyID  string  `json:"propertyId" validate:"required"`
	UnitID      *string `json:"unitId,omitempty"`
	ExpenseType string  `json:"expenseType" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	ExpenseDate string  `json:"expenseDate" validate:"required,datetime=2006-01-02"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateExpenseRequest) Model() *models.Expense {
	return &models.Expense{
		PropertyID:  r.PropertyID,
		UnitID:      utils.Val(r.UnitID),
		ExpenseType: r.ExpenseType,
		Amount:      r.Amount,
		ExpenseDate: r.ExpenseDate,
		Notes:       utils.Val(r.Notes),
	}
}

type UpdateExpenseRequest struct {
	ExpenseType *string  `json:"expenseType,omitempty"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	ExpenseDate *string  `json:"expenseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string  `json:"notes,omitempty"`
}

func (r *UpdateExpenseRequest) Fields() map[string]any {
	m := map[string]any{}
	setIf(m, "expenseType", r.ExpenseType)
	setIf(m, "amount", r.Amount)
	setIf(m, "expenseDate", r.ExpenseDate)
	setIf(m, "notes", r.Notes)
	return m
}
