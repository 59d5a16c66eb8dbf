package models

// Payment is a ledger entry against a property (optionally a unit).
// Amounts are SAR. Creating/updating/deleting a payment adjusts the parent
// property's income aggregate.
type Payment struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"propertyId"`
	UnitID      string  `json:"unitId,omitempty"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"paymentDate"`
	Notes       string  `json:"notes,omitempty"`
	UserID      string  `json:"userId"`
}

// Expense mirrors Payment on the expenses side of the ledger.
type Expense struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"propertyId"`
	UnitID      string  `json:"unitId,omitempty"`
	ExpenseType string  `json:"expenseType"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expenseDate"`
	Notes       string  `json:"notes,omitempty"`
	UserID      string  `json:"userId"`
}
