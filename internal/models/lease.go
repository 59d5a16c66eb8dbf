package models

// Lease is plain CRUD. It is not linked to payments or expenses and no
// scheduled-payment generation exists.
type Lease struct {
	ID         string  `json:"id"`
	TenantID   string  `json:"tenantId"`
	PropertyID string  `json:"propertyId,omitempty"`
	UnitID     string  `json:"unitId,omitempty"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate,omitempty"`
	RentAmount float64 `json:"rentAmount"`
	Terms      string  `json:"terms,omitempty"`
	UserID     string  `json:"userId"`
}
