package models

// Tenant is a renter assignable to a unit or directly to a non-building
// property. Assignment state lives on the unit/property side; the tenant
// record itself never changes on assign/remove.
type Tenant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	UserID   string `json:"userId"`
}
