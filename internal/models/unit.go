package models

// Unit is a rentable sub-division of a building-type property. Units are
// stored as top-level documents correlated to their parent by PropertyID.
// Invariant: Status==occupied iff TenantID is set; enforced by the
// occupancy service, not by the store.
type Unit struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"propertyId"`
	UnitNumber  string          `json:"unitNumber,omitempty"`
	Size        float64         `json:"size,omitempty"`
	Bedrooms    int             `json:"bedrooms,omitempty"`
	Bathrooms   int             `json:"bathrooms,omitempty"`
	RentAmount  float64         `json:"rentAmount,omitempty"`
	Status      OccupancyStatus `json:"status"`
	TenantID    string          `json:"tenantId,omitempty"`
	StartDate   string          `json:"startDate,omitempty"`
	FloorNumber int             `json:"floorNumber,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	UserID      string          `json:"userId"`
}
