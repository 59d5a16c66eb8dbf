package models

type PropertyType string

const (
	PropertyTypeBuilding   PropertyType = "building"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeCommercial PropertyType = "commercial"
)

type OccupancyStatus string

const (
	StatusVacant   OccupancyStatus = "vacant"
	StatusOccupied OccupancyStatus = "occupied"
)

// Property is a managed real-estate asset. Income, Expenses and
// Profitability are maintained incrementally from the payment/expense
// ledger; OperatingCosts is entered manually and never written by the
// ledger rules. TenantID/StartDate/Status are only meaningful for
// non-building properties let directly to a tenant.
type Property struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           PropertyType    `json:"type"`
	Address        string          `json:"address,omitempty"`
	State          string          `json:"state,omitempty"`
	City           string          `json:"city,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	AnnualRent     float64         `json:"annualRent,omitempty"`
	Floors         int             `json:"floors,omitempty"`
	Bedrooms       int             `json:"bedrooms,omitempty"`
	Bathrooms      int             `json:"bathrooms,omitempty"`
	Income         float64         `json:"income"`
	Expenses       float64         `json:"expenses"`
	OperatingCosts float64         `json:"operatingCosts"`
	Profitability  float64         `json:"profitability"`
	TenantID       string          `json:"tenantId,omitempty"`
	StartDate      string          `json:"startDate,omitempty"`
	Status         OccupancyStatus `json:"status,omitempty"`
	UserID         string          `json:"userId"`
}
