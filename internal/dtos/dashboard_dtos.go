package dtos

// DashboardSummaryResponse is the portfolio-wide rollup shown on the
// dashboard. Unit counts include non-building properties let as a whole.
type DashboardSummaryResponse struct {
	TotalProperties     int     `json:"total_properties"`
	TotalUnits          int     `json:"total_units"`
	OccupiedUnits       int     `json:"occupied_units"`
	VacantUnits         int     `json:"vacant_units"`
	TotalIncome         float64 `json:"total_income"`
	TotalExpenses       float64 `json:"total_expenses"`
	TotalOperatingCosts float64 `json:"total_operating_costs"`
	NetProfit           float64 `json:"net_profit"`
}
