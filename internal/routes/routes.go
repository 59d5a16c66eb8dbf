package routes

const (
	// Health
	Health = "/health"

	// Properties
	PropertiesBase = "/api/v1/properties"
	PropertyByID   = "/api/v1/properties/{id}"
	PropertyUnits  = "/api/v1/properties/{id}/units"
	PropertyTenant = "/api/v1/properties/{id}/tenant"

	// Units
	UnitsBase  = "/api/v1/units"
	UnitByID   = "/api/v1/units/{id}"
	UnitTenant = "/api/v1/units/{id}/tenant"

	// Tenants
	TenantsBase = "/api/v1/tenants"
	TenantByID  = "/api/v1/tenants/{id}"

	// Leases
	LeasesBase = "/api/v1/leases"
	LeaseByID  = "/api/v1/leases/{id}"

	// Ledger
	PaymentsBase = "/api/v1/payments"
	PaymentByID  = "/api/v1/payments/{id}"
	ExpensesBase = "/api/v1/expenses"
	ExpenseByID  = "/api/v1/expenses/{id}"

	// Notifications
	NotificationsBase = "/api/v1/notifications"
	NotificationByID  = "/api/v1/notifications/{id}"

	// Dashboard
	DashboardSummary = "/api/v1/dashboard/summary"
)
