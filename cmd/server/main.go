package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/app"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/config"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/constants"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/controllers"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/middleware"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/repositories"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/routes"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/services"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize landlord-api:", err)
	}
	defer application.Close()

	notifRepo := repositories.NewNotificationRepository(application.Store)
	propRepo := repositories.NewPropertyRepository(application.Store, notifRepo)
	unitRepo := repositories.NewUnitRepository(application.Store, notifRepo)
	tenantRepo := repositories.NewTenantRepository(application.Store, notifRepo)
	leaseRepo := repositories.NewLeaseRepository(application.Store, notifRepo)
	paymentRepo := repositories.NewPaymentRepository(application.Store)
	expenseRepo := repositories.NewExpenseRepository(application.Store)

	ledgerService := services.NewLedgerService(paymentRepo, expenseRepo, propRepo, notifRepo)
	occupancyService := services.NewOccupancyService(unitRepo, propRepo, tenantRepo, notifRepo)
	portfolioService := services.NewPortfolioService(propRepo, unitRepo)
	reconciler := services.NewReconcilerService(application.Store)

	healthController := controllers.NewHealthController(application)
	propController := controllers.NewPropertyController(propRepo, unitRepo)
	unitController := controllers.NewUnitController(unitRepo)
	tenantController := controllers.NewTenantController(tenantRepo)
	leaseController := controllers.NewLeaseController(leaseRepo)
	paymentController := controllers.NewPaymentController(ledgerService)
	expenseController := controllers.NewExpenseController(ledgerService)
	occupancyController := controllers.NewOccupancyController(occupancyService)
	notifController := controllers.NewNotificationController(notifRepo)
	dashboardController := controllers.NewDashboardController(portfolioService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	secured.HandleFunc(routes.PropertiesBase, propController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertiesBase, propController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.PropertyByID, propController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.PropertyUnits, propController.ListUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyTenant, occupancyController.AssignPropertyTenantHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.PropertyTenant, occupancyController.RemovePropertyTenantHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.UnitsBase, unitController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.UnitsBase, unitController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitByID, unitController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitByID, unitController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.UnitByID, unitController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.UnitTenant, occupancyController.AssignUnitTenantHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.UnitTenant, occupancyController.RemoveUnitTenantHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.TenantsBase, tenantController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.TenantsBase, tenantController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantByID, tenantController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantByID, tenantController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.TenantByID, tenantController.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.LeasesBase, leaseController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.LeasesBase, leaseController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leaseController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leaseController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.LeaseByID, leaseController.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.PaymentsBase, paymentController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentsBase, paymentController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentByID, paymentController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentByID, paymentController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.PaymentByID, paymentController.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.ExpensesBase, expenseController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ExpensesBase, expenseController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ExpenseByID, expenseController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ExpenseByID, expenseController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.ExpenseByID, expenseController.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.NotificationsBase, notifController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.NotificationByID, notifController.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.DashboardSummary, dashboardController.SummaryHandler).Methods(http.MethodGet)

	c := cron.New(cron.WithLocation(time.UTC))
	_, cronErr := c.AddFunc(cfg.ReconcileCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), constants.ReconcileJobTimeout)
		defer cancel()
		if e := reconciler.Run(ctx); e != nil {
			utils.Logger.WithError(e).Error("Scheduled reconciliation failed")
		}
	})
	if cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule reconciliation cron")
	}
	c.Start()

	allowedOrigins := []string{"*"}
	if cfg.AppUrl != "" {
		allowedOrigins = []string{cfg.AppUrl}
	}
	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("landlord-api failed to start:", err)
	}
}
