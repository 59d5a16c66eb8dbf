package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/constants"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

const AppName = "landlord-api"

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	AppName           string
	AppPort           string
	AppUrl            string
	StoreDriver       string
	DBUrl             string
	JWTSecret         []byte
	ReconcileCronSpec string
}

func LoadConfig() *Config {
	// .env is optional; real deployments inject env vars directly.
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found; using process environment")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}

	storeDriver := os.Getenv("STORE_DRIVER")
	if storeDriver == "" {
		storeDriver = StoreDriverPostgres
	}
	if storeDriver != StoreDriverMemory && storeDriver != StoreDriverPostgres {
		utils.Logger.Fatalf("Unknown STORE_DRIVER %q", storeDriver)
	}

	dbUrl := os.Getenv("DB_URL")
	if storeDriver == StoreDriverPostgres && dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	cronSpec := os.Getenv("RECONCILE_CRON_SPEC")
	if cronSpec == "" {
		cronSpec = constants.DefaultReconcileCronSpec
	}

	return &Config{
		AppName:           AppName,
		AppPort:           appPort,
		AppUrl:            os.Getenv("APP_URL"),
		StoreDriver:       storeDriver,
		DBUrl:             dbUrl,
		JWTSecret:         []byte(jwtSecret),
		ReconcileCronSpec: cronSpec,
	}
}
