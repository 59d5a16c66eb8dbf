package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Sulaimonyusuf123/Landlord-app/internal/config"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/store"
	"github.com/Sulaimonyusuf123/Landlord-app/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App holds the process-wide dependencies: the configuration and the
// document store (Postgres-backed in production, in-memory for local
// development and tests).
type App struct {
	Config *config.Config
	Store  store.Store

	pool *pgxpool.Pool
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if cfg.StoreDriver == config.StoreDriverMemory {
		utils.Logger.Info("Using in-memory document store")
		app.Store = store.NewMemory()
		return app, nil
	}

	var (
		pool    *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		pool, err = newDBPool(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("%s connected to DB on attempt %d", cfg.AppName, i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	pg := store.NewPostgres(pool)
	if err := pg.EnsureSchema(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	app.Store = pg
	app.pool = pool
	return app, nil
}

// Ping reports whether the backing store is reachable. The in-memory
// store is always healthy.
func (a *App) Ping(ctx context.Context) error {
	if a.pool == nil {
		return nil
	}
	return a.pool.Ping(ctx)
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
		utils.Logger.Infof("%s DB connection closed.", a.Config.AppName)
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}
