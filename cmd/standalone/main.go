package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ravikumar1136/sail-backend/api/routes"
	"github.com/ravikumar1136/sail-backend/internal/orders"
	"github.com/ravikumar1136/sail-backend/internal/stock"
	"github.com/ravikumar1136/sail-backend/pkg/config"
	"github.com/ravikumar1136/sail-backend/pkg/db"
	"github.com/ravikumar1136/sail-backend/pkg/db/models"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
	"github.com/ravikumar1136/sail-backend/pkg/metrics"
)

// The standalone build runs against an embedded SQLite file with no
// authentication. Schema comes from AutoMigrate rather than SQL
// migrations.
func main() {
	logg := logger.New(logger.Options{ServiceName: "standalone"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	// the embedded build defaults to SQLite even when the environment
	// still carries a pooled-deployment driver setting
	if os.Getenv(config.EnvDBDriver) == "" {
		os.Setenv(config.EnvDBDriver, config.DriverSQLite)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "standalone",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := dbClient.AutoMigrate(&models.Order{}, &models.StockRecord{}); err != nil {
		logg.Error(context.Background(), "failed to migrate schema", err)
		os.Exit(1)
	}

	stockRepo := stock.NewRepository(dbClient.DB())
	if err := stock.Seed(context.Background(), stockRepo, cfg.Stock.DataPath, logg); err != nil {
		logg.Error(context.Background(), "failed to seed stock data", err)
		os.Exit(1)
	}

	stockService, err := stock.NewService(stock.ServiceParams{Repo: stockRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create stock service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.ServiceParams{
		Repo:      orders.NewRepository(dbClient.DB()),
		Estimator: stockService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
		"db":   cfg.DB.SQLitePath,
	})
	logg.Info(ctx, "starting standalone server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewStandaloneRouter(routes.StandaloneDeps{
			Config:       cfg,
			Logger:       logg,
			DB:           dbClient,
			Metrics:      metrics.NewHTTPMetrics("sail-standalone"),
			OrderService: orderService,
			StockService: stockService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "standalone server stopped unexpectedly", err)
		os.Exit(1)
	}
}
