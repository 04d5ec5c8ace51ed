package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ravikumar1136/sail-backend/api/controllers"
	"github.com/ravikumar1136/sail-backend/api/middleware"
	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/internal/orders"
	"github.com/ravikumar1136/sail-backend/internal/stock"
	"github.com/ravikumar1136/sail-backend/pkg/config"
	"github.com/ravikumar1136/sail-backend/pkg/db"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
	"github.com/ravikumar1136/sail-backend/pkg/metrics"
)

// StandaloneDeps bundles what the unauthenticated embedded-DB router mounts.
type StandaloneDeps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           *db.Client
	Metrics      *metrics.HTTPMetrics
	OrderService orders.Service
	StockService stock.Service
}

// NewStandaloneRouter assembles the open API surface backed by SQLite.
func NewStandaloneRouter(deps StandaloneDeps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg, responses.StyleError),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, logg, responses.StyleError))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", controllers.StandaloneOrdersList(deps.OrderService, logg))
		r.Post("/", controllers.StandaloneOrdersCreate(deps.OrderService, logg))
		r.Get("/{orderId}", controllers.StandaloneOrdersGet(deps.OrderService, logg))
	})

	r.Get("/api/stock/check", controllers.StandaloneStockSearch(deps.StockService, logg))

	return r
}
