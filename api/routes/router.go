package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ravikumar1136/sail-backend/api/controllers"
	"github.com/ravikumar1136/sail-backend/api/middleware"
	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/internal/auth"
	"github.com/ravikumar1136/sail-backend/internal/orders"
	"github.com/ravikumar1136/sail-backend/internal/stock"
	"github.com/ravikumar1136/sail-backend/internal/users"
	"github.com/ravikumar1136/sail-backend/pkg/config"
	"github.com/ravikumar1136/sail-backend/pkg/db"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
	"github.com/ravikumar1136/sail-backend/pkg/metrics"
	"github.com/ravikumar1136/sail-backend/pkg/redis"
)

// Deps bundles everything the pooled API router mounts.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           *db.Client
	Redis        *redis.Client
	Metrics      *metrics.HTTPMetrics
	AuthService  auth.Service
	UserService  users.Service
	OrderService orders.Service
	StockService stock.Service
}

// NewRouter assembles the authenticated API surface.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg, responses.StyleMessage),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	// a typed nil *redis.Client must stay a nil interface so the limiter
	// middleware disables itself
	var limiter middleware.RateLimiterStore
	if deps.Redis != nil {
		limiter = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, logg, responses.StyleMessage))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, limiter, logg)).
			Post("/signup", controllers.AuthSignup(deps.AuthService, cfg.JWT, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).
			Post("/login", controllers.AuthLogin(deps.AuthService, cfg.JWT, logg))
		r.Post("/logout", controllers.AuthLogout(cfg.JWT))
		r.With(middleware.Auth(cfg.JWT, logg)).
			Get("/me", controllers.AuthMe(deps.AuthService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/api/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.OrderService, logg))
			r.Post("/", controllers.OrdersCreate(deps.OrderService, logg))
			r.Get("/{orderId}", controllers.OrdersGet(deps.OrderService, logg))
		})

		r.Route("/api/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(deps.UserService, logg))
			r.Put("/", controllers.ProfileUpdate(deps.UserService, logg))
			r.Put("/password", controllers.ProfilePasswordUpdate(deps.UserService, logg))
		})

		r.Get("/api/stock/check", controllers.StockCheck(deps.StockService, logg))
	})

	return r
}
