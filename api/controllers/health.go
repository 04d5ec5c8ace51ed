package controllers

import (
	"context"
	"net/http"

	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/pkg/config"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Sail-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database so load balancers stop routing when
// storage is gone.
func HealthReady(cfg *config.Config, db dbPinger, logg *logger.Logger, style responses.ErrorStyle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Sail-Env", cfg.App.Env)

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				wrapped := pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable")
				responses.WriteError(r.Context(), logg, w, style, wrapped)
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
