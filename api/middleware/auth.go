package middleware

import (
	"context"
	"net/http"

	"github.com/ravikumar1136/sail-backend/api/responses"
	pkgAuth "github.com/ravikumar1136/sail-backend/pkg/auth"
	"github.com/ravikumar1136/sail-backend/pkg/config"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

// Auth validates the auth cookie and seeds the request context with the
// token claims.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := pkgAuth.TokenFromRequest(r, cfg)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, responses.StyleMessage, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authenticated"))
				return
			}

			claims, err := pkgAuth.ParseToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, responses.StyleMessage, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID.String())
			ctx = context.WithValue(ctx, ctxUserName, claims.Name)
			ctx = context.WithValue(ctx, ctxUserEmail, claims.Email)

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
