package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ravikumar1136/sail-backend/api/middleware"
	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/api/validators"
	"github.com/ravikumar1136/sail-backend/internal/auth"
	pkgAuth "github.com/ravikumar1136/sail-backend/pkg/auth"
	"github.com/ravikumar1136/sail-backend/pkg/config"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

// AuthSignup wires the registration endpoint into the HTTP layer.
func AuthSignup(svc auth.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		var body auth.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}
		body.Name = validators.SanitizeString(body.Name, 120)

		result, err := svc.Signup(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		pkgAuth.SetCookie(w, jwtCfg, result.Token)
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"message": "User created successfully",
			"user":    result.User,
		})
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		pkgAuth.SetCookie(w, jwtCfg, result.Token)
		responses.WriteSuccess(w, map[string]any{
			"message": "Login successful",
			"user":    result.User,
		})
	}
}

// AuthLogout clears the auth cookie. It succeeds whether or not a session
// existed.
func AuthLogout(jwtCfg config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pkgAuth.ClearCookie(w, jwtCfg)
		responses.WriteSuccess(w, map[string]string{"message": "Logout successful"})
	}
}

// AuthMe returns the user behind the auth cookie.
func AuthMe(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"user": user})
	}
}

// currentUserID reads the authenticated user id seeded by the auth
// middleware.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authenticated")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Invalid token")
	}
	return id, nil
}
