package controllers

import (
	"net/http"

	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/api/validators"
	"github.com/ravikumar1136/sail-backend/internal/users"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

// ProfileGet returns the caller's profile.
func ProfileGet(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"user": user})
	}
}

// ProfileUpdate changes the caller's name and email.
func ProfileUpdate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		var body users.UpdateProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		body.Name = validators.SanitizeString(body.Name, 120)

		user, err := svc.UpdateProfile(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"message": "Profile updated successfully",
			"user":    user,
		})
	}
}

// ProfilePasswordUpdate rotates the caller's password after checking the
// current one.
func ProfilePasswordUpdate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		var body users.ChangePasswordRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, body); err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Password updated successfully"})
	}
}
