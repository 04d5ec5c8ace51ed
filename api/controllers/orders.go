package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/api/validators"
	"github.com/ravikumar1136/sail-backend/internal/orders"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

// OrdersList returns the caller's orders, newest first.
func OrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		list, err := svc.ListByUser(r.Context(), userID.String())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"orders": list})
	}
}

// OrdersCreate runs the delivery estimator and persists a new order for
// the caller.
func OrdersCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		var body orders.CreateOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		order, err := svc.Create(r.Context(), userID.String(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"message": "Order created successfully",
			"order":   orders.SummaryFromModel(order),
		})
	}
}

// OrdersGet loads one of the caller's orders; foreign orders look absent.
func OrdersGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		orderID, err := orderIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		order, err := svc.GetForUser(r.Context(), orderID, userID.String())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"order": order})
	}
}

func orderIDFromURL(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "orderId")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return id, nil
}
