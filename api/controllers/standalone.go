package controllers

import (
	"net/http"
	"strings"

	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/api/validators"
	"github.com/ravikumar1136/sail-backend/internal/orders"
	"github.com/ravikumar1136/sail-backend/internal/stock"
	"github.com/ravikumar1136/sail-backend/pkg/db/models"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

// The standalone deployment has no accounts: every order belongs to the
// anonymous owner and error bodies use an "error" key.

// StandaloneOrdersList returns every order, newest first, as a bare array.
func StandaloneOrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		list, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// StandaloneOrdersCreate persists an anonymous order with a server-side
// delivery estimate.
func StandaloneOrdersCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		var body orders.CreateOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		order, err := svc.Create(r.Context(), models.AnonymousUserID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"message": "Order created successfully",
			"order":   orders.SummaryFromModel(order),
		})
	}
}

// StandaloneOrdersGet looks an order up globally.
func StandaloneOrdersGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		orderID, err := orderIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		order, err := svc.Get(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// StandaloneStockSearch filters the stock dataset; all query parameters
// are optional and ANDed together.
func StandaloneStockSearch(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 1000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		query := r.URL.Query()
		filter := stock.SearchFilter{
			Grade:     strings.TrimSpace(query.Get("grade")),
			Thickness: strings.TrimSpace(query.Get("thickness")),
			Width:     strings.TrimSpace(query.Get("width")),
			Length:    strings.TrimSpace(query.Get("length")),
			Finish:    strings.TrimSpace(query.Get("finish")),
			Limit:     limit,
		}

		records, err := svc.Search(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleError, err)
			return
		}

		responses.WriteSuccess(w, records)
	}
}
