package controllers

import (
	"net/http"
	"strings"

	"github.com/ravikumar1136/sail-backend/api/responses"
	"github.com/ravikumar1136/sail-backend/internal/stock"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
	"github.com/ravikumar1136/sail-backend/pkg/logger"
)

// StockCheck runs the delivery estimator for a grade without creating an
// order.
func StockCheck(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		grade := strings.TrimSpace(r.URL.Query().Get("grade"))
		if grade == "" {
			err := pkgerrors.New(pkgerrors.CodeValidation, "Grade parameter is required")
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		result, err := svc.Check(r.Context(), grade)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, responses.StyleMessage, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
