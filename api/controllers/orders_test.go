package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ravikumar1136/sail-backend/api/middleware"
	"github.com/ravikumar1136/sail-backend/internal/orders"
	"github.com/ravikumar1136/sail-backend/pkg/db/models"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
)

type stubOrdersService struct {
	created *models.Order
	list    []orders.OrderDTO
	order   *orders.OrderDTO
	err     error

	gotUserID string
}

func (s *stubOrdersService) Create(ctx context.Context, userID string, req orders.CreateOrderRequest) (*models.Order, error) {
	s.gotUserID = userID
	return s.created, s.err
}

func (s *stubOrdersService) ListByUser(ctx context.Context, userID string) ([]orders.OrderDTO, error) {
	s.gotUserID = userID
	return s.list, s.err
}

func (s *stubOrdersService) ListAll(ctx context.Context) ([]orders.OrderDTO, error) {
	return s.list, s.err
}

func (s *stubOrdersService) GetForUser(ctx context.Context, id uuid.UUID, userID string) (*orders.OrderDTO, error) {
	s.gotUserID = userID
	return s.order, s.err
}

func (s *stubOrdersService) Get(ctx context.Context, id uuid.UUID) (*orders.OrderDTO, error) {
	return s.order, s.err
}

func authenticatedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func TestOrdersCreateReturnsSummary(t *testing.T) {
	userID := uuid.New()
	created := &models.Order{
		ID:               uuid.New(),
		UserID:           userID.String(),
		Grade:            "316",
		Thickness:        "0.3",
		Width:            "1250",
		DeliveryDays:     45,
		ExpectedDelivery: time.Date(2025, 4, 24, 0, 0, 0, 0, time.UTC),
		Status:           models.OrderStatusProcessing,
	}
	svc := &stubOrdersService{created: created}

	body, _ := json.Marshal(map[string]string{
		"grade":            "316",
		"thickness":        "0.3",
		"width":            "1250",
		"customer":         "ACME Steel",
		"requiredQuantity": "8",
	})
	req := authenticatedRequest(http.MethodPost, "/api/orders", body, userID)
	rec := httptest.NewRecorder()

	OrdersCreate(svc, nil)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotUserID != userID.String() {
		t.Fatalf("service saw user %q", svc.gotUserID)
	}

	var payload struct {
		Message string               `json:"message"`
		Order   *orders.OrderSummary `json:"order"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Order == nil || payload.Order.DeliveryDays != 45 {
		t.Fatalf("unexpected order %+v", payload.Order)
	}
	if payload.Order.Status != models.OrderStatusProcessing {
		t.Fatalf("unexpected status %q", payload.Order.Status)
	}
}

func TestOrdersCreateMissingFields(t *testing.T) {
	svc := &stubOrdersService{}
	req := authenticatedRequest(http.MethodPost, "/api/orders", []byte(`{"grade":"316"}`), uuid.New())
	rec := httptest.NewRecorder()

	OrdersCreate(svc, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrdersCreateStorageFailureReadsAsServerError(t *testing.T) {
	svc := &stubOrdersService{err: pkgerrors.Wrap(pkgerrors.CodeDependency, context.DeadlineExceeded, "create order")}

	body := []byte(`{"grade":"316","thickness":"2","width":"1250","customer":"Acme","requiredQuantity":"10"}`)
	req := authenticatedRequest(http.MethodPost, "/api/orders", body, uuid.New())
	rec := httptest.NewRecorder()
	OrdersCreate(svc, nil)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["message"] != "internal server error" {
		t.Fatalf("storage detail must not leak: %v", payload)
	}
}

func TestOrdersListEnvelope(t *testing.T) {
	userID := uuid.New()
	svc := &stubOrdersService{list: []orders.OrderDTO{{ID: uuid.New(), UserID: userID.String()}}}

	req := authenticatedRequest(http.MethodGet, "/api/orders", nil, userID)
	rec := httptest.NewRecorder()

	OrdersList(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Orders []orders.OrderDTO `json:"orders"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(payload.Orders))
	}
}

func TestOrdersGetNotFound(t *testing.T) {
	svc := &stubOrdersService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")}

	orderID := uuid.New()
	req := authenticatedRequest(http.MethodGet, "/api/orders/"+orderID.String(), nil, uuid.New())

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderId", orderID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	OrdersGet(svc, nil)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["message"] != "Order not found" {
		t.Fatalf("unexpected body %v", payload)
	}
}

func TestOrdersGetMalformedIDLooksAbsent(t *testing.T) {
	svc := &stubOrdersService{}

	req := authenticatedRequest(http.MethodGet, "/api/orders/not-a-uuid", nil, uuid.New())
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderId", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	OrdersGet(svc, nil)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOrdersRequireAuthContext(t *testing.T) {
	svc := &stubOrdersService{}
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	OrdersList(svc, nil)(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
