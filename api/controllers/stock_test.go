package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ravikumar1136/sail-backend/internal/stock"
	"github.com/ravikumar1136/sail-backend/pkg/db/models"
)

type stubStockService struct {
	result  *stock.CheckResult
	records []models.StockRecord
	err     error

	gotGrade  string
	gotFilter stock.SearchFilter
}

func (s *stubStockService) Check(ctx context.Context, grade string) (*stock.CheckResult, error) {
	s.gotGrade = grade
	return s.result, s.err
}

func (s *stubStockService) Search(ctx context.Context, filter stock.SearchFilter) ([]models.StockRecord, error) {
	s.gotFilter = filter
	return s.records, s.err
}

func (s *stubStockService) EstimateForGrade(ctx context.Context, grade string) (int, error) {
	return 0, s.err
}

func TestStockCheckSuccess(t *testing.T) {
	svc := &stubStockService{result: &stock.CheckResult{
		Grade:            "201",
		DeliveryDays:     0,
		DeliveryMessage:  stock.MessageAvailable,
		ExpectedDelivery: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/stock/check?grade=201", nil)
	rec := httptest.NewRecorder()

	StockCheck(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotGrade != "201" {
		t.Fatalf("service saw grade %q", svc.gotGrade)
	}

	var payload struct {
		Grade           string `json:"grade"`
		DeliveryDays    int    `json:"deliveryDays"`
		DeliveryMessage string `json:"deliveryMessage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.DeliveryMessage != stock.MessageAvailable {
		t.Fatalf("unexpected message %q", payload.DeliveryMessage)
	}
}

func TestStockCheckRequiresGrade(t *testing.T) {
	svc := &stubStockService{}

	req := httptest.NewRequest(http.MethodGet, "/api/stock/check", nil)
	rec := httptest.NewRecorder()

	StockCheck(svc, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["message"] != "Grade parameter is required" {
		t.Fatalf("unexpected body %v", payload)
	}
}
