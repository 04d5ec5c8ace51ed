package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ravikumar1136/sail-backend/pkg/db/models"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
)

type stubOrderRepo struct {
	created *models.Order
	orders  []models.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) error {
	s.created = order
	return nil
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orders, nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], nil
		}
	}
	return nil, nil
}

func (s *stubOrderRepo) FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id && s.orders[i].UserID == userID {
			return &s.orders[i], nil
		}
	}
	return nil, nil
}

type fixedEstimator struct {
	days     int
	gotGrade string
}

func (f *fixedEstimator) EstimateForGrade(ctx context.Context, grade string) (int, error) {
	f.gotGrade = grade
	return f.days, nil
}

func buildOrderService(t *testing.T, repo *stubOrderRepo, est *fixedEstimator, now time.Time) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Estimator: est,
		Now:       func() time.Time { return now },
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestCreateFreezesEstimate(t *testing.T) {
	repo := &stubOrderRepo{}
	est := &fixedEstimator{days: 45}
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	svc := buildOrderService(t, repo, est, now)

	order, err := svc.Create(context.Background(), "user-a", CreateOrderRequest{
		Grade:            "316",
		Thickness:        "0.3",
		Width:            "1250",
		Customer:         "ACME Steel",
		RequiredQuantity: "8",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if est.gotGrade != "316" {
		t.Fatalf("estimator saw grade %q", est.gotGrade)
	}
	if order.DeliveryDays != 45 {
		t.Fatalf("expected 45 delivery days, got %d", order.DeliveryDays)
	}
	if order.Status != models.OrderStatusProcessing {
		t.Fatalf("unexpected status %q", order.Status)
	}
	if order.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}

	// release date defaults to today (date precision) and anchors the estimate
	wantRelease := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if order.ReleaseDate == nil || !order.ReleaseDate.Equal(wantRelease) {
		t.Fatalf("unexpected release date %v", order.ReleaseDate)
	}
	wantDelivery := wantRelease.AddDate(0, 0, 45)
	if !order.ExpectedDelivery.Equal(wantDelivery) {
		t.Fatalf("expected delivery %v, got %v", wantDelivery, order.ExpectedDelivery)
	}
	if repo.created == nil {
		t.Fatal("order was not persisted")
	}
}

func TestCreateWithExplicitReleaseDate(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := buildOrderService(t, repo, &fixedEstimator{days: 30}, time.Now().UTC())

	order, err := svc.Create(context.Background(), models.AnonymousUserID, CreateOrderRequest{
		Grade:            "201",
		Thickness:        "2",
		Width:            "1250",
		Customer:         "ACME Steel",
		RequiredQuantity: "4",
		ReleaseDate:      "2025-04-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	want := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if !order.ExpectedDelivery.Equal(want) {
		t.Fatalf("expected delivery %v, got %v", want, order.ExpectedDelivery)
	}
	if order.UserID != models.AnonymousUserID {
		t.Fatalf("unexpected owner %q", order.UserID)
	}
}

func TestCreateRejectsBadReleaseDate(t *testing.T) {
	svc := buildOrderService(t, &stubOrderRepo{}, &fixedEstimator{days: 30}, time.Now().UTC())

	_, err := svc.Create(context.Background(), "user-a", CreateOrderRequest{
		Grade:            "201",
		Thickness:        "2",
		Width:            "1250",
		Customer:         "ACME Steel",
		RequiredQuantity: "4",
		ReleaseDate:      "01/04/2025",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetForUserScoping(t *testing.T) {
	order := models.Order{ID: uuid.New(), UserID: "user-a", Grade: "201"}
	repo := &stubOrderRepo{orders: []models.Order{order}}
	svc := buildOrderService(t, repo, &fixedEstimator{}, time.Now().UTC())

	got, err := svc.GetForUser(context.Background(), order.ID, "user-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != order.ID {
		t.Fatalf("unexpected order %s", got.ID)
	}

	_, err = svc.GetForUser(context.Background(), order.ID, "user-b")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("foreign order must look absent, got %v", err)
	}
}

func TestListByUserNeverReturnsNil(t *testing.T) {
	svc := buildOrderService(t, &stubOrderRepo{}, &fixedEstimator{}, time.Now().UTC())

	list, err := svc.ListByUser(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil {
		t.Fatal("expected an empty slice, got nil")
	}
}
