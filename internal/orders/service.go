package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ravikumar1136/sail-backend/pkg/db/models"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
)

const releaseDateLayout = "2006-01-02"

// Service defines the behavior needed by the orders controllers.
type Service interface {
	Create(ctx context.Context, userID string, req CreateOrderRequest) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]OrderDTO, error)
	ListAll(ctx context.Context) ([]OrderDTO, error)
	GetForUser(ctx context.Context, id uuid.UUID, userID string) (*OrderDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
}

type repository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.Order, error)
}

// deliveryEstimator is satisfied by the stock service.
type deliveryEstimator interface {
	EstimateForGrade(ctx context.Context, grade string) (int, error)
}

type service struct {
	repo      repository
	estimator deliveryEstimator
	now       func() time.Time
}

// ServiceParams bundles the dependencies required to build an order service.
type ServiceParams struct {
	Repo      repository
	Estimator deliveryEstimator
	Now       func() time.Time
}

// NewService constructs an orders service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Estimator == nil {
		return nil, fmt.Errorf("delivery estimator is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		repo:      params.Repo,
		estimator: params.Estimator,
		now:       params.Now,
	}, nil
}

// Create runs the delivery estimator for the requested grade and persists
// the order with its estimate frozen in.
func (s *service) Create(ctx context.Context, userID string, req CreateOrderRequest) (*models.Order, error) {
	days, err := s.estimator.EstimateForGrade(ctx, req.Grade)
	if err != nil {
		return nil, err
	}

	now := s.now()
	releaseDate, err := s.resolveReleaseDate(req.ReleaseDate, now)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:               uuid.New(),
		UserID:           userID,
		Grade:            req.Grade,
		Thickness:        req.Thickness,
		Width:            req.Width,
		Length:           req.Length,
		Finish:           req.Finish,
		Quality:          req.Quality,
		Edge:             req.Edge,
		BQuantity:        req.BQuantity,
		Customer:         req.Customer,
		SSPROID:          req.SSPROID,
		ReleaseDate:      &releaseDate,
		RequiredQuantity: req.RequiredQuantity,
		MOU:              req.MOU,
		Remarks:          req.Remarks,
		DeliveryDays:     days,
		ExpectedDelivery: releaseDate.AddDate(0, 0, days),
		Status:           models.OrderStatusProcessing,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return order, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]OrderDTO, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return FromModels(list), nil
}

func (s *service) ListAll(ctx context.Context) ([]OrderDTO, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return FromModels(list), nil
}

func (s *service) GetForUser(ctx context.Context, id uuid.UUID, userID string) (*OrderDTO, error) {
	order, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return FromModel(order), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return FromModel(order), nil
}

// resolveReleaseDate parses the requested date or defaults to today. The
// estimate counts whole days from the release date, not the clock time.
func (s *service) resolveReleaseDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		raw = now.Format(releaseDateLayout)
	}
	parsed, err := time.Parse(releaseDateLayout, raw)
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "releaseDate must be YYYY-MM-DD")
	}
	return parsed, nil
}
