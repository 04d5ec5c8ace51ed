package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/ravikumar1136/sail-backend/pkg/db/models"
	pkgerrors "github.com/ravikumar1136/sail-backend/pkg/errors"
)

// Service answers stock availability questions.
type Service interface {
	Check(ctx context.Context, grade string) (*CheckResult, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.StockRecord, error)
	EstimateForGrade(ctx context.Context, grade string) (int, error)
}

type repository interface {
	FindFirstByGrade(ctx context.Context, grade string) (*models.StockRecord, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.StockRecord, error)
}

type service struct {
	repo      repository
	estimator *Estimator
	now       func() time.Time
}

// ServiceParams bundles the dependencies required to build a stock service.
type ServiceParams struct {
	Repo      repository
	Estimator *Estimator
	Now       func() time.Time
}

// NewService constructs a stock service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("stock repository is required")
	}
	if params.Estimator == nil {
		params.Estimator = NewEstimator(nil)
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

// Check runs the estimator for a grade without persisting anything.
func (s *service) Check(ctx context.Context, grade string) (*CheckResult, error) {
	days, err := s.EstimateForGrade(ctx, grade)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Grade:            grade,
		DeliveryDays:     days,
		DeliveryMessage:  DeliveryMessage(days),
		ExpectedDelivery: s.now().AddDate(0, 0, days),
	}, nil
}

// EstimateForGrade looks up the first stock row for the grade and maps its
// SAL value to delivery days.
func (s *service) EstimateForGrade(ctx context.Context, grade string) (int, error) {
	record, err := s.repo.FindFirstByGrade(ctx, grade)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup stock row")
	}

	sal := ""
	if record != nil {
		sal = record.SAL
	}
	return s.estimator.DeliveryDays(sal, record != nil), nil
}

// Search returns all rows matching the filter.
func (s *service) Search(ctx context.Context, filter SearchFilter) ([]models.StockRecord, error) {
	records, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search stock rows")
	}
	if records == nil {
		records = []models.StockRecord{}
	}
	return records, nil
}
