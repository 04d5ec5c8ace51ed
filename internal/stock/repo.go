package stock

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ravikumar1136/sail-backend/pkg/db/models"
)

// SearchFilter narrows a stock lookup; empty fields are ignored and the
// remaining ones are ANDed together.
type SearchFilter struct {
	Grade     string
	Thickness string
	Width     string
	Length    string
	Finish    string
	Limit     int
}

// Repository exposes read and seed operations over the stock dataset.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a stock repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindFirstByGrade returns the first stock row for the grade, or nil when
// no row matches.
func (r *Repository) FindFirstByGrade(ctx context.Context, grade string) (*models.StockRecord, error) {
	var record models.StockRecord
	err := r.db.WithContext(ctx).Where("grd = ?", grade).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Search returns all rows matching the filter.
func (r *Repository) Search(ctx context.Context, filter SearchFilter) ([]models.StockRecord, error) {
	q := r.db.WithContext(ctx).Model(&models.StockRecord{})
	if filter.Grade != "" {
		q = q.Where("grd = ?", filter.Grade)
	}
	if filter.Thickness != "" {
		q = q.Where("thk = ?", filter.Thickness)
	}
	if filter.Width != "" {
		q = q.Where("widt = ?", filter.Width)
	}
	if filter.Length != "" {
		q = q.Where("lngt = ?", filter.Length)
	}
	if filter.Finish != "" {
		q = q.Where("fin = ?", filter.Finish)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var records []models.StockRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count reports how many stock rows exist.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StockRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// BulkInsert writes the records in batches. Used by the seeder only.
func (r *Repository) BulkInsert(ctx context.Context, records []models.StockRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, 200).Error
}
