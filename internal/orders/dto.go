package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/ravikumar1136/sail-backend/pkg/db/models"
)

// CreateOrderRequest carries a new order, field names matching the
// frontend form.
type CreateOrderRequest struct {
	Grade            string `json:"grade" validate:"required"`
	Thickness        string `json:"thickness" validate:"required"`
	Width            string `json:"width" validate:"required"`
	Length           string `json:"length"`
	Finish           string `json:"finish"`
	Quality          string `json:"quality"`
	Edge             string `json:"edge"`
	BQuantity        string `json:"bQuantity"`
	Customer         string `json:"customer" validate:"required"`
	SSPROID          string `json:"sspRoId"`
	ReleaseDate      string `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
	RequiredQuantity string `json:"requiredQuantity" validate:"required"`
	MOU              string `json:"mou"`
	Remarks          string `json:"remarks"`
}

// OrderDTO is the full order shape returned from list and detail lookups.
type OrderDTO struct {
	ID               uuid.UUID  `json:"id"`
	UserID           string     `json:"user_id"`
	Grade            string     `json:"grade"`
	Thickness        string     `json:"thickness"`
	Width            string     `json:"width"`
	Length           string     `json:"length"`
	Finish           string     `json:"finish"`
	Quality          string     `json:"quality"`
	Edge             string     `json:"edge"`
	BQuantity        string     `json:"b_quantity"`
	Customer         string     `json:"customer"`
	SSPROID          string     `json:"ssp_ro_id"`
	ReleaseDate      *time.Time `json:"release_date"`
	RequiredQuantity string     `json:"required_quantity"`
	MOU              string     `json:"mou"`
	Remarks          string     `json:"remarks"`
	DeliveryDays     int        `json:"delivery_days"`
	ExpectedDelivery time.Time  `json:"expected_delivery_date"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// OrderSummary is the condensed creation receipt.
type OrderSummary struct {
	ID               uuid.UUID `json:"id"`
	UserID           string    `json:"userId"`
	Grade            string    `json:"grade"`
	Thickness        string    `json:"thickness"`
	Width            string    `json:"width"`
	DeliveryDays     int       `json:"deliveryDays"`
	ExpectedDelivery time.Time `json:"expectedDeliveryDate"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FromModel converts a persisted order into its transport shape.
func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:               o.ID,
		UserID:           o.UserID,
		Grade:            o.Grade,
		Thickness:        o.Thickness,
		Width:            o.Width,
		Length:           o.Length,
		Finish:           o.Finish,
		Quality:          o.Quality,
		Edge:             o.Edge,
		BQuantity:        o.BQuantity,
		Customer:         o.Customer,
		SSPROID:          o.SSPROID,
		ReleaseDate:      o.ReleaseDate,
		RequiredQuantity: o.RequiredQuantity,
		MOU:              o.MOU,
		Remarks:          o.Remarks,
		DeliveryDays:     o.DeliveryDays,
		ExpectedDelivery: o.ExpectedDelivery,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// SummaryFromModel condenses a persisted order into the creation receipt.
func SummaryFromModel(o *models.Order) *OrderSummary {
	if o == nil {
		return nil
	}
	return &OrderSummary{
		ID:               o.ID,
		UserID:           o.UserID,
		Grade:            o.Grade,
		Thickness:        o.Thickness,
		Width:            o.Width,
		DeliveryDays:     o.DeliveryDays,
		ExpectedDelivery: o.ExpectedDelivery,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
	}
}

// FromModels converts a batch, never returning nil so handlers can encode
// an empty JSON array.
func FromModels(list []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
