package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusProcessing is the only status this codebase ever writes. The
// column is free text so downstream tooling can move orders along.
const OrderStatusProcessing = "Processing"

// AnonymousUserID tags orders created by the unauthenticated standalone
// deployment.
const AnonymousUserID = "anonymous"

// Order is a steel coil/sheet purchase request together with its delivery
// estimate, frozen at creation time.
type Order struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	// UserID is a plain string rather than a UUID so the standalone
	// deployment can tag rows with the anonymous owner.
	UserID           string     `gorm:"column:user_id;not null;index"`
	Grade            string     `gorm:"column:grade;not null"`
	Thickness        string     `gorm:"column:thickness;not null"`
	Width            string     `gorm:"column:width;not null"`
	Length           string     `gorm:"column:length"`
	Finish           string     `gorm:"column:finish"`
	Quality          string     `gorm:"column:quality"`
	Edge             string     `gorm:"column:edge"`
	BQuantity        string     `gorm:"column:b_quantity"`
	Customer         string     `gorm:"column:customer;not null"`
	SSPROID          string     `gorm:"column:ssp_ro_id"`
	ReleaseDate      *time.Time `gorm:"column:release_date"`
	RequiredQuantity string     `gorm:"column:required_quantity;not null"`
	MOU              string     `gorm:"column:mou"`
	Remarks          string     `gorm:"column:remarks"`
	DeliveryDays     int        `gorm:"column:delivery_days;not null"`
	ExpectedDelivery time.Time  `gorm:"column:expected_delivery_date"`
	Status           string     `gorm:"column:status;default:Processing"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
