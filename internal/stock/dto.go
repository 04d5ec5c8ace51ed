package stock

import "time"

// CheckResult is the delivery estimate returned by the grade checker.
type CheckResult struct {
	Grade            string    `json:"grade"`
	DeliveryDays     int       `json:"deliveryDays"`
	DeliveryMessage  string    `json:"deliveryMessage"`
	ExpectedDelivery time.Time `json:"expectedDeliveryDate"`
}
