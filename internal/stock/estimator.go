package stock

import (
	"fmt"
	"math/rand"
	"strings"
)

// MessageAvailable is shown when material can ship immediately.
const MessageAvailable = "Material Available, It will be dispatched soon"

// RandSource supplies the randomness for estimated ranges. Tests inject a
// seeded instance.
type RandSource interface {
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.Intn(n) }

// Estimator derives delivery days from a stock row's SAL availability
// field. The rule table is first-match-wins with case-sensitive substring
// checks, mirroring how the plant encodes availability today.
type Estimator struct {
	rng RandSource
}

// NewEstimator builds an estimator; a nil source falls back to the
// process-wide generator.
func NewEstimator(rng RandSource) *Estimator {
	if rng == nil {
		rng = systemRand{}
	}
	return &Estimator{rng: rng}
}

var (
	slabMarkers     = []string{"KICKBACK SLAB STK", "SLAB STK"}
	hotRollMarkers  = []string{"HRC HRM", "HRCS", "HRCS JOBWORK", "HRSS", "REMOTE HRC"}
	coldRollMarkers = []string{"HRC CRM", "COIN BLANK STK", "PACKET OPEN WIP"}
)

// DeliveryDays maps a SAL value onto a day estimate. found reports whether
// a stock row matched the requested grade at all; without one the estimate
// falls through to the slowest band.
func (e *Estimator) DeliveryDays(salValue string, found bool) int {
	if !found {
		return e.between(75, 100)
	}

	switch {
	case salValue == "TRUE":
		return 0
	case containsAny(salValue, slabMarkers):
		return e.between(60, 90)
	case containsAny(salValue, hotRollMarkers):
		return e.between(45, 60)
	case containsAny(salValue, coldRollMarkers):
		return 30
	default:
		return e.between(75, 100)
	}
}

// DeliveryMessage renders the human-readable availability line.
func DeliveryMessage(days int) string {
	if days == 0 {
		return MessageAvailable
	}
	return fmt.Sprintf("Processing time: %d days", days)
}

// between returns a uniform value in [min, max], both ends inclusive.
func (e *Estimator) between(min, max int) int {
	return min + e.rng.IntN(max-min+1)
}

func containsAny(value string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(value, marker) {
			return true
		}
	}
	return false
}
