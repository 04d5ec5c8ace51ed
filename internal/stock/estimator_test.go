package stock

import (
	"math/rand"
	"testing"
)

type seededSource struct{ r *rand.Rand }

func (s seededSource) IntN(n int) int { return s.r.Intn(n) }

func seededEstimator(seed uint64) *Estimator {
	return NewEstimator(seededSource{rand.New(rand.NewSource(int64(seed)))})
}

func TestEstimatorImmediateWhenAvailable(t *testing.T) {
	e := seededEstimator(1)
	if got := e.DeliveryDays("TRUE", true); got != 0 {
		t.Fatalf("expected 0 days for available material, got %d", got)
	}
}

func TestEstimatorSlabRange(t *testing.T) {
	e := seededEstimator(2)
	for i := 0; i < 200; i++ {
		got := e.DeliveryDays("KICKBACK SLAB STK", true)
		if got < 60 || got > 90 {
			t.Fatalf("slab estimate %d outside [60,90]", got)
		}
	}
	for i := 0; i < 200; i++ {
		got := e.DeliveryDays("SLAB STK", true)
		if got < 60 || got > 90 {
			t.Fatalf("slab estimate %d outside [60,90]", got)
		}
	}
}

func TestEstimatorHotRollRange(t *testing.T) {
	e := seededEstimator(3)
	for _, sal := range []string{"HRC HRM", "HRCS", "HRCS JOBWORK", "HRSS", "REMOTE HRC"} {
		for i := 0; i < 100; i++ {
			got := e.DeliveryDays(sal, true)
			if got < 45 || got > 60 {
				t.Fatalf("sal %q gave %d outside [45,60]", sal, got)
			}
		}
	}
}

func TestEstimatorColdRollFixed(t *testing.T) {
	e := seededEstimator(4)
	for _, sal := range []string{"HRC CRM", "COIN BLANK STK", "PACKET OPEN WIP"} {
		if got := e.DeliveryDays(sal, true); got != 30 {
			t.Fatalf("sal %q expected fixed 30, got %d", sal, got)
		}
	}
}

func TestEstimatorFallbackRange(t *testing.T) {
	e := seededEstimator(5)
	for i := 0; i < 200; i++ {
		if got := e.DeliveryDays("SOMETHING ELSE", true); got < 75 || got > 100 {
			t.Fatalf("fallback estimate %d outside [75,100]", got)
		}
	}
	for i := 0; i < 200; i++ {
		if got := e.DeliveryDays("", false); got < 75 || got > 100 {
			t.Fatalf("no-row estimate %d outside [75,100]", got)
		}
	}
}

func TestEstimatorFirstMatchWins(t *testing.T) {
	e := seededEstimator(6)
	// "REMOTE HRC SLAB STK" matches the slab band before the hot roll one.
	for i := 0; i < 100; i++ {
		got := e.DeliveryDays("REMOTE HRC SLAB STK", true)
		if got < 60 || got > 90 {
			t.Fatalf("combined sal gave %d, expected slab band [60,90]", got)
		}
	}
	// lowercase values never match the case-sensitive markers
	for i := 0; i < 100; i++ {
		got := e.DeliveryDays("slab stk", true)
		if got < 75 || got > 100 {
			t.Fatalf("lowercase sal gave %d, expected fallback band", got)
		}
	}
}

func TestDeliveryMessage(t *testing.T) {
	if got := DeliveryMessage(0); got != MessageAvailable {
		t.Fatalf("unexpected zero-day message %q", got)
	}
	if got := DeliveryMessage(45); got != "Processing time: 45 days" {
		t.Fatalf("unexpected message %q", got)
	}
}
