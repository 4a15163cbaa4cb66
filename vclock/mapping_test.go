package vclock

import (
	"testing"
	"time"
)

func TestDisplayTimeZeroElapsed(t *testing.T) {
	// Zero elapsed time must yield the display anchor exactly for any
	// rate, including zero and negative rates
	anchor := time.UnixMilli(1000)
	display := time.UnixMilli(5000)

	for _, rate := range []float64{0, 1, 2, 0.5, -1, -3.7, 10} {
		got := DisplayTime(anchor, display, anchor, rate)
		if !got.Equal(display) {
			t.Errorf("rate %v: expected %v, got %v", rate, display, got)
		}
	}
}

func TestDisplayTimeScaling(t *testing.T) {
	testCases := []struct {
		name          string
		realAnchor    int64 // milliseconds
		displayAnchor int64
		now           int64
		rate          float64
		expected      int64
	}{
		{"identity", 1000, 1000, 2000, 1.0, 2000},
		{"double speed", 1000, 1000, 2000, 2.0, 3000},
		{"half speed", 1000, 1000, 3000, 0.5, 2000},
		{"offset anchors", 1000, 5000, 2000, 1.0, 6000},
		{"default rate", 0, 0, 1000, 1.1, 1100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DisplayTime(
				time.UnixMilli(tc.realAnchor),
				time.UnixMilli(tc.displayAnchor),
				time.UnixMilli(tc.now),
				tc.rate,
			)
			if got.UnixMilli() != tc.expected {
				t.Errorf("expected %dms, got %dms", tc.expected, got.UnixMilli())
			}
		})
	}
}

func TestDisplayTimeDeterministic(t *testing.T) {
	anchor := time.UnixMilli(42)
	display := time.UnixMilli(4242)
	now := time.UnixMilli(9001)

	first := DisplayTime(anchor, display, now, 3.25)
	for i := 0; i < 100; i++ {
		if got := DisplayTime(anchor, display, now, 3.25); !got.Equal(first) {
			t.Fatalf("call %d: expected %v, got %v", i, first, got)
		}
	}
}
