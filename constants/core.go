package constants

import "time"

const (
	// FrameUpdateInterval is the snapshot refresh interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// RateMin and RateMax bound the user-selectable rate.
	// The engine itself accepts any rate; enforcement happens at the
	// settings boundary.
	RateMin = 0.1
	RateMax = 10.0

	// RateDefault is the rate used when nothing valid is stored
	RateDefault = 1.1

	// RateStep is the increment applied by the rate nudge keys
	RateStep = 0.1
)
