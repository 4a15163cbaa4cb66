package vclock

import "time"

// DisplayTime maps a real instant onto the virtual display timeline.
//
// The mapping is linear around the anchor pair: the display advances
// rate display-seconds for every real second elapsed since realAnchor.
// Zero elapsed time yields displayAnchor exactly, for any rate
// (including zero or negative rates - no sign special-casing here).
// Pure and deterministic; callers guarantee rate is finite and that
// all instants come from the same clock source.
func DisplayTime(realAnchor, displayAnchor, now time.Time, rate float64) time.Time {
	elapsed := now.Sub(realAnchor)
	return displayAnchor.Add(time.Duration(float64(elapsed) * rate))
}
