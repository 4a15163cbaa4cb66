package ui

// Mode identifies which surface currently owns key input
type Mode uint8

const (
	// ModeClock is the default full-screen clock view
	ModeClock Mode = iota
	// ModeSettings is the modal settings dialog
	ModeSettings
)
