package render

import (
	"github.com/lixenwraith/warpclock/settings"
	"github.com/lixenwraith/warpclock/theme"
	"github.com/lixenwraith/warpclock/vclock"
)

// Context carries the per-frame inputs shared by all renderers
type Context struct {
	Width, Height int
	Snapshot      vclock.Snapshot
	Settings      settings.Settings
	Palette       theme.Palette
	Muted         bool
}

// Dial returns the face center and radius (in rows) that fit the
// current screen, leaving room for the status bar
func (c Context) Dial() (cx, cy int, radius float64) {
	cx = c.Width / 2
	cy = (c.Height - 1) / 2

	vertical := float64(c.Height-3) / 2
	horizontal := float64(c.Width-2) / (2 * CellAspect)
	radius = vertical
	if horizontal < radius {
		radius = horizontal
	}
	if radius < 1 {
		radius = 1
	}
	return cx, cy, radius
}
