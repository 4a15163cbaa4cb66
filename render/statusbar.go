package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const statusHints = "space pause  +/- rate  r reset  s settings  m sound  q quit"

// StatusBarRenderer draws the bottom status line: run state and rate
// on the left, key hints on the right
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

func (r *StatusBarRenderer) Render(ctx Context, screen tcell.Screen) {
	y := ctx.Height - 1
	style := tcell.StyleDefault.
		Background(ctx.Palette.StatusBG).
		Foreground(ctx.Palette.StatusFG)

	for x := 0; x < ctx.Width; x++ {
		setCell(screen, ctx, x, y, ' ', style)
	}

	state := "▶"
	if !ctx.Snapshot.Running {
		state = "⏸"
	}
	left := fmt.Sprintf(" %s %.2fx", state, ctx.Snapshot.Rate)
	if ctx.Muted {
		left += "  ♪ off"
	}
	drawText(screen, ctx, 1, y, left, style)

	if ctx.Width > len(left)+len(statusHints)+4 {
		drawText(screen, ctx, ctx.Width-len(statusHints)-1, y, statusHints, style)
	}
}

func drawText(screen tcell.Screen, ctx Context, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		setCell(screen, ctx, x+i, y, ch, style)
	}
}
