package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// DialRenderer draws the clock face: tick ring and optional numbers
type DialRenderer struct{}

func NewDialRenderer() *DialRenderer {
	return &DialRenderer{}
}

func (r *DialRenderer) Render(ctx Context, screen tcell.Screen) {
	cx, cy, radius := ctx.Dial()
	bg := tcell.StyleDefault.Background(ctx.Palette.Background)
	tickStyle := bg.Foreground(ctx.Palette.Ticks)
	faceStyle := bg.Foreground(ctx.Palette.Face)

	// 60 marks on the ring: hour marks heavy, minute marks light
	for i := 0; i < 60; i++ {
		angle := HandAngle(float64(i), 60)
		x, y := PolarCell(cx, cy, radius, angle)

		ch := '·'
		style := faceStyle
		if i%5 == 0 {
			ch = '●'
			style = tickStyle
		}
		setCell(screen, ctx, x, y, ch, style)
	}

	if ctx.Settings.ShowNumbers {
		r.renderNumbers(ctx, screen, cx, cy, radius)
	}

	setCell(screen, ctx, cx, cy, '◉', bg.Foreground(ctx.Palette.Center))
}

// renderNumbers places 1-12 just inside the tick ring
func (r *DialRenderer) renderNumbers(ctx Context, screen tcell.Screen, cx, cy int, radius float64) {
	style := tcell.StyleDefault.
		Background(ctx.Palette.Background).
		Foreground(ctx.Palette.Numbers)

	for hour := 1; hour <= 12; hour++ {
		angle := HandAngle(float64(hour), 12)
		x, y := PolarCell(cx, cy, radius-1.5, angle)

		label := strconv.Itoa(hour)
		// Center two-digit labels on the mark
		x -= (len(label) - 1) / 2
		for i, ch := range label {
			setCell(screen, ctx, x+i, y, ch, style)
		}
	}
}

// setCell writes a rune if it falls inside the screen
func setCell(screen tcell.Screen, ctx Context, x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= ctx.Width || y < 0 || y >= ctx.Height {
		return
	}
	screen.SetContent(x, y, ch, nil, style)
}
