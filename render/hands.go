package render

import "github.com/gdamore/tcell/v2"

// HandsRenderer draws the hour, minute and optional second hand from
// the snapshot's display time. Angles carry sub-unit fractions so the
// hands sweep smoothly between marks.
type HandsRenderer struct{}

func NewHandsRenderer() *HandsRenderer {
	return &HandsRenderer{}
}

func (r *HandsRenderer) Render(ctx Context, screen tcell.Screen) {
	cx, cy, radius := ctx.Dial()
	t := ctx.Snapshot.DisplayTime
	h, m, s := HandFractions(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
	bg := tcell.StyleDefault.Background(ctx.Palette.Background)

	drawHand(screen, ctx, cx, cy, radius*0.5, HandAngle(h, 12), '█', bg.Foreground(ctx.Palette.HourHand))
	drawHand(screen, ctx, cx, cy, radius*0.8, HandAngle(m, 60), '▒', bg.Foreground(ctx.Palette.MinuteHand))
	if ctx.Settings.ShowSecondHand {
		drawHand(screen, ctx, cx, cy, radius*0.9, HandAngle(s, 60), '·', bg.Foreground(ctx.Palette.SecondHand))
	}
}

// drawHand samples the hand line from just outside the center to its
// tip, one cell per half row of length
func drawHand(screen tcell.Screen, ctx Context, cx, cy int, length, angleDeg float64, ch rune, style tcell.Style) {
	steps := int(length * 2)
	if steps < 2 {
		steps = 2
	}
	for i := 1; i <= steps; i++ {
		r := length * float64(i) / float64(steps)
		x, y := PolarCell(cx, cy, r, angleDeg)
		setCell(screen, ctx, x, y, ch, style)
	}
}
