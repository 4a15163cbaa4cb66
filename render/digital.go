package render

import "github.com/gdamore/tcell/v2"

const digitalLayout = "15:04:05"

// DigitalRenderer shows the display time as text under the dial
type DigitalRenderer struct{}

func NewDigitalRenderer() *DigitalRenderer {
	return &DigitalRenderer{}
}

func (r *DigitalRenderer) Render(ctx Context, screen tcell.Screen) {
	if !ctx.Settings.ShowDigitalTime {
		return
	}

	text := ctx.Snapshot.DisplayTime.Format(digitalLayout)
	style := tcell.StyleDefault.
		Background(ctx.Palette.Background).
		Foreground(ctx.Palette.Digital).
		Bold(true)

	x := (ctx.Width - len(text)) / 2
	y := ctx.Height - 3
	for i, ch := range text {
		setCell(screen, ctx, x+i, y, ch, style)
	}
}
