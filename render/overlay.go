package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warpclock/settings"
)

// OverlayField identifies one row of the settings dialog
type OverlayField int

const (
	FieldRate OverlayField = iota
	FieldSecondHand
	FieldNumbers
	FieldDigital
	FieldColorMode
	fieldCount
)

// OverlayState is the settings dialog state, owned by the input
// handler and read by the overlay renderer
type OverlayState struct {
	Visible  bool
	Selected OverlayField
}

// MoveDown advances the selection, wrapping at the bottom
func (s *OverlayState) MoveDown() {
	s.Selected = (s.Selected + 1) % fieldCount
}

// MoveUp retreats the selection, wrapping at the top
func (s *OverlayState) MoveUp() {
	s.Selected = (s.Selected + fieldCount - 1) % fieldCount
}

const (
	dialogWidth  = 44
	dialogHeight = 11
)

// OverlayRenderer draws the modal settings dialog over the clock
type OverlayRenderer struct {
	state *OverlayState
}

func NewOverlayRenderer(state *OverlayState) *OverlayRenderer {
	return &OverlayRenderer{state: state}
}

func (r *OverlayRenderer) IsVisible() bool {
	return r.state.Visible
}

func (r *OverlayRenderer) Render(ctx Context, screen tcell.Screen) {
	w, h := dialogWidth, dialogHeight
	if w > ctx.Width-2 {
		w = ctx.Width - 2
	}
	if h > ctx.Height-2 {
		h = ctx.Height - 2
	}
	x0 := (ctx.Width - w) / 2
	y0 := (ctx.Height - h) / 2

	base := tcell.StyleDefault.
		Background(ctx.Palette.DialogBG).
		Foreground(ctx.Palette.DialogFG)
	accent := base.Foreground(ctx.Palette.Accent)

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			setCell(screen, ctx, x, y, ' ', base)
		}
	}
	drawBorder(screen, ctx, x0, y0, w, h, base)
	drawText(screen, ctx, x0+(w-10)/2, y0, " Settings ", accent.Bold(true))

	rows := []struct {
		field OverlayField
		label string
		value string
	}{
		{FieldRate, "Rate", fmt.Sprintf("%4.2fx", ctx.Settings.Rate)},
		{FieldSecondHand, "Second hand", checkbox(ctx.Settings.ShowSecondHand)},
		{FieldNumbers, "Numbers", checkbox(ctx.Settings.ShowNumbers)},
		{FieldDigital, "Digital time", checkbox(ctx.Settings.ShowDigitalTime)},
		{FieldColorMode, "Color mode", cycleValue(ctx.Settings.ColorMode)},
	}

	for i, row := range rows {
		y := y0 + 2 + i
		style := base
		marker := "  "
		if r.state.Selected == row.field {
			style = accent
			marker = "> "
		}
		drawText(screen, ctx, x0+2, y, marker+row.label, style)
		drawText(screen, ctx, x0+w-len(row.value)-3, y, row.value, style)
	}

	hint := "j/k move  space toggle  +/- adjust  esc close"
	if len(hint) > w-4 {
		hint = "space toggle  esc close"
	}
	drawText(screen, ctx, x0+(w-len(hint))/2, y0+h-2, hint, base.Dim(true))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func cycleValue(mode settings.ColorMode) string {
	return "< " + string(mode) + " >"
}

func drawBorder(screen tcell.Screen, ctx Context, x0, y0, w, h int, style tcell.Style) {
	for x := x0; x < x0+w; x++ {
		setCell(screen, ctx, x, y0, '─', style)
		setCell(screen, ctx, x, y0+h-1, '─', style)
	}
	for y := y0; y < y0+h; y++ {
		setCell(screen, ctx, x0, y, '│', style)
		setCell(screen, ctx, x0+w-1, y, '│', style)
	}
	setCell(screen, ctx, x0, y0, '┌', style)
	setCell(screen, ctx, x0+w-1, y0, '┐', style)
	setCell(screen, ctx, x0, y0+h-1, '└', style)
	setCell(screen, ctx, x0+w-1, y0+h-1, '┘', style)
}
