package theme

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/warpclock/settings"
)

// Palette holds the resolved colors for one color mode
type Palette struct {
	Background tcell.Color
	Face       tcell.Color
	Ticks      tcell.Color
	Numbers    tcell.Color
	HourHand   tcell.Color
	MinuteHand tcell.Color
	SecondHand tcell.Color
	Center     tcell.Color
	Digital    tcell.Color
	StatusFG   tcell.Color
	StatusBG   tcell.Color
	DialogFG   tcell.Color
	DialogBG   tcell.Color
	Accent     tcell.Color
}

// Classic base hues, shared by both variants. Light mode derives its
// shades by blending toward the paper background in Lab space so hue
// relationships survive the inversion.
const (
	classicInk     = "#1a1a2e"
	classicPaper   = "#f4f1e8"
	classicBrass   = "#b8860b"
	classicSteel   = "#708090"
	classicCrimson = "#b22222"
)

// ForSettings resolves the palette for the stored theme and color
// mode. System mode maps to dark: a terminal cannot report the host
// appearance, and dark matches the default background of nearly every
// terminal.
func ForSettings(s settings.Settings) Palette {
	switch s.ColorMode {
	case settings.ColorModeLight:
		return classicLight()
	default:
		return classicDark()
	}
}

func classicDark() Palette {
	return Palette{
		Background: hex(classicInk),
		Face:       blend(classicSteel, classicInk, 0.35),
		Ticks:      hex(classicSteel),
		Numbers:    hex(classicPaper),
		HourHand:   hex(classicBrass),
		MinuteHand: blend(classicBrass, classicPaper, 0.45),
		SecondHand: hex(classicCrimson),
		Center:     hex(classicBrass),
		Digital:    hex(classicPaper),
		StatusFG:   hex(classicInk),
		StatusBG:   hex(classicSteel),
		DialogFG:   hex(classicPaper),
		DialogBG:   blend(classicInk, classicSteel, 0.25),
		Accent:     hex(classicBrass),
	}
}

func classicLight() Palette {
	return Palette{
		Background: hex(classicPaper),
		Face:       blend(classicSteel, classicPaper, 0.45),
		Ticks:      blend(classicSteel, classicInk, 0.3),
		Numbers:    hex(classicInk),
		HourHand:   blend(classicBrass, classicInk, 0.25),
		MinuteHand: hex(classicSteel),
		SecondHand: hex(classicCrimson),
		Center:     blend(classicBrass, classicInk, 0.25),
		Digital:    hex(classicInk),
		StatusFG:   hex(classicPaper),
		StatusBG:   blend(classicSteel, classicInk, 0.3),
		DialogFG:   hex(classicInk),
		DialogBG:   blend(classicPaper, classicSteel, 0.2),
		Accent:     blend(classicBrass, classicInk, 0.25),
	}
}

func hex(s string) tcell.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blend mixes two hex colors in Lab space at the given fraction of the
// second color
func blend(a, b string, t float64) tcell.Color {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return tcell.ColorDefault
	}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
