package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warpclock/settings"
)

func TestSystemModeResolvesToDark(t *testing.T) {
	sys := ForSettings(settings.Settings{ColorMode: settings.ColorModeSystem})
	dark := ForSettings(settings.Settings{ColorMode: settings.ColorModeDark})
	if sys != dark {
		t.Error("Expected system mode to resolve to the dark palette")
	}
}

func TestLightAndDarkDiffer(t *testing.T) {
	light := ForSettings(settings.Settings{ColorMode: settings.ColorModeLight})
	dark := ForSettings(settings.Settings{ColorMode: settings.ColorModeDark})
	if light.Background == dark.Background {
		t.Error("Expected light and dark backgrounds to differ")
	}
	if light == dark {
		t.Error("Expected distinct palettes for light and dark modes")
	}
}

func TestPaletteColorsResolved(t *testing.T) {
	for _, mode := range []settings.ColorMode{settings.ColorModeLight, settings.ColorModeDark} {
		p := ForSettings(settings.Settings{ColorMode: mode})
		colors := []tcell.Color{
			p.Background, p.Face, p.Ticks, p.Numbers,
			p.HourHand, p.MinuteHand, p.SecondHand, p.Center,
			p.Digital, p.StatusFG, p.StatusBG, p.DialogFG, p.DialogBG, p.Accent,
		}
		for i, c := range colors {
			if c == tcell.ColorDefault {
				t.Errorf("mode %s: color %d fell back to terminal default", mode, i)
			}
		}
	}
}
