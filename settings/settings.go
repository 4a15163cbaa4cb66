package settings

import (
	"math"
	"strconv"

	"github.com/lixenwraith/warpclock/constants"
)

// ColorMode selects the palette variant
type ColorMode string

const (
	ColorModeSystem ColorMode = "system"
	ColorModeLight  ColorMode = "light"
	ColorModeDark   ColorMode = "dark"
)

// ThemeClassic is the only shipped theme
const ThemeClassic = "classic"

// Settings is the persisted user preference set
type Settings struct {
	Rate            float64   `yaml:"rate"`
	ShowSecondHand  bool      `yaml:"show_second_hand"`
	ShowNumbers     bool      `yaml:"show_numbers"`
	ShowDigitalTime bool      `yaml:"show_digital_time"`
	Theme           string    `yaml:"theme"`
	ColorMode       ColorMode `yaml:"color_mode"`
}

// Default returns the settings used when nothing valid is stored
func Default() Settings {
	return Settings{
		Rate:            constants.RateDefault,
		ShowSecondHand:  true,
		ShowNumbers:     true,
		ShowDigitalTime: false,
		Theme:           ThemeClassic,
		ColorMode:       ColorModeSystem,
	}
}

// ClampRate forces r into the supported range. Non-finite values fall
// back to the default rate.
func ClampRate(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return constants.RateDefault
	}
	if r < constants.RateMin {
		return constants.RateMin
	}
	if r > constants.RateMax {
		return constants.RateMax
	}
	return r
}

// Normalize builds a valid Settings value from untyped decoded data.
// Missing fields are defaulted, the rate is coerced and clamped,
// mistyped flags are defaulted, unknown theme/color-mode values are
// defaulted, and extra fields are dropped. Normalize never fails.
func Normalize(raw map[string]any) Settings {
	s := Default()
	if raw == nil {
		return s
	}

	if v, ok := raw["rate"]; ok {
		s.Rate = ClampRate(coerceRate(v))
	}
	s.ShowSecondHand = coerceBool(raw, "show_second_hand", s.ShowSecondHand)
	s.ShowNumbers = coerceBool(raw, "show_numbers", s.ShowNumbers)
	s.ShowDigitalTime = coerceBool(raw, "show_digital_time", s.ShowDigitalTime)

	if v, ok := raw["theme"].(string); ok && v == ThemeClassic {
		s.Theme = v
	}
	if v, ok := raw["color_mode"].(string); ok {
		switch mode := ColorMode(v); mode {
		case ColorModeSystem, ColorModeLight, ColorModeDark:
			s.ColorMode = mode
		}
	}
	return s
}

// coerceRate accepts the numeric representations a YAML decode can
// produce, plus string-typed numbers. Anything unparseable yields the
// default rate; range clamping happens in the caller.
func coerceRate(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return constants.RateDefault
		}
		return f
	default:
		return constants.RateDefault
	}
}

func coerceBool(raw map[string]any, key string, fallback bool) bool {
	if b, ok := raw[key].(bool); ok {
		return b
	}
	return fallback
}
