package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warpclock/audio"
	"github.com/lixenwraith/warpclock/constants"
	"github.com/lixenwraith/warpclock/render"
	"github.com/lixenwraith/warpclock/settings"
	"github.com/lixenwraith/warpclock/vclock"
)

// Handler translates terminal key events into engine and settings
// mutations. It owns the mode machine (clock view vs settings dialog)
// and the dialog state.
type Handler struct {
	engine  *vclock.Engine
	store   *settings.Store
	cfg     *settings.Settings
	overlay *render.OverlayState
	sound   *audio.Engine
	mode    Mode
}

// NewHandler wires the input handler to its collaborators. cfg is the
// live settings value shared with the render context owner.
func NewHandler(engine *vclock.Engine, store *settings.Store, cfg *settings.Settings, overlay *render.OverlayState, sound *audio.Engine) *Handler {
	return &Handler{
		engine:  engine,
		store:   store,
		cfg:     cfg,
		overlay: overlay,
		sound:   sound,
		mode:    ModeClock,
	}
}

// Mode returns the surface currently owning input
func (h *Handler) Mode() Mode {
	return h.mode
}

// HandleEvent processes one terminal event. Returns false when the
// application should exit.
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	if key.Key() == tcell.KeyCtrlC {
		return false
	}

	if h.mode == ModeSettings {
		return h.handleSettingsKey(key)
	}
	return h.handleClockKey(key)
}

func (h *Handler) handleClockKey(key *tcell.EventKey) bool {
	switch key.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch key.Rune() {
	case 'q':
		return false
	case ' ':
		if h.engine.Snapshot().Running {
			h.engine.Stop()
		} else {
			h.engine.Start()
		}
	case '+', '=':
		h.nudgeRate(constants.RateStep)
	case '-', '_':
		h.nudgeRate(-constants.RateStep)
	case 'r':
		h.engine.Reset()
	case 'm':
		h.sound.ToggleMute()
	case 's':
		h.mode = ModeSettings
		h.overlay.Visible = true
		h.overlay.Selected = render.FieldRate
	}
	return true
}

func (h *Handler) handleSettingsKey(key *tcell.EventKey) bool {
	switch key.Key() {
	case tcell.KeyEscape:
		h.closeSettings()
		return true
	case tcell.KeyDown:
		h.overlay.MoveDown()
		return true
	case tcell.KeyUp:
		h.overlay.MoveUp()
		return true
	case tcell.KeyEnter:
		h.activateField(1)
		return true
	case tcell.KeyLeft:
		h.activateField(-1)
		return true
	case tcell.KeyRight:
		h.activateField(1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch key.Rune() {
	case 'q', 's':
		h.closeSettings()
	case 'j':
		h.overlay.MoveDown()
	case 'k':
		h.overlay.MoveUp()
	case ' ':
		h.activateField(1)
	case 'h':
		h.activateField(-1)
	case 'l':
		h.activateField(1)
	case '+', '=':
		if h.overlay.Selected == render.FieldRate {
			h.nudgeRate(constants.RateStep)
		}
	case '-', '_':
		if h.overlay.Selected == render.FieldRate {
			h.nudgeRate(-constants.RateStep)
		}
	}
	return true
}

// activateField applies the selected dialog row: checkboxes toggle,
// enumerations cycle in the given direction, the rate nudges
func (h *Handler) activateField(dir int) {
	switch h.overlay.Selected {
	case render.FieldRate:
		h.nudgeRate(float64(dir) * constants.RateStep)
	case render.FieldSecondHand:
		h.cfg.ShowSecondHand = !h.cfg.ShowSecondHand
	case render.FieldNumbers:
		h.cfg.ShowNumbers = !h.cfg.ShowNumbers
	case render.FieldDigital:
		h.cfg.ShowDigitalTime = !h.cfg.ShowDigitalTime
	case render.FieldColorMode:
		h.cfg.ColorMode = cycleColorMode(h.cfg.ColorMode, dir)
	}
}

func (h *Handler) closeSettings() {
	h.overlay.Visible = false
	h.mode = ModeClock
	h.store.Save(*h.cfg)
}

// nudgeRate adjusts the live rate by delta, clamped to the supported
// range, and re-anchors the engine so the change is continuous
func (h *Handler) nudgeRate(delta float64) {
	r := settings.ClampRate(h.cfg.Rate + delta)
	r = math.Round(r*100) / 100
	h.cfg.Rate = r
	h.engine.SetRate(r)
	h.store.Save(*h.cfg)
}

var colorModeCycle = []settings.ColorMode{
	settings.ColorModeSystem,
	settings.ColorModeLight,
	settings.ColorModeDark,
}

func cycleColorMode(mode settings.ColorMode, dir int) settings.ColorMode {
	n := len(colorModeCycle)
	for i, m := range colorModeCycle {
		if m == mode {
			return colorModeCycle[(i+dir+n)%n]
		}
	}
	return settings.ColorModeSystem
}
