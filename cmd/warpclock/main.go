package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/warpclock/audio"
	"github.com/lixenwraith/warpclock/render"
	"github.com/lixenwraith/warpclock/settings"
	"github.com/lixenwraith/warpclock/theme"
	"github.com/lixenwraith/warpclock/ui"
	"github.com/lixenwraith/warpclock/vclock"
)

var (
	colorFlag  = flag.String("color", "auto", "Color depth: auto, truecolor, 256")
	configFlag = flag.String("config", settings.DefaultPath(), "Settings file path")
	rateFlag   = flag.Float64("rate", 0, "Initial rate override (0 = use stored setting)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under ./logs")
)

// applyColorMode overrides tcell's color depth detection before the
// screen is created. tcell reads COLORTERM to enable RGB output and
// honors TCELL_TRUECOLOR=disable to force the 256-color path; "auto"
// leaves detection to the terminal database.
func applyColorMode(mode string) {
	switch mode {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
		os.Unsetenv("TCELL_TRUECOLOR")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}

func main() {
	flag.Parse()
	applyColorMode(*colorFlag)

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	store := settings.NewStore(*configFlag)
	cfg := store.Load()
	if *rateFlag > 0 {
		cfg.Rate = settings.ClampRate(*rateFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack,
	// otherwise the trace lands on a raw alternate screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nWARPCLOCK CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound := audio.NewEngine()
	if err := sound.Start(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without sound)", err)
	}
	defer sound.Stop()

	engine := vclock.New(cfg.Rate)
	defer engine.Destroy()

	width, height := screen.Size()
	orchestrator := render.NewOrchestrator(screen, width, height)
	overlay := &render.OverlayState{}

	orchestrator.Register(render.NewDialRenderer(), render.PriorityDial)
	orchestrator.Register(render.NewHandsRenderer(), render.PriorityHands)
	orchestrator.Register(render.NewDigitalRenderer(), render.PriorityDigital)
	orchestrator.Register(render.NewStatusBarRenderer(), render.PriorityUI)
	orchestrator.Register(render.NewOverlayRenderer(overlay), render.PriorityOverlay)

	handler := ui.NewHandler(engine, store, &cfg, overlay, sound)

	// The engine publishes on its own cadence; forward snapshots into
	// the select loop, dropping frames the renderer hasn't consumed
	frames := make(chan vclock.Snapshot, 1)
	subID := engine.View().Subscribe(func(s vclock.Snapshot) {
		select {
		case frames <- s:
		default:
		}
	})
	defer engine.View().Unsubscribe(subID)

	events := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	drawFrame := func(snap vclock.Snapshot) {
		orchestrator.RenderFrame(render.Context{
			Snapshot: snap,
			Settings: cfg,
			Palette:  theme.ForSettings(cfg),
			Muted:    sound.Muted(),
		})
	}
	drawFrame(engine.Snapshot())

	lastTickSecond := -1
	for {
		select {
		case ev := <-events:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				orchestrator.Resize(w, h)
			}
			if !handler.HandleEvent(ev) {
				store.Save(cfg)
				return
			}
			// Input takes effect visibly even while stopped
			drawFrame(engine.Snapshot())

		case snap := <-frames:
			if snap.Running {
				if sec := snap.DisplayTime.Second(); sec != lastTickSecond {
					lastTickSecond = sec
					if snap.DisplayTime.Minute() == 0 && sec == 0 {
						sound.PlayChime()
					} else {
						sound.PlayTick()
					}
				}
			}
			drawFrame(snap)
		}
	}
}
