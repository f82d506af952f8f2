package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/longbow/assets"
	"github.com/lixenwraith/longbow/audio"
	"github.com/lixenwraith/longbow/bow"
	"github.com/lixenwraith/longbow/config"
	"github.com/lixenwraith/longbow/engine"
	"github.com/lixenwraith/longbow/input"
	"github.com/lixenwraith/longbow/journal"
	"github.com/lixenwraith/longbow/logging"
	"github.com/lixenwraith/longbow/parameter"
	"github.com/lixenwraith/longbow/render"
	"github.com/lixenwraith/longbow/scene"
	"github.com/lixenwraith/longbow/telemetry"
	"github.com/lixenwraith/longbow/vmath"
)

var (
	configFlag  = flag.String("config", "", "Config file (yaml, toml or json)")
	variantFlag = flag.String("variant", "", "Demo variant: night, meadow (overrides config)")
	seedFlag    = flag.Uint64("seed", 0, "Scene seed, 0 keeps the configured seed")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "longbow: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag, *variantFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Scene.Seed = *seedFlag
	}

	log, logCloser, err := logging.New(cfg.LogConfig())
	if err != nil {
		return err
	}
	defer logCloser.Close()

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Every asset resolves before the simulation can exist
	bundle, err := assets.Load(ctx, cfg.AssetSources())
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}
	log.Info().
		Str("variant", cfg.Variant).
		Str("rig", bundle.Joints.Name()).
		Int("trees", len(bundle.World.Trees)).
		Msg("assets loaded")

	player := audio.NewPlayer(cfg.AudioConfig(), bundle.Shot, log)
	if err := player.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer player.Cleanup()
	player.SetMuted(*muteFlag)

	// Pool size for the gauge, published by the tick goroutine
	var inFlight atomic.Int64
	recorder, err := newRecorder(cfg.Telemetry.Enabled, func() int { return int(inFlight.Load()) })
	if err != nil {
		return err
	}
	observers := engine.Observers{recorder}

	if cfg.Journal.Enabled {
		j, err := journal.Open(cfg.Journal.Path, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := j.Close(); err != nil {
				log.Error().Err(err).Msg("journal close failed")
			}
			log.Info().Int64("written", j.Written()).Int64("dropped", j.Dropped()).Msg("journal closed")
		}()
		observers = append(observers, j)
	}

	camera := scene.NewCamera(vmath.Vec3F{Y: parameter.CameraEyeHeight, Z: -parameter.CameraStartDistance})
	sim, err := engine.New(bundle.Joints, engine.Collaborators{
		Rig:      camera,
		Aim:      camera,
		Socket:   camera,
		Skeleton: bow.NewMemorySkeleton(bundle.Joints.Count()),
		Audio:    player,
		Ambient:  bundle.World,
		Observer: observers,
	}, cfg.Settings(), log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nLONGBOW CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.RenderOptions())
	tracker := input.NewTracker(keys, cfg.Input.InitialHoldTimeout, cfg.Input.HoldTimeout)
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta)

	events := make(chan tcell.Event, parameter.EventChannelSize)
	go pollEvents(screen, events)

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	var report engine.Report
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				renderer.Resize()
			}
			tracker.HandleEvent(ev, time.Now())

		case <-frameTicker.C:
			if quit := handleEdges(tracker.DrainEdges(), sim, clock, tracker, log); quit {
				return nil
			}

			dt := clock.Tick()
			if !clock.IsPaused() {
				report = sim.Tick(tracker.Intent(time.Now()), dt)
				inFlight.Store(int64(sim.Pool().Len()))
			}

			renderer.RenderFrame(render.Frame{
				Report: report,
				Pool:   sim.Pool(),
				Camera: camera,
				World:  bundle.World,
				Stats:  recorder.Stats(),
				Paused: clock.IsPaused(),
			})
		}
	}
}

// handleEdges applies discrete actions between ticks; reports whether to quit
func handleEdges(edges []input.Action, sim *engine.Simulation, clock *engine.FrameClock, tracker *input.Tracker, log zerolog.Logger) bool {
	for _, a := range edges {
		switch a {
		case input.ActionQuit:
			return true
		case input.ActionCancel:
			sim.Cancel()
		case input.ActionPause:
			paused := clock.Toggle()
			log.Debug().Bool("paused", paused).Msg("pause toggled")
		case input.ActionFocusLost:
			// Held keys and buttons are unknowable while unfocused
			clock.Pause()
			tracker.Reset()
			log.Debug().Msg("focus lost")
		case input.ActionFocusGained:
			clock.Resume()
			log.Debug().Msg("focus gained")
		}
	}
	return false
}

// newRecorder returns a recorder on the global meter, or on a no-op meter when
// telemetry is off; the HUD reads its totals either way
func newRecorder(enabled bool, inFlight func() int) (*telemetry.Recorder, error) {
	if enabled {
		return telemetry.New(inFlight)
	}
	return telemetry.NewWithMeter(noop.NewMeterProvider().Meter("longbow"), nil)
}

// pollEvents forwards terminal events until the screen is finalized
// Input polling uses a raw goroutine as it interacts directly with the terminal
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
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
}
