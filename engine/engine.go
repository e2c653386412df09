package engine

import (
	"errors"
	"log/slog"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/config"
	"github.com/spillwave/backdrop/renderer"
	"github.com/spillwave/backdrop/systems"
	"github.com/spillwave/backdrop/telemetry"
	"github.com/spillwave/backdrop/ui"
)

// State is the engine lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Options configure an engine instance.
type Options struct {
	Seed      int64
	Headless  bool
	LogStats  bool
	OutputDir string
}

// Engine owns one effect and runs its render loop. All state mutation and
// drawing happen on the single loop thread; input events only write scalar
// target values that the next tick reads, so one-tick staleness is fine.
type Engine struct {
	state    State
	tick     int32
	effect   Effect
	disabled bool
	headless bool
	paused   bool

	speed   *systems.SpeedTracker
	pointer systems.SmoothedPoint

	// Per-tick input accumulators, reset after each Step
	scrollDelta  float64
	pointerDelta float64
	havePointer  bool
	lastNX       float64
	lastNY       float64

	logicalW, logicalH int
	pixelRatio         float64

	frame FrameContext

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	panel *ui.Panel
}

// New builds an engine around an effect and initializes it. Initialization
// failures (missing context, shader compile/link errors) are permanent:
// they are logged, the engine stays uninitialized, and every subsequent
// call is a no-op. The hosting program is never interrupted.
func New(effect Effect, cfg *config.Config, opts Options) *Engine {
	e := &Engine{
		state:    StateUninitialized,
		effect:   effect,
		headless: opts.Headless,
		logStats: opts.LogStats,
		speed: systems.NewSpeedTracker(
			cfg.Motion.SpeedRampRate,
			cfg.Motion.SpeedDecayRate,
			cfg.Motion.SpeedGain,
			cfg.Motion.SpeedCap,
		),
		pointer:    systems.NewSmoothedPoint(0.5, 0.5, cfg.Motion.PointerSmoothRate),
		logicalW:   cfg.Screen.Width,
		logicalH:   cfg.Screen.Height,
		pixelRatio: 1,
		collector:  telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		panel:      ui.NewPanel(),
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry_output_failed", "error", err)
	} else {
		e.output = output
		if err := e.output.WriteConfig(cfg); err != nil {
			slog.Warn("config_snapshot_failed", "error", err)
		}
	}

	effect.Resize(e.logicalW, e.logicalH, e.pixelRatio)
	if err := effect.Init(); err != nil {
		if errors.Is(err, renderer.ErrContextUnavailable) {
			slog.Warn("render_context_unavailable", "effect", effect.Name())
		} else {
			slog.Warn("effect_init_failed", "effect", effect.Name(), "error", err)
		}
		e.disabled = true
		return e
	}

	e.state = StateRunning
	return e
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Tick returns the current tick counter.
func (e *Engine) Tick() int32 {
	return e.tick
}

// Speed returns the live speed multiplier.
func (e *Engine) Speed() float64 {
	return e.speed.Value()
}

// Start resumes a stopped engine.
func (e *Engine) Start() {
	if e.state == StateStopped {
		e.state = StateRunning
	}
}

// Stop halts ticking. The pending frame callback is effectively cancelled:
// Step becomes a no-op until Start.
func (e *Engine) Stop() {
	if e.state == StateRunning {
		e.state = StateStopped
	}
}

// Destroy tears down GPU resources and closes outputs. Terminal: no
// further transitions.
func (e *Engine) Destroy() {
	if e.state == StateDestroyed {
		return
	}
	if !e.disabled {
		e.effect.Unload()
	}
	if err := e.output.Close(); err != nil {
		slog.Warn("telemetry_close_failed", "error", err)
	}
	e.state = StateDestroyed
}

// PointerMoved records a pointer position in normalized coordinates. Called
// from event sampling; only target state changes here.
func (e *Engine) PointerMoved(nx, ny float64) {
	if e.havePointer {
		e.pointerDelta += math.Hypot(nx-e.lastNX, ny-e.lastNY)
	}
	e.lastNX, e.lastNY = nx, ny
	e.havePointer = true
	e.pointer.SetTarget(nx, ny)
}

// Scrolled records a scroll delta in normalized units.
func (e *Engine) Scrolled(delta float64) {
	e.scrollDelta += delta
}

// Resize updates dimensions and regenerates size-dependent structures.
// Runs on the loop thread, never concurrently with Step. Unchanged
// dimensions are a no-op.
func (e *Engine) Resize(logicalW, logicalH int, pixelRatio float64) {
	if e.state == StateDestroyed {
		return
	}
	if logicalW == e.logicalW && logicalH == e.logicalH && pixelRatio == e.pixelRatio {
		return
	}
	e.logicalW = logicalW
	e.logicalH = logicalH
	e.pixelRatio = pixelRatio
	e.effect.Resize(logicalW, logicalH, pixelRatio)
}

// Step advances one tick: smooth pointer, recompute the speed multiplier,
// update the effect's motion model, collect telemetry. Draw calls happen
// separately in Draw so headless runs skip them entirely.
func (e *Engine) Step() {
	if e.state != StateRunning || e.disabled || e.paused {
		return
	}
	start := time.Now()

	e.tick++

	e.pointer.Step()

	e.speed.Observe(e.scrollDelta, e.pointerDelta)
	e.scrollDelta = 0
	e.pointerDelta = 0
	e.speed.Step()

	e.frame = FrameContext{
		Tick:     e.tick,
		Speed:    e.speed.Value(),
		PointerX: e.pointer.X.Value,
		PointerY: e.pointer.Y.Value,
	}
	e.effect.Step(e.frame)

	e.collector.Record(time.Since(start))
	if e.collector.Ready() {
		stats := e.collector.Flush(e.tick)
		if e.logStats {
			slog.Info("frame_window",
				"window_end", stats.WindowEnd,
				"mean_ms", stats.MeanMS,
				"p95_ms", stats.P95MS,
				"ticks_per_sec", stats.TicksPerSec,
			)
		}
		if err := e.output.WriteFrames(stats); err != nil {
			slog.Warn("frame_stats_write_failed", "error", err)
		}
	}
}

// Draw renders the current frame and the control overlay.
func (e *Engine) Draw() {
	if e.disabled || e.headless || e.state == StateDestroyed {
		return
	}

	rl.BeginDrawing()
	e.effect.Draw(e.frame)
	e.drawOverlay()
	rl.EndDrawing()
}

// drawOverlay renders the raygui panel and applies its edits.
func (e *Engine) drawOverlay() {
	if !e.panel.Visible() {
		return
	}

	e.panel.Begin(e.effect.Name())
	e.paused = e.panel.Checkbox("Paused", e.paused)
	if tunable, ok := e.effect.(Tunable); ok {
		tunable.DrawControls(e.panel)
	}
	e.panel.End()
}

// Tunable is implemented by effects exposing overlay controls.
type Tunable interface {
	DrawControls(p *ui.Panel)
}

// Frame runs one full windowed frame: sample input, step, draw.
func (e *Engine) Frame() {
	if !e.headless {
		e.sampleInput()
	}
	e.Step()
	e.Draw()
}

// Run drives the loop from a frame source until it ends or the engine is
// destroyed.
func (e *Engine) Run(src FrameSource) {
	for src.Next() {
		if e.state == StateDestroyed {
			return
		}
		e.Frame()
	}
}
