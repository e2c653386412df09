package engine

import (
	"errors"
	"testing"

	"github.com/spillwave/backdrop/config"
)

var errTest = errors.New("synthetic init failure")

// recordingEffect counts lifecycle calls without touching any GPU state.
type recordingEffect struct {
	inits   int
	steps   int
	draws   int
	resizes int
	unloads int
	lastW   int
	lastH   int
	initErr error
}

func (e *recordingEffect) Name() string          { return "recording" }
func (e *recordingEffect) Init() error           { e.inits++; return e.initErr }
func (e *recordingEffect) Step(fc FrameContext)  { e.steps++ }
func (e *recordingEffect) Draw(fc FrameContext)  { e.draws++ }
func (e *recordingEffect) Unload()               { e.unloads++ }
func (e *recordingEffect) Resize(w, h int, pixelRatio float64) {
	e.resizes++
	e.lastW = w
	e.lastH = h
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func TestEngineLifecycle(t *testing.T) {
	cfg := testConfig(t)
	fx := &recordingEffect{}
	e := New(fx, cfg, Options{Headless: true})

	if e.State() != StateRunning {
		t.Fatalf("state after New = %v, want running", e.State())
	}
	if fx.inits != 1 {
		t.Errorf("init calls = %d, want 1", fx.inits)
	}

	e.Step()
	e.Step()
	if e.Tick() != 2 {
		t.Errorf("tick = %d, want 2", e.Tick())
	}
	if fx.steps != 2 {
		t.Errorf("effect steps = %d, want 2", fx.steps)
	}

	// Stopped engines must not tick.
	e.Stop()
	if e.State() != StateStopped {
		t.Fatalf("state after Stop = %v, want stopped", e.State())
	}
	e.Step()
	if e.Tick() != 2 {
		t.Errorf("tick advanced while stopped: %d", e.Tick())
	}

	e.Start()
	e.Step()
	if e.Tick() != 3 {
		t.Errorf("tick = %d after restart, want 3", e.Tick())
	}

	e.Destroy()
	if e.State() != StateDestroyed {
		t.Fatalf("state after Destroy = %v, want destroyed", e.State())
	}
	if fx.unloads != 1 {
		t.Errorf("unload calls = %d, want 1", fx.unloads)
	}

	// Destroyed is terminal.
	e.Start()
	e.Step()
	if e.State() != StateDestroyed || e.Tick() != 3 {
		t.Errorf("destroyed engine revived: state=%v tick=%d", e.State(), e.Tick())
	}

	e.Destroy()
	if fx.unloads != 1 {
		t.Errorf("double Destroy unloaded twice: %d", fx.unloads)
	}
}

func TestEngineInitFailureDisables(t *testing.T) {
	cfg := testConfig(t)
	fx := &recordingEffect{initErr: errTest}
	e := New(fx, cfg, Options{Headless: true})

	if e.State() != StateUninitialized {
		t.Fatalf("state after failed init = %v, want uninitialized", e.State())
	}

	// Every operation on a disabled engine is a silent no-op.
	e.Step()
	e.Draw()
	if e.Tick() != 0 || fx.steps != 0 || fx.draws != 0 {
		t.Errorf("disabled engine did work: tick=%d steps=%d draws=%d", e.Tick(), fx.steps, fx.draws)
	}
	e.Destroy()
	if fx.unloads != 0 {
		t.Errorf("disabled engine unloaded an effect it never initialized")
	}
}

func TestEngineResize(t *testing.T) {
	cfg := testConfig(t)
	fx := &recordingEffect{}
	e := New(fx, cfg, Options{Headless: true})

	// New performs the initial resize.
	if fx.resizes != 1 {
		t.Fatalf("resizes after New = %d, want 1", fx.resizes)
	}

	e.Resize(800, 600, 1)
	if fx.resizes != 2 || fx.lastW != 800 || fx.lastH != 600 {
		t.Errorf("resize not forwarded: resizes=%d w=%d h=%d", fx.resizes, fx.lastW, fx.lastH)
	}

	// Same dimensions must be a no-op.
	e.Resize(800, 600, 1)
	if fx.resizes != 2 {
		t.Errorf("unchanged resize forwarded: resizes=%d", fx.resizes)
	}

	// Pixel ratio change alone triggers regeneration.
	e.Resize(800, 600, 2)
	if fx.resizes != 3 {
		t.Errorf("pixel ratio change not forwarded: resizes=%d", fx.resizes)
	}
}

func TestEngineScrollRaisesSpeed(t *testing.T) {
	cfg := testConfig(t)
	e := New(&recordingEffect{}, cfg, Options{Headless: true})

	e.Step()
	if e.Speed() != 1 {
		t.Fatalf("idle speed = %v, want 1", e.Speed())
	}

	e.Scrolled(2.0)
	e.Step()
	if e.Speed() <= 1 {
		t.Errorf("speed after scroll = %v, want > 1", e.Speed())
	}
	if e.Speed() > cfg.Motion.SpeedCap+1 {
		t.Errorf("speed = %v exceeds cap %v", e.Speed(), cfg.Motion.SpeedCap+1)
	}

	// Idle ticks decay the multiplier back toward 1.
	peak := e.Speed()
	for i := 0; i < 500; i++ {
		e.Step()
	}
	if e.Speed() >= peak {
		t.Errorf("speed did not decay: peak=%v now=%v", peak, e.Speed())
	}
	if e.Speed() < 1 {
		t.Errorf("speed decayed below 1: %v", e.Speed())
	}
}

func TestEngineRunTickSource(t *testing.T) {
	cfg := testConfig(t)
	fx := &recordingEffect{}
	e := New(fx, cfg, Options{Headless: true, Seed: 7})

	e.Run(&TickSource{Remaining: 50})

	if e.Tick() != 50 {
		t.Errorf("tick after 50-frame run = %d, want 50", e.Tick())
	}
	// Headless runs never draw.
	if fx.draws != 0 {
		t.Errorf("headless run drew %d frames", fx.draws)
	}
}

func TestEffectsHeadless(t *testing.T) {
	cfg := testConfig(t)

	effects := []Effect{
		NewTopologyEffect(cfg, 42, true),
		NewFieldEffect(cfg, 42, true),
		NewTorusEffect(cfg, 42, true),
	}

	for _, fx := range effects {
		e := New(fx, cfg, Options{Headless: true, Seed: 42})
		if e.State() != StateRunning {
			t.Fatalf("%s: state = %v, want running", fx.Name(), e.State())
		}
		e.Run(&TickSource{Remaining: 120})
		if e.Tick() != 120 {
			t.Errorf("%s: tick = %d, want 120", fx.Name(), e.Tick())
		}
		e.Destroy()
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateUninitialized: "uninitialized",
		StateRunning:       "running",
		StateStopped:       "stopped",
		StateDestroyed:     "destroyed",
		State(99):          "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
