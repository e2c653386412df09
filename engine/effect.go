// Package engine drives the background effects: lifecycle state machine,
// per-tick update sequence, input sampling, and frame pacing. The motion
// model advances by tick count, not wall clock, so the host's callback rate
// implicitly sets perceived speed.
package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// FrameContext is the read-only per-tick state handed to effects.
type FrameContext struct {
	Tick  int32
	Speed float64 // live speed multiplier, >= 1

	// Smoothed pointer position, normalized to [0, 1]
	PointerX, PointerY float64
}

// Effect is one animated background variant. Init builds GPU resources and
// may return renderer.ErrContextUnavailable; Step advances the motion model;
// Draw issues the frame's draw calls; Resize regenerates size-dependent
// structures synchronously.
type Effect interface {
	Name() string
	Init() error
	Step(fc FrameContext)
	Draw(fc FrameContext)
	Resize(logicalW, logicalH int, pixelRatio float64)
	Unload()
}

// FrameSource paces the render loop. Next blocks until the next frame slot
// and reports whether the loop should continue.
type FrameSource interface {
	Next() bool
}

// WindowSource paces frames by the raylib presentation callback.
type WindowSource struct{}

// Next reports whether the window is still open.
func (WindowSource) Next() bool {
	return !rl.WindowShouldClose()
}

// TickSource yields a fixed number of synthetic frames. Used by tests and
// bounded headless runs.
type TickSource struct {
	Remaining int
}

// Next consumes one frame slot.
func (s *TickSource) Next() bool {
	if s.Remaining <= 0 {
		return false
	}
	s.Remaining--
	return true
}
