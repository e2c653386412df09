package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// sampleInput polls the window for pointer, scroll, resize and keyboard
// events and folds them into the engine's target state. Runs on the loop
// thread right before Step.
func (e *Engine) sampleInput() {
	if e.disabled {
		return
	}

	// Pointer position, normalized by the logical window size
	mouse := rl.GetMousePosition()
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	if w > 0 && h > 0 {
		e.PointerMoved(float64(mouse.X)/float64(w), float64(mouse.Y)/float64(h))
	}

	// Wheel movement stands in for page scroll velocity
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		e.Scrolled(float64(wheel) * 0.1)
	}

	if rl.IsWindowResized() {
		scale := rl.GetWindowScaleDPI()
		e.Resize(w, h, float64(scale.X))
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		switch e.state {
		case StateRunning:
			e.Stop()
		case StateStopped:
			e.Start()
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		e.panel.Toggle()
	}
}
