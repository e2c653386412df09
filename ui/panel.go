// Package ui renders the raygui control overlay.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layout constants for the overlay panel.
const (
	panelX      = 12
	panelY      = 12
	panelWidth  = 260
	rowHeight   = 26
	rowGap      = 8
	labelHeight = 16
	padding     = 10
)

// Panel is the toggleable control overlay. Widgets are laid out top to
// bottom between Begin and End; callers read back edited values from the
// widget return values each frame (immediate mode, like the rest of raygui).
type Panel struct {
	visible bool
	cursor  float32
	rows    int32 // rows drawn last frame, sizes the background
}

// NewPanel creates a hidden panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Toggle flips visibility.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Begin draws the panel background and title and resets the layout cursor.
func (p *Panel) Begin(title string) {
	height := float32(p.rows)*(rowHeight+rowGap+labelHeight) + padding*2 + rowHeight
	if height < 80 {
		height = 80
	}
	rl.DrawRectangleRec(
		rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: height},
		rl.NewColor(10, 12, 20, 220),
	)

	rl.DrawText(title, panelX+padding, panelY+padding, 16, rl.White)
	p.cursor = panelY + padding + rowHeight
	p.rows = 0
}

// End finalizes the frame's layout.
func (p *Panel) End() {
	// Row count carries over to size next frame's background.
}

// Slider draws a labeled slider row and returns the edited value.
func (p *Panel) Slider(label string, value, min, max float32) float32 {
	rl.DrawText(label, panelX+padding, int32(p.cursor), 13, rl.Gray)
	p.cursor += labelHeight

	out := gui.SliderBar(
		rl.Rectangle{X: panelX + padding, Y: p.cursor, Width: panelWidth - padding*2 - 54, Height: rowHeight - 6},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.0f", out), panelX+panelWidth-48, int32(p.cursor)+3, 14, rl.LightGray)

	p.cursor += rowHeight + rowGap
	p.rows++
	return out
}

// Checkbox draws a checkbox row and returns the edited state.
func (p *Panel) Checkbox(label string, checked bool) bool {
	out := gui.CheckBox(
		rl.Rectangle{X: panelX + padding, Y: p.cursor, Width: 18, Height: 18},
		label,
		checked,
	)
	p.cursor += rowHeight
	p.rows++
	return out
}

// Button draws a button row and reports whether it was pressed.
func (p *Panel) Button(label string) bool {
	pressed := gui.Button(
		rl.Rectangle{X: panelX + padding, Y: p.cursor, Width: panelWidth - padding*2, Height: rowHeight - 2},
		label,
	)
	p.cursor += rowHeight + rowGap
	p.rows++
	return pressed
}
