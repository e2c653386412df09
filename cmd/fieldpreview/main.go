// Flow field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// FlowParams holds the flow field generation parameters.
type FlowParams struct {
	GridSize      int
	Frequency     float32
	BreatheSpeed  float32
	BreatheAmount float32
	Seed          int64
}

func defaultParams() FlowParams {
	return FlowParams{
		GridSize:      24,
		Frequency:     0.15,
		BreatheSpeed:  0.01,
		BreatheAmount: 0.35,
		Seed:          12345,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams()
	field := rebuild(params)

	var tick int32
	animating := true

	for !rl.WindowShouldClose() {
		if animating {
			tick++
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 14, 22, 255))

		drawField(field, params.GridSize, tick)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		changed := false

		newGrid := sliderRow(&panelY, panelX, "Grid size (cells per edge)", float32(params.GridSize), 4, 48, "%.0f")
		if int(newGrid) != params.GridSize {
			params.GridSize = int(newGrid)
			changed = true
		}

		newFreq := sliderRow(&panelY, panelX, "Frequency (noise scale per cell)", params.Frequency, 0.02, 0.6, "%.2f")
		if newFreq != params.Frequency {
			params.Frequency = newFreq
			changed = true
		}

		newSpeed := sliderRow(&panelY, panelX, "Breathe speed", params.BreatheSpeed, 0, 0.05, "%.3f")
		if newSpeed != params.BreatheSpeed {
			params.BreatheSpeed = newSpeed
			changed = true
		}

		newAmount := sliderRow(&panelY, panelX, "Breathe amount (radians)", params.BreatheAmount, 0, 1.5, "%.2f")
		if newAmount != params.BreatheAmount {
			params.BreatheAmount = newAmount
			changed = true
		}

		newSeed := sliderRow(&panelY, panelX, "Seed", float32(params.Seed), 0, 99999, "%.0f")
		if int64(newSeed) != params.Seed {
			params.Seed = int64(newSeed)
			changed = true
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			changed = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			tick = 0
			changed = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		yamlLines := []string{
			"field:",
			fmt.Sprintf("  flow_grid_size: %d", params.GridSize),
			fmt.Sprintf("  flow_frequency: %.2f", params.Frequency),
			fmt.Sprintf("  flow_breathe_speed: %.3f", params.BreatheSpeed),
			fmt.Sprintf("  flow_breathe_amount: %.2f", params.BreatheAmount),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := fmt.Sprintf(`field:
  flow_grid_size: %d
  flow_frequency: %.2f
  flow_breathe_speed: %.3f
  flow_breathe_amount: %.2f`,
				params.GridSize, params.Frequency, params.BreatheSpeed, params.BreatheAmount)
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()

		if changed {
			field = rebuild(params)
		}
	}
}

func rebuild(params FlowParams) *systems.FlowField {
	return systems.NewFlowField(
		params.GridSize,
		params.Seed,
		float64(params.Frequency),
		float64(params.BreatheSpeed),
		float64(params.BreatheAmount),
	)
}

// drawField renders one arrow per cell, colored by vector magnitude.
func drawField(field *systems.FlowField, gridSize int, tick int32) {
	cell := float32(previewSize) / float32(gridSize)
	arrowLen := float64(cell) * 0.45

	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			// Sample at the cell center in normalized coordinates
			nx := (float64(x) + 0.5) / float64(gridSize-1)
			ny := (float64(y) + 0.5) / float64(gridSize-1)
			fx, fy := field.Lookup(nx, ny, tick)

			mag := math.Hypot(fx, fy)
			if mag < 1e-6 {
				continue
			}

			cx := 10 + float32(x)*cell + cell/2
			cy := 10 + float32(y)*cell + cell/2

			tip := rl.Vector2{
				X: cx + float32(fx/mag*arrowLen),
				Y: cy + float32(fy/mag*arrowLen),
			}

			c := magnitudeColor(mag)
			rl.DrawLineEx(rl.Vector2{X: cx, Y: cy}, tip, 1.5, c)
			rl.DrawCircleV(tip, 2, c)
		}
	}
}

// magnitudeColor maps strength in [0, 1] to a blue-cyan-yellow ramp.
func magnitudeColor(mag float64) rl.Color {
	v := float32(mag)
	if v > 1 {
		v = 1
	}
	switch {
	case v < 0.5:
		t := v / 0.5
		return rl.NewColor(uint8(40+t*20), uint8(80+t*120), uint8(160+t*40), 255)
	default:
		t := (v - 0.5) / 0.5
		return rl.NewColor(uint8(60+t*140), uint8(200-t*40), uint8(200-t*150), 255)
	}
}

func sliderRow(panelY *float32, panelX float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	out := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, out), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.LightGray)
	*panelY += 35
	return out
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
