package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spillwave/backdrop/config"
	"github.com/spillwave/backdrop/engine"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	effectName := flag.String("effect", "torus", "Effect to run: topology, field, torus")
	headless := flag.Bool("headless", false, "Run the motion model without graphics")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := engine.Options{
		Seed:      rngSeed,
		Headless:  *headless,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	if *headless {
		fx := newEffect(*effectName, cfg, rngSeed, true)
		e := engine.New(fx, cfg, opts)
		defer e.Destroy()

		slog.Info("starting headless run",
			"effect", fx.Name(),
			"seed", rngSeed,
			"max_ticks", *maxTicks,
		)

		for {
			e.Frame()

			if *maxTicks > 0 && int(e.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", e.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Backdrop")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	fx := newEffect(*effectName, cfg, rngSeed, false)
	e := engine.New(fx, cfg, opts)
	defer e.Destroy()

	for !rl.WindowShouldClose() {
		e.Frame()

		if *maxTicks > 0 && int(e.Tick()) >= *maxTicks {
			break
		}
	}
}

// newEffect maps the -effect flag to a constructor.
func newEffect(name string, cfg *config.Config, seed int64, headless bool) engine.Effect {
	switch name {
	case "topology":
		return engine.NewTopologyEffect(cfg, seed, headless)
	case "field":
		return engine.NewFieldEffect(cfg, seed, headless)
	case "torus":
		return engine.NewTorusEffect(cfg, seed, headless)
	default:
		slog.Error("unknown effect", "effect", name)
		os.Exit(1)
		return nil
	}
}
