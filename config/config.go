// Package config provides configuration loading and access for the backdrop effects.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Topology  TopologyConfig  `yaml:"topology"`
	Field     FieldConfig     `yaml:"field"`
	Torus     TorusConfig     `yaml:"torus"`
	Motion    MotionConfig    `yaml:"motion"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	TargetFPS        int     `yaml:"target_fps"`
	MaxPixelRatio    float64 `yaml:"max_pixel_ratio"`    // Device pixel ratio cap (bounds buffer sizes)
	MobileBreakpoint int     `yaml:"mobile_breakpoint"`  // Viewport width below which particle counts shrink
}

// RGB is an opaque color loaded from YAML as [r, g, b].
type RGB struct {
	R, G, B uint8
}

// UnmarshalYAML decodes a three-element integer sequence.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var parts []int
	if err := value.Decode(&parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("color needs 3 components, got %d", len(parts))
	}
	for _, p := range parts {
		if p < 0 || p > 255 {
			return fmt.Errorf("color component %d out of range", p)
		}
	}
	c.R, c.G, c.B = uint8(parts[0]), uint8(parts[1]), uint8(parts[2])
	return nil
}

// MarshalYAML encodes the color back to [r, g, b].
func (c RGB) MarshalYAML() (interface{}, error) {
	return []int{int(c.R), int(c.G), int(c.B)}, nil
}

// TopologyConfig holds the point-grid effect parameters.
type TopologyConfig struct {
	Spacing         float64 `yaml:"spacing"`          // Grid spacing in pixels
	MaxDistance     float64 `yaml:"max_distance"`     // Max connection length in pixels
	MaxPoints       int     `yaml:"max_points"`       // Hard cap on grid points
	ShowPoints      bool    `yaml:"show_points"`
	Jitter          float64 `yaml:"jitter"`           // Anchor jitter as fraction of spacing
	WanderSpeed     float64 `yaml:"wander_speed"`     // Per-tick phase advance of point wander
	WanderRadius    float64 `yaml:"wander_radius"`    // Wander amplitude in pixels
	PointColor      RGB     `yaml:"point_color"`
	BackgroundColor RGB     `yaml:"background_color"`
}

// FieldConfig holds the drift-particle effect parameters.
type FieldConfig struct {
	ParticleCount       int     `yaml:"particle_count"`
	MobileParticleCount int     `yaml:"mobile_particle_count"`
	FlowGridSize        int     `yaml:"flow_grid_size"`
	FlowBreatheSpeed    float64 `yaml:"flow_breathe_speed"`
	FlowBreatheAmount   float64 `yaml:"flow_breathe_amount"`
	FlowStrength        float64 `yaml:"flow_strength"`
	FlowFrequency       float64 `yaml:"flow_frequency"`   // Opensimplex frequency over grid cells
	NoiseScale          float64 `yaml:"noise_scale"`      // Spatial scale fed into the hash noise
	NoiseStrength       float64 `yaml:"noise_strength"`   // Noise displacement amplitude
	DriftStrength       float64 `yaml:"drift_strength"`   // Slow sinusoidal drift amplitude
	AlphaPulseFreq      float64 `yaml:"alpha_pulse_freq"` // Per-tick frequency of the alpha pulse
	ParticleColor       RGB     `yaml:"particle_color"`
	BackgroundColor     RGB     `yaml:"background_color"`
}

// TorusConfig holds the wireframe-torus effect parameters.
type TorusConfig struct {
	Rings             int     `yaml:"rings"`
	Tubes             int     `yaml:"tubes"`
	MajorRadius       float64 `yaml:"major_radius"` // In normalized view units
	MinorRadius       float64 `yaml:"minor_radius"`
	MorphAmp          float64 `yaml:"morph_amp"`    // Radius morph amplitude
	MorphFreq         float64 `yaml:"morph_freq"`   // Radius morph frequency per tick
	WalkerCount       int     `yaml:"walker_count"`
	MobileWalkerCount int     `yaml:"mobile_walker_count"`
	TrailLength       int     `yaml:"trail_length"`
	RouteInterval     int     `yaml:"route_interval"` // Ticks between walker re-routes
	RouteTurn         float64 `yaml:"route_turn"`     // Max random turn per re-route, radians
	RotationSpeed     float64 `yaml:"rotation_speed"` // Base accumulator advance per tick
	MouseBias         float64 `yaml:"mouse_bias"`     // Pointer-driven rotation bias strength
	WireColor         RGB     `yaml:"wire_color"`
	PulseColor        RGB     `yaml:"pulse_color"`
	BackgroundColor   RGB     `yaml:"background_color"`
}

// MotionConfig holds the shared smoothing and speed-multiplier parameters.
type MotionConfig struct {
	PointerSmoothRate float64 `yaml:"pointer_smooth_rate"`
	SpeedRampRate     float64 `yaml:"speed_ramp_rate"`
	SpeedDecayRate    float64 `yaml:"speed_decay_rate"`
	SpeedGain         float64 `yaml:"speed_gain"` // Velocity-to-target gain
	SpeedCap          float64 `yaml:"speed_cap"`  // Max target excess over 1
}

// TelemetryConfig holds frame telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Screen.MaxPixelRatio <= 0 {
		c.Screen.MaxPixelRatio = 2.0
	}
	if c.Torus.TrailLength < 1 {
		c.Torus.TrailLength = 1
	}
}

// ScaledParticleCount returns the field particle count for a viewport width,
// honoring the mobile breakpoint.
func (c *Config) ScaledParticleCount(viewportWidth int) int {
	if viewportWidth < c.Screen.MobileBreakpoint {
		return c.Field.MobileParticleCount
	}
	return c.Field.ParticleCount
}

// ScaledWalkerCount returns the torus walker count for a viewport width.
func (c *Config) ScaledWalkerCount(viewportWidth int) int {
	if viewportWidth < c.Screen.MobileBreakpoint {
		return c.Torus.MobileWalkerCount
	}
	return c.Torus.WalkerCount
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
