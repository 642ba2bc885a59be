// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Scene     SceneConfig     `yaml:"scene"`
	Light     LightConfig     `yaml:"light"`
	Camera    CameraConfig    `yaml:"camera"`
	Orbit     OrbitConfig     `yaml:"orbit"`
	Petals    PetalsConfig    `yaml:"petals"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	Resizable bool   `yaml:"resizable"`
	MSAA      bool   `yaml:"msaa"`
}

// SceneConfig holds the static scene layout.
type SceneConfig struct {
	Background     HexColor `yaml:"background"`
	GroundRadius   float64  `yaml:"ground_radius"`
	GroundSegments int      `yaml:"ground_segments"`
	GroundColor    HexColor `yaml:"ground_color"`
	TrunkTop       float64  `yaml:"trunk_radius_top"`
	TrunkBottom    float64  `yaml:"trunk_radius_bottom"`
	TrunkHeight    float64  `yaml:"trunk_height"`
	TrunkSegments  int      `yaml:"trunk_segments"`
	TrunkColor     HexColor `yaml:"trunk_color"`
}

// LightConfig holds hemisphere light parameters.
type LightConfig struct {
	Sky       HexColor `yaml:"sky"`
	Ground    HexColor `yaml:"ground"`
	Intensity float64  `yaml:"intensity"`
}

// CameraConfig holds perspective camera parameters.
type CameraConfig struct {
	Fov      float64    `yaml:"fov"` // vertical, degrees
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position"`
}

// OrbitConfig holds orbit controller flags.
type OrbitConfig struct {
	Target          [3]float64 `yaml:"target"`
	EnableRotate    bool       `yaml:"enable_rotate"`
	EnablePan       bool       `yaml:"enable_pan"`
	EnableZoom      bool       `yaml:"enable_zoom"`
	AutoRotate      bool       `yaml:"auto_rotate"`
	AutoRotateSpeed float64    `yaml:"auto_rotate_speed"` // 1.0 = one turn per minute
	EnableDamping   bool       `yaml:"enable_damping"`
	DampingFactor   float64    `yaml:"damping_factor"`
	RotateSpeed     float64    `yaml:"rotate_speed"`
	ZoomSpeed       float64    `yaml:"zoom_speed"`
	PanSpeed        float64    `yaml:"pan_speed"`
	MinDistance     float64    `yaml:"min_distance"`
	MaxDistance     float64    `yaml:"max_distance"` // 0 = unbounded
}

// PetalsConfig holds particle field and animation parameters.
type PetalsConfig struct {
	Count       int        `yaml:"count"`
	Radius      float64    `yaml:"radius"`
	MaxHeight   float64    `yaml:"max_height"`
	MaxOffset   float64    `yaml:"max_offset"`
	AreaUniform bool       `yaml:"area_uniform"` // sqrt radius sampling instead of linear
	Size        float64    `yaml:"size"`
	CycleRate   float64    `yaml:"cycle_rate"`   // cycles per second
	RiseHeight  float64    `yaml:"rise_height"`  // world units per cycle
	BloomStart  float64    `yaml:"bloom_start"`  // cycle fraction where bloom begins
	BloomEnd    float64    `yaml:"bloom_end"`    // cycle fraction where bloom saturates
	BloomSpread float64    `yaml:"bloom_spread"` // extra horizontal scale at full bloom
	ColorStart  [3]float64 `yaml:"color_start"`  // linear RGB at cycle start
	ColorEnd    [3]float64 `yaml:"color_end"`    // linear RGB at cycle end
}

// TelemetryConfig holds perf collection parameters.
type TelemetryConfig struct {
	PerfWindow  int     `yaml:"perf_window"`  // frames per rolling window
	LogInterval float64 `yaml:"log_interval"` // seconds between perf logs
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FovRadians  float32 // Camera.Fov in radians
	Aspect      float32 // Window.Width / Window.Height
	LogInterval float32 // Telemetry.LogInterval as float32
}

// HexColor is an RGB color written as "#rrggbb" in YAML.
type HexColor struct {
	R, G, B uint8
}

// ParseHexColor parses "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return HexColor{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("color %q: %w", s, err)
	}
	return HexColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// String returns the "#rrggbb" form.
func (c HexColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Floats returns the color as normalized RGB components.
func (c HexColor) Floats() [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c HexColor) MarshalYAML() (any, error) {
	return c.String(), nil
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
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the renderer cannot work with.
func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Petals.Count <= 0:
		return fmt.Errorf("petals.count must be positive, got %d", c.Petals.Count)
	case c.Petals.Radius <= 0:
		return fmt.Errorf("petals.radius must be positive, got %g", c.Petals.Radius)
	case c.Petals.BloomEnd <= c.Petals.BloomStart:
		return fmt.Errorf("petals.bloom_end (%g) must exceed bloom_start (%g)", c.Petals.BloomEnd, c.Petals.BloomStart)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera clip range invalid: near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FovRadians = float32(c.Camera.Fov * math.Pi / 180)
	c.Derived.Aspect = float32(c.Window.Width) / float32(c.Window.Height)
	c.Derived.LogInterval = float32(c.Telemetry.LogInterval)

	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 120
	}
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
