// Package config provides configuration loading and access for the patrol scene.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Warehouse WarehouseConfig `yaml:"warehouse"`
	Patrol    PatrolConfig    `yaml:"patrol"`
	Camera    CameraConfig    `yaml:"camera"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WarehouseConfig describes the rack grid.
type WarehouseConfig struct {
	Levels        int        `yaml:"levels"`
	RacksPerRow   int        `yaml:"racks_per_row"`
	RacksPerAisle int        `yaml:"racks_per_aisle"`
	LevelHeight   float64    `yaml:"level_height"`
	Spacing       float64    `yaml:"spacing"`
	XOffset       float64    `yaml:"x_offset"`
	ZOffset       float64    `yaml:"z_offset"`
	RackSize      [3]float64 `yaml:"rack_size"` // width, height, depth
}

// PatrolConfig holds the robot route and motion parameters.
type PatrolConfig struct {
	Start   [3]float64 `yaml:"start"`   // robot spawn position
	BaseY   float64    `yaml:"base_y"`  // sweep height on level 0
	Speed   float64    `yaml:"speed"`   // world units per tick
	Epsilon float64    `yaml:"epsilon"` // arrival threshold
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Position    [3]float64 `yaml:"position"`
	Target      [3]float64 `yaml:"target"`
	Fovy        float64    `yaml:"fovy"`
	Damping     float64    `yaml:"damping"`
	MinDistance float64    `yaml:"min_distance"`
	MaxDistance float64    `yaml:"max_distance"`
	MaxPolar    float64    `yaml:"max_polar"`    // radians from +Y; 0 = use pi/2
	RotateSpeed float64    `yaml:"rotate_speed"` // radians per pixel of drag
	ZoomSpeed   float64    `yaml:"zoom_speed"`   // fraction of distance per wheel notch
}

// RenderConfig holds colors, lighting and helper geometry sizes.
type RenderConfig struct {
	Background    uint32     `yaml:"background"`
	RackColor     uint32     `yaml:"rack_color"`
	RobotColor    uint32     `yaml:"robot_color"`
	PathColor     uint32     `yaml:"path_color"`
	RobotSize     float64    `yaml:"robot_size"`
	GridSize      float64    `yaml:"grid_size"`
	GridSlices    int        `yaml:"grid_slices"`
	ShowPath      bool       `yaml:"show_path"`
	LightPosition [3]float64 `yaml:"light_position"` // directional light, aimed at the origin
	Ambient       float64    `yaml:"ambient"`
	Shininess     float64    `yaml:"shininess"` // specular exponent for the robot
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`          // ticks per stats window
	TraceEvery          int `yaml:"trace_every"`           // ticks between trace rows (0 = off)
	PerfCollectorWindow int `yaml:"perf_collector_window"` // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Start     r3.Vec  // Patrol.Start as a vector
	AisleZ    float64 // patrol aisle depth (start Z)
	BaseX     float64 // first sweep column X (start X)
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

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
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
		// Only overwrites fields present in file
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

// validate rejects motion parameters the controller cannot honor.
// Zero or negative grid counts are allowed and produce an empty scene.
func (c *Config) validate() error {
	if c.Patrol.Speed <= 0 {
		return fmt.Errorf("patrol.speed must be positive, got %v", c.Patrol.Speed)
	}
	if c.Patrol.Epsilon <= 0 {
		return fmt.Errorf("patrol.epsilon must be positive, got %v", c.Patrol.Epsilon)
	}
	if c.Patrol.Speed >= 2*c.Patrol.Epsilon {
		// Steps this long can jump across the arrival sphere and oscillate.
		slog.Warn("patrol speed may overshoot waypoints",
			"speed", c.Patrol.Speed,
			"epsilon", c.Patrol.Epsilon,
		)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	start := c.Patrol.Start
	c.Derived.Start = r3.Vec{X: start[0], Y: start[1], Z: start[2]}
	c.Derived.BaseX = start[0]
	c.Derived.AisleZ = start[2]
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
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
