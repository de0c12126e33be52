package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravwell/internal/compute"
	"github.com/san-kum/gravwell/internal/loop"
	"github.com/san-kum/gravwell/internal/physics"
	"github.com/san-kum/gravwell/internal/render"
	"github.com/san-kum/gravwell/internal/sim"
	"github.com/san-kum/gravwell/internal/spawn"
	"github.com/san-kum/gravwell/internal/texture"
)

const (
	DefaultWidth            = 1280
	DefaultHeight           = 720
	DefaultInitialParticles = 10000
	DefaultInitialWells     = 1
	DefaultPalette          = "random"
	DefaultFlowStrength     = 0.0
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Simulation SimulationConfig `yaml:"simulation"`
	ForceLaw   ForceLawConfig   `yaml:"force_law"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Loop       LoopConfig       `yaml:"loop"`
	Render     RenderConfig     `yaml:"render"`
	Compute    ComputeConfig    `yaml:"compute"`
}

type CanvasConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

type SimulationConfig struct {
	GravityWellMass  float64 `yaml:"gravity_well_mass"`
	WellSpawnMass    float64 `yaml:"well_spawn_mass"`
	UseWellMass      bool    `yaml:"use_well_mass"`
	TrailScale       float64 `yaml:"trail_scale"`
	Damping          float64 `yaml:"damping"`
	BordersActive    bool    `yaml:"borders_active"`
	ClearScreen      bool    `yaml:"clear_screen"`
	InitialParticles int     `yaml:"initial_particles"`
	InitialWells     int     `yaml:"initial_wells"`
	Seed             int64   `yaml:"seed"`
	Palette          string  `yaml:"palette"`
}

type ForceLawConfig struct {
	Modifier    string  `yaml:"modifier"`
	Divisor     float64 `yaml:"divisor"`
	MinDistance float64 `yaml:"min_distance"`
	ForceScale  float64 `yaml:"force_scale"`
}

type SpawnConfig struct {
	Rate           int     `yaml:"rate"`
	PositionJitter float64 `yaml:"position_jitter"`
	VelocityRange  float64 `yaml:"velocity_range"`
	FlowStrength   float64 `yaml:"flow_strength"`
	FlowScale      float64 `yaml:"flow_scale"`
}

type LoopConfig struct {
	StepMs     float64 `yaml:"step_ms"`
	MaxUpdates int     `yaml:"max_updates"`
	Speed      int     `yaml:"speed"`
}

type RenderConfig struct {
	WellTexture    string `yaml:"well_texture"`
	TextureName    string `yaml:"texture_name"`
	MaxTextureSize int    `yaml:"max_texture_size"`
	// SelectionTint is a packed 0xRRGGBBAA color.
	SelectionTint uint32 `yaml:"selection_tint"`
}

type ComputeConfig struct {
	Workers           int `yaml:"workers"`
	ParallelThreshold int `yaml:"parallel_threshold"`
}

func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Simulation: SimulationConfig{
			GravityWellMass:  sim.DefaultGravityWellMass,
			WellSpawnMass:    sim.DefaultWellSpawnMass,
			TrailScale:       sim.DefaultTrailScale,
			Damping:          sim.DefaultDamping,
			ClearScreen:      true,
			InitialParticles: DefaultInitialParticles,
			InitialWells:     DefaultInitialWells,
			Palette:          DefaultPalette,
		},
		ForceLaw: ForceLawConfig{
			Modifier:    physics.DefaultModifier,
			Divisor:     physics.DefaultDivisor,
			MinDistance: physics.DefaultMinDistance,
			ForceScale:  physics.DefaultForceScale,
		},
		Spawn: SpawnConfig{
			Rate:           spawn.DefaultRate,
			PositionJitter: spawn.DefaultPositionJitter,
			VelocityRange:  spawn.DefaultVelocityRange,
			FlowStrength:   DefaultFlowStrength,
			FlowScale:      spawn.DefaultFlowScale,
		},
		Loop: LoopConfig{
			StepMs:     loop.DefaultStepMs,
			MaxUpdates: loop.DefaultMaxUpdates,
			Speed:      1,
		},
		Render: RenderConfig{
			TextureName:    render.WellTexture,
			MaxTextureSize: texture.DefaultMaxSize,
			SelectionTint:  render.DefaultSelectionTint.Uint32(),
		},
		Compute: ComputeConfig{
			ParallelThreshold: compute.DefaultParallelThreshold,
		},
	}
}

// Load overlays the YAML file at path onto the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width == 0 || c.Canvas.Height == 0:
		return fmt.Errorf("%w: canvas must be non-empty, got %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Simulation.Damping < 0 || c.Simulation.Damping > 1:
		return fmt.Errorf("%w: damping must be in [0, 1], got %f", ErrInvalidConfig, c.Simulation.Damping)
	case c.Simulation.InitialParticles < 0 || c.Simulation.InitialWells < 0:
		return fmt.Errorf("%w: initial counts must not be negative", ErrInvalidConfig)
	case c.Spawn.Rate < 0:
		return fmt.Errorf("%w: spawn rate must not be negative, got %d", ErrInvalidConfig, c.Spawn.Rate)
	case c.Loop.StepMs <= 0:
		return fmt.Errorf("%w: step must be positive, got %f", ErrInvalidConfig, c.Loop.StepMs)
	case c.Loop.Speed < 1:
		return fmt.Errorf("%w: speed must be at least 1, got %d", ErrInvalidConfig, c.Loop.Speed)
	}

	if _, err := c.Law(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := sim.PaletteByName(c.Simulation.Palette); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Params() sim.Params {
	return sim.Params{
		Width:             c.Canvas.Width,
		Height:            c.Canvas.Height,
		GravityWellMass:   c.Simulation.GravityWellMass,
		UseWellMass:       c.Simulation.UseWellMass,
		WellSpawnMass:     c.Simulation.WellSpawnMass,
		TrailScale:        c.Simulation.TrailScale,
		Damping:           c.Simulation.Damping,
		BordersActive:     c.Simulation.BordersActive,
		ShouldClearScreen: c.Simulation.ClearScreen,
	}
}

func (c *Config) Law() (physics.ForceLaw, error) {
	f := c.ForceLaw
	return physics.NewForceLaw(f.Modifier, f.Divisor, f.MinDistance, f.ForceScale)
}

func (c *Config) Backend() compute.Backend {
	return compute.AutoSelectBackend(c.Compute.Workers, c.Compute.ParallelThreshold)
}

func (c *Config) Ticker() *loop.Ticker {
	t := loop.NewTicker(c.Loop.StepMs, c.Loop.MaxUpdates)
	t.SetSpeed(c.Loop.Speed)
	return t
}
