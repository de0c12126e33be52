package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravwell/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Simulation.GravityWellMass != 90 {
		t.Errorf("expected mass 90, got %f", cfg.Simulation.GravityWellMass)
	}
	if cfg.Simulation.TrailScale != 0.1 {
		t.Errorf("expected trail scale 0.1, got %f", cfg.Simulation.TrailScale)
	}
	if !cfg.Simulation.ClearScreen {
		t.Error("clear screen should default on")
	}
	if cfg.Loop.StepMs != 16.7 || cfg.Loop.MaxUpdates != 10 {
		t.Errorf("unexpected loop defaults: %+v", cfg.Loop)
	}
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Simulation.BordersActive = true
	p := cfg.Params()

	want := sim.DefaultParams(DefaultWidth, DefaultHeight)
	want.BordersActive = true
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
}

func TestLaw(t *testing.T) {
	cfg := DefaultConfig()
	law, err := cfg.Law()
	if err != nil {
		t.Fatal(err)
	}
	if law.EffectiveDistance(300) != 10 {
		t.Errorf("expected effective distance 10, got %f", law.EffectiveDistance(300))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"damping above one", func(c *Config) { c.Simulation.Damping = 1.5 }},
		{"negative particles", func(c *Config) { c.Simulation.InitialParticles = -1 }},
		{"negative rate", func(c *Config) { c.Spawn.Rate = -2 }},
		{"zero step", func(c *Config) { c.Loop.StepMs = 0 }},
		{"zero speed", func(c *Config) { c.Loop.Speed = 0 }},
		{"unknown modifier", func(c *Config) { c.ForceLaw.Modifier = "cubic" }},
		{"zero min distance", func(c *Config) { c.ForceLaw.MinDistance = 0 }},
		{"unknown palette", func(c *Config) { c.Simulation.Palette = "neon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravwell.yaml")

	cfg := DefaultConfig()
	cfg.Simulation.GravityWellMass = 123
	cfg.ForceLaw.Modifier = "sqrt"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Simulation.GravityWellMass != 123 || loaded.ForceLaw.Modifier != "sqrt" {
		t.Errorf("round trip lost values: %+v", loaded.Simulation)
	}
}

func TestLoadPartialOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("simulation:\n  borders_active: true\ncanvas:\n  width: 640\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Simulation.BordersActive || cfg.Canvas.Width != 640 {
		t.Errorf("file values not applied: %+v", cfg.Canvas)
	}
	if cfg.Canvas.Height != DefaultHeight || cfg.Simulation.GravityWellMass != 90 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("loop:\n  speed: 0\n"), 0644)
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	if !GetPreset("bounded").Simulation.BordersActive {
		t.Error("bounded preset should enable borders")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}

	a := GetPreset("swarm")
	a.Simulation.InitialParticles = 1
	if GetPreset("swarm").Simulation.InitialParticles == 1 {
		t.Error("presets should not share state")
	}
}
