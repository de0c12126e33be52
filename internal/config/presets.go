package config

import "sort"

var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"bounded": func(c *Config) {
		c.Simulation.BordersActive = true
	},
	"swarm": func(c *Config) {
		c.Simulation.InitialParticles = 100000
		c.Simulation.InitialWells = 3
		c.Simulation.TrailScale = 0.05
	},
	"gentle": func(c *Config) {
		c.Simulation.GravityWellMass = 30
		c.Simulation.Damping = 0.995
		c.Simulation.Palette = "pastel"
	},
	"classic": func(c *Config) {
		c.ForceLaw.Modifier = "linear"
		c.ForceLaw.MinDistance = 30
		c.Simulation.GravityWellMass = 2700
	},
	"tight": func(c *Config) {
		c.ForceLaw.Modifier = "sqrt"
		c.ForceLaw.MinDistance = 15
		c.Simulation.GravityWellMass = 300
		c.Simulation.BordersActive = true
	},
	"flow": func(c *Config) {
		c.Spawn.Rate = 12
		c.Spawn.FlowStrength = 60
		c.Simulation.Palette = "hue"
		c.Simulation.ClearScreen = false
	},
}

// GetPreset returns a fresh config with the named preset applied to the
// defaults, or nil if there is no such preset.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
