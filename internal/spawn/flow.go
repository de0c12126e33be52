package spawn

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	DefaultFlowScale = 0.005

	flowAlpha   = 2.0
	flowBeta    = 2.0
	flowOctaves = 3
)

// FlowField gives spawned particles an extra velocity that varies smoothly
// across the canvas, so streams curl instead of spraying uniformly.
type FlowField struct {
	Strength float64
	Scale    float64

	noise *perlin.Perlin
}

func NewFlowField(strength, scale float64, seed int64) *FlowField {
	if scale <= 0 {
		scale = DefaultFlowScale
	}
	return &FlowField{
		Strength: strength,
		Scale:    scale,
		noise:    perlin.NewPerlin(flowAlpha, flowBeta, flowOctaves, seed),
	}
}

// Angle returns the flow direction at (x, y) in radians.
func (f *FlowField) Angle(x, y float64) float64 {
	return f.noise.Noise2D(x*f.Scale, y*f.Scale) * 2 * math.Pi
}

// Velocity returns the flow velocity at (x, y), of magnitude Strength.
func (f *FlowField) Velocity(x, y float64) (float64, float64) {
	a := f.Angle(x, y)
	return math.Cos(a) * f.Strength, math.Sin(a) * f.Strength
}
