package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	DefaultModifier    = "scaled"
	DefaultDivisor     = 30.0
	DefaultMinDistance = 1.0
	DefaultForceScale  = 1.0
)

var ErrUnknownModifier = errors.New("physics: unknown distance modifier")

// DistanceModifier maps a raw distance to an effective distance. It must be
// monotone non-decreasing for distances >= 0.
type DistanceModifier func(d float64) float64

// ModifierFactory builds a modifier from the configured divisor. Modifiers
// that do not use a divisor ignore it.
type ModifierFactory func(divisor float64) DistanceModifier

var modifiers = map[string]ModifierFactory{
	"linear": func(float64) DistanceModifier {
		return func(d float64) float64 { return d }
	},
	"scaled": func(divisor float64) DistanceModifier {
		if divisor <= 0 {
			divisor = DefaultDivisor
		}
		return func(d float64) float64 { return d / divisor }
	},
	"sqrt": func(float64) DistanceModifier {
		return math.Sqrt
	},
	"floor": func(floor float64) DistanceModifier {
		return func(d float64) float64 { return math.Max(d, floor) }
	},
}

// RegisterModifier adds or replaces a named modifier.
func RegisterModifier(name string, f ModifierFactory) {
	modifiers[name] = f
}

// Modifiers returns the registered modifier names in sorted order.
func Modifiers() []string {
	names := make([]string, 0, len(modifiers))
	for name := range modifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type ForceLaw struct {
	Name        string
	Modifier    DistanceModifier
	MinDistance float64
	ForceScale  float64
}

// NewForceLaw builds a law from a registered modifier name.
func NewForceLaw(name string, divisor, minDistance, forceScale float64) (ForceLaw, error) {
	factory, ok := modifiers[name]
	if !ok {
		return ForceLaw{}, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
	}
	if minDistance <= 0 {
		return ForceLaw{}, fmt.Errorf("physics: min distance must be positive, got %f", minDistance)
	}
	return ForceLaw{
		Name:        name,
		Modifier:    factory(divisor),
		MinDistance: minDistance,
		ForceScale:  forceScale,
	}, nil
}

// DefaultForceLaw is |d|/30 clamped at 1 with unit scale.
func DefaultForceLaw() ForceLaw {
	law, _ := NewForceLaw(DefaultModifier, DefaultDivisor, DefaultMinDistance, DefaultForceScale)
	return law
}

// EffectiveDistance returns max(MinDistance, Modifier(d)).
func (l ForceLaw) EffectiveDistance(d float64) float64 {
	m := d
	if l.Modifier != nil {
		m = l.Modifier(d)
	}
	return math.Max(l.MinDistance, m)
}

// Force returns the scalar pull of mass at raw distance d.
func (l ForceLaw) Force(mass, d float64) float64 {
	return l.ForceScale * mass / l.EffectiveDistance(d)
}
