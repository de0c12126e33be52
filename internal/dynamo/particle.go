package dynamo

import "math"

// MinTrailComponent is the smallest trail extent drawn on each axis, so that
// resting particles still show up as a short dash.
const MinTrailComponent = 1.0

type Particle struct {
	Pos   Vec2
	Vel   Vec2
	Color Color
}

func NewParticle(x, y, vx, vy float64, color Color) Particle {
	return Particle{
		Pos:   Vec2{x, y},
		Vel:   Vec2{vx, vy},
		Color: color,
	}
}

// Trail returns the line segment drawn for p: from its position back along
// its velocity, scaled by scale. An axis whose extent is shorter than
// MinTrailComponent is drawn with extent MinTrailComponent instead.
func (p Particle) Trail(scale float64) (from, to Vec2) {
	dx := -p.Vel.X * scale
	if math.Abs(dx) < MinTrailComponent {
		dx = MinTrailComponent
	}
	dy := -p.Vel.Y * scale
	if math.Abs(dy) < MinTrailComponent {
		dy = MinTrailComponent
	}
	return p.Pos, Vec2{p.Pos.X + dx, p.Pos.Y + dy}
}

// InBounds reports whether p lies inside [0, width) x [0, height).
func (p Particle) InBounds(width, height uint32) bool {
	return p.Pos.X >= 0 && p.Pos.X < float64(width) &&
		p.Pos.Y >= 0 && p.Pos.Y < float64(height)
}
