package dynamo

const (
	// WellRadius is the half-extent of a well, for both hit-testing and drawing.
	WellRadius = 20.0
	// WellRotationSpeed is the spin added per update, in degrees.
	WellRotationSpeed = 2.0
)

type GravityWell struct {
	Pos         Vec2
	RotationDeg float64
	Mass        float64
	IsSelected  bool
}

func NewGravityWell(pos Vec2, mass float64) GravityWell {
	return GravityWell{Pos: pos, Mass: mass}
}

// Rotate advances the spin by WellRotationSpeed, wrapped into [0, 360).
func (w *GravityWell) Rotate() {
	w.RotationDeg += WellRotationSpeed
	for w.RotationDeg >= 360 {
		w.RotationDeg -= 360
	}
	for w.RotationDeg < 0 {
		w.RotationDeg += 360
	}
}

// IsPointInside reports whether (x, y) lies within WellRadius of the center.
// The test ignores mass.
func (w GravityWell) IsPointInside(x, y float64) bool {
	return Vec2{x, y}.Sub(w.Pos).Len() <= WellRadius
}

// Bounds returns left, top, right, bottom of the well's square.
func (w GravityWell) Bounds() (left, top, right, bottom float64) {
	return w.Pos.X - WellRadius, w.Pos.Y - WellRadius, w.Pos.X + WellRadius, w.Pos.Y + WellRadius
}

func (w *GravityWell) MoveTo(x, y float64) {
	w.Pos = Vec2{x, y}
}

func (w *GravityWell) MoveBy(dx, dy float64) {
	w.Pos.X += dx
	w.Pos.Y += dy
}
