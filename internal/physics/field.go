package physics

import "github.com/san-kum/gravwell/internal/dynamo"

// Field is the combined pull of a set of wells under one force law.
//
// Mass is the simulation-wide well mass. When UseWellMass is set each well's
// own Mass field is used instead.
type Field struct {
	Law         ForceLaw
	Mass        float64
	UseWellMass bool
}

func (f Field) massOf(w *dynamo.GravityWell) float64 {
	if f.UseWellMass {
		return w.Mass
	}
	return f.Mass
}

// Apply adds the pull of every well to p's velocity, in well order. A
// particle sitting exactly on a well center is left unchanged by that well.
func (f Field) Apply(p *dynamo.Particle, wells []dynamo.GravityWell) {
	for i := range wells {
		w := &wells[i]
		d := w.Pos.Sub(p.Pos)
		dist := d.Len()
		if dist == 0 {
			continue
		}
		force := f.Law.Force(f.massOf(w), dist)
		p.Vel.X += d.X / dist * force
		p.Vel.Y += d.Y / dist * force
	}
}
