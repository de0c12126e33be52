package viz

import (
	"math"

	"github.com/san-kum/gravwell/internal/dynamo"
)

const wellSegments = 24

// CanvasRenderer draws simulation frames onto a braille canvas, scaling the
// simulation's width x height onto the canvas dots. Particles become their
// trail lines and wells become rings with a spoke showing their rotation.
type CanvasRenderer struct {
	canvas        *Canvas
	width, height float64
}

func NewCanvasRenderer(c *Canvas, width, height uint32) *CanvasRenderer {
	return &CanvasRenderer{canvas: c, width: float64(width), height: float64(height)}
}

func (r *CanvasRenderer) Canvas() *Canvas { return r.canvas }

// Project maps simulation coordinates to canvas dots.
func (r *CanvasRenderer) Project(x, y float64) (int, int) {
	sx := x / r.width * float64(r.canvas.DotWidth())
	sy := y / r.height * float64(r.canvas.DotHeight())
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// Unproject maps a terminal cell to the simulation coordinates of its center.
func (r *CanvasRenderer) Unproject(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) / float64(r.canvas.Width) * r.width
	y := (float64(row) + 0.5) / float64(r.canvas.Height) * r.height
	return x, y
}

func (r *CanvasRenderer) ClearScreen() { r.canvas.Clear() }

func (r *CanvasRenderer) RenderParticles(particles []dynamo.Particle, trailScale float64) {
	for _, p := range particles {
		from, to := p.Trail(trailScale)
		x0, y0 := r.Project(from.X, from.Y)
		x1, y1 := r.Project(to.X, to.Y)
		r.canvas.DrawLine(x0, y0, x1, y1)
	}
}

func (r *CanvasRenderer) RenderGravityWells(wells []dynamo.GravityWell) {
	for _, w := range wells {
		r.ring(w.Pos, dynamo.WellRadius)
		if w.IsSelected {
			r.ring(w.Pos, dynamo.WellRadius/2)
		}

		a := w.RotationDeg * math.Pi / 180
		cx, cy := r.Project(w.Pos.X, w.Pos.Y)
		ex, ey := r.Project(w.Pos.X+dynamo.WellRadius*math.Cos(a), w.Pos.Y+dynamo.WellRadius*math.Sin(a))
		r.canvas.DrawLine(cx, cy, ex, ey)
	}
}

// ResetParticles is a no-op: the canvas keeps no per-particle state.
func (r *CanvasRenderer) ResetParticles() {}

func (r *CanvasRenderer) ring(center dynamo.Vec2, radius float64) {
	px, py := r.Project(center.X+radius, center.Y)
	for i := 1; i <= wellSegments; i++ {
		a := 2 * math.Pi * float64(i) / wellSegments
		x, y := r.Project(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
		r.canvas.DrawLine(px, py, x, y)
		px, py = x, y
	}
}
