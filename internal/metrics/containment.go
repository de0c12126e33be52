package metrics

import "github.com/san-kum/gravwell/internal/dynamo"

// Containment is the fraction of particles inside the canvas at the last
// step. An empty simulation counts as fully contained.
type Containment struct {
	name          string
	width, height uint32
	fraction      float64
	escaped       int
}

func NewContainment(width, height uint32) *Containment {
	return &Containment{
		name:     "containment",
		width:    width,
		height:   height,
		fraction: 1.0,
	}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(particles []dynamo.Particle, wells []dynamo.GravityWell, step int) {
	if len(particles) == 0 {
		c.fraction = 1.0
		c.escaped = 0
		return
	}
	out := 0
	for i := range particles {
		if !particles[i].InBounds(c.width, c.height) {
			out++
		}
	}
	c.escaped = out
	c.fraction = 1.0 - float64(out)/float64(len(particles))
}

func (c *Containment) Value() float64 { return c.fraction }

// Escaped is the number of particles outside the canvas at the last step.
func (c *Containment) Escaped() int { return c.escaped }

func (c *Containment) Reset() {
	c.fraction = 1.0
	c.escaped = 0
}
