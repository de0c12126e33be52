package metrics

import "github.com/san-kum/gravwell/internal/dynamo"

// Source is anything with a current value, usually another metric.
type Source interface {
	Name() string
	Value() float64
}

// Series records the value of a source after every step, keeping the most
// recent Capacity values for plotting.
type Series struct {
	src      Source
	capacity int
	values   []float64
}

func NewSeries(src Source, capacity int) *Series {
	return &Series{
		src:      src,
		capacity: capacity,
		values:   make([]float64, 0, capacity),
	}
}

func (s *Series) OnStep(particles []dynamo.Particle, wells []dynamo.GravityWell, step int) {
	s.Push(s.src.Value())
}

func (s *Series) Push(v float64) {
	if s.capacity <= 0 {
		return
	}
	if len(s.values) == s.capacity {
		copy(s.values, s.values[1:])
		s.values = s.values[:len(s.values)-1]
	}
	s.values = append(s.values, v)
}

func (s *Series) Name() string { return s.src.Name() }

// Values returns the recorded values, oldest first.
func (s *Series) Values() []float64 { return s.values }

func (s *Series) Last() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}
