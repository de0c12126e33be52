// Package loop drives a simulation from a host's frame loop. [Ticker] turns
// wall-clock frame times into fixed simulation ticks, and [Session] ties a
// ticker to a simulation, a pointer and a particle emitter.
package loop

const (
	// DefaultStepMs is the fixed simulation step, about one 60 Hz frame.
	DefaultStepMs = 16.7
	// DefaultMaxUpdates caps the ticks run for one displayed frame.
	DefaultMaxUpdates = 10
)

// Ticker accumulates elapsed frame time and runs whole ticks out of it.
//
// At speed s a batch of s ticks is run whenever the backlog reaches StepMs/s,
// and each batch consumes StepMs of backlog. No more than MaxUpdates ticks
// (plus the remainder of the batch in progress) run per frame; backlog left
// over when the cap is hit is dropped rather than carried forward.
type Ticker struct {
	StepMs     float64
	MaxUpdates int

	speed   int
	backlog float64
	ticks   int
}

func NewTicker(stepMs float64, maxUpdates int) *Ticker {
	if stepMs <= 0 {
		stepMs = DefaultStepMs
	}
	if maxUpdates <= 0 {
		maxUpdates = DefaultMaxUpdates
	}
	return &Ticker{
		StepMs:     stepMs,
		MaxUpdates: maxUpdates,
		speed:      1,
	}
}

func (t *Ticker) Speed() int { return t.speed }

// SetSpeed sets the ticks per step. Values below 1 are raised to 1.
func (t *Ticker) SetSpeed(speed int) {
	t.speed = max(speed, 1)
}

func (t *Ticker) SpeedUp()   { t.SetSpeed(t.speed + 1) }
func (t *Ticker) SpeedDown() { t.SetSpeed(t.speed - 1) }

// Backlog is the accumulated time not yet consumed by ticks.
func (t *Ticker) Backlog() float64 { return t.backlog }

// Ticks is the total number of ticks run.
func (t *Ticker) Ticks() int { return t.ticks }

// Advance adds elapsedMs of frame time and calls tick once per simulation
// step it owes, returning the number of ticks run.
func (t *Ticker) Advance(elapsedMs float64, tick func(stepMs float64)) int {
	if elapsedMs > 0 {
		t.backlog += elapsedMs
	}

	threshold := t.StepMs / float64(t.speed)
	updates := 0
	for t.backlog >= threshold && updates <= t.MaxUpdates {
		for i := 0; i < t.speed; i++ {
			tick(t.StepMs)
			updates++
		}
		t.backlog -= t.StepMs
	}

	if updates > t.MaxUpdates && t.backlog > t.StepMs {
		t.backlog = 0
	}

	t.ticks += updates
	return updates
}

func (t *Ticker) Reset() {
	t.backlog = 0
}
