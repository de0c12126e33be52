package metrics

import "math"

// DefaultFrameWindow is the number of frames FrameRate averages over.
const DefaultFrameWindow = 100

// FrameRate keeps the frames-per-second of the last N frames.
type FrameRate struct {
	samples []float64
	next    int
	full    bool
}

func NewFrameRate(window int) *FrameRate {
	if window <= 0 {
		window = DefaultFrameWindow
	}
	return &FrameRate{samples: make([]float64, window)}
}

// Frame records a frame that took deltaMs milliseconds. Non-positive
// durations are ignored.
func (f *FrameRate) Frame(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	f.samples[f.next] = 1000 / deltaMs
	f.next++
	if f.next == len(f.samples) {
		f.next = 0
		f.full = true
	}
}

func (f *FrameRate) Len() int {
	if f.full {
		return len(f.samples)
	}
	return f.next
}

// Stats returns the mean, minimum and maximum fps over the window.
func (f *FrameRate) Stats() (mean, minFPS, maxFPS float64) {
	n := f.Len()
	if n == 0 {
		return 0, 0, 0
	}
	minFPS, maxFPS = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, s := range f.samples[:n] {
		sum += s
		minFPS = math.Min(minFPS, s)
		maxFPS = math.Max(maxFPS, s)
	}
	return sum / float64(n), minFPS, maxFPS
}

func (f *FrameRate) Reset() {
	f.next = 0
	f.full = false
}
