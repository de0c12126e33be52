package loop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/gravwell/internal/control"
	"github.com/san-kum/gravwell/internal/metrics"
	"github.com/san-kum/gravwell/internal/sim"
	"github.com/san-kum/gravwell/internal/spawn"
)

const (
	// RemoveSomeCount is how many particles ActionRemoveSome drops.
	RemoveSomeCount = 250

	MassStep      = 10.0
	MaxMass       = 1000.0
	TrailStep     = 0.02
	MaxTrailScale = 1.0
)

// Action is a host command that is not tied to a pointer position.
type Action int

const (
	ActionToggleBorders Action = iota
	ActionToggleClearScreen
	ActionToggleWellMass
	ActionClearParticles
	ActionRemoveSome
	ActionRemoveWells
	ActionMassUp
	ActionMassDown
	ActionTrailUp
	ActionTrailDown
	ActionSpeedUp
	ActionSpeedDown
)

var actionNames = map[Action]string{
	ActionToggleBorders:     "toggle borders",
	ActionToggleClearScreen: "toggle clear screen",
	ActionToggleWellMass:    "toggle well mass",
	ActionClearParticles:    "clear particles",
	ActionRemoveSome:        "remove some",
	ActionRemoveWells:       "remove wells",
	ActionMassUp:            "mass up",
	ActionMassDown:          "mass down",
	ActionTrailUp:           "trail up",
	ActionTrailDown:         "trail down",
	ActionSpeedUp:           "speed up",
	ActionSpeedDown:         "speed down",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Session is one interactive run of a simulation. The host feeds it frame
// times, pointer input and actions, and draws whatever it likes in between;
// Session owns no window.
type Session struct {
	Sim     *sim.Simulation
	Ticker  *Ticker
	Emitter *spawn.Emitter
	Pointer *control.Pointer
	Frames  *metrics.FrameRate
}

func NewSession(s *sim.Simulation, t *Ticker, e *spawn.Emitter) *Session {
	if t == nil {
		t = NewTicker(DefaultStepMs, DefaultMaxUpdates)
	}
	return &Session{
		Sim:     s,
		Ticker:  t,
		Emitter: e,
		Pointer: control.NewPointer(s),
		Frames:  metrics.NewFrameRate(metrics.DefaultFrameWindow),
	}
}

// Frame records a displayed frame that took elapsedMs and runs the ticks it
// owes. While the pointer is spawning, each tick emits one batch of particles
// at the pointer after the update.
func (s *Session) Frame(elapsedMs float64) int {
	s.Frames.Frame(elapsedMs)
	return s.Ticker.Advance(elapsedMs, s.tick)
}

func (s *Session) tick(stepMs float64) {
	s.Sim.Update(stepMs)
	if s.Emitter != nil && s.Pointer.Spawning() {
		x, y := s.Pointer.Position()
		s.Emitter.Emit(s.Sim, x, y)
	}
}

func (s *Session) Do(a Action) {
	switch a {
	case ActionToggleBorders:
		s.Sim.SetBordersActive(!s.Sim.BordersActive())
	case ActionToggleClearScreen:
		s.Sim.SetShouldClearScreen(!s.Sim.ShouldClearScreen())
	case ActionToggleWellMass:
		s.Sim.SetUseWellMass(!s.Sim.UseWellMass())
	case ActionClearParticles:
		s.Sim.ClearParticles()
	case ActionRemoveSome:
		s.Sim.RemoveParticles(RemoveSomeCount)
	case ActionRemoveWells:
		s.Sim.RemoveAllWells()
	case ActionMassUp:
		s.Sim.SetGravityWellMass(min(s.Sim.GravityWellMass()+MassStep, MaxMass))
	case ActionMassDown:
		s.Sim.SetGravityWellMass(max(s.Sim.GravityWellMass()-MassStep, 0))
	case ActionTrailUp:
		s.Sim.SetParticleTrailScale(min(s.Sim.ParticleTrailScale()+TrailStep, MaxTrailScale))
	case ActionTrailDown:
		s.Sim.SetParticleTrailScale(max(s.Sim.ParticleTrailScale()-TrailStep, 0))
	case ActionSpeedUp:
		s.Ticker.SpeedUp()
	case ActionSpeedDown:
		s.Ticker.SpeedDown()
	}
}

// Status returns the session state as "label: value" lines, in display
// order, followed by any simulation metrics sorted by name.
func (s *Session) Status() []string {
	mean, minFPS, _ := s.Frames.Stats()
	massSource := "global"
	if s.Sim.UseWellMass() {
		massSource = "per well"
	}

	lines := []string{
		fmt.Sprintf("particles: %d", s.Sim.ParticleCount()),
		fmt.Sprintf("wells: %d", s.Sim.WellCount()),
		fmt.Sprintf("step: %d", s.Sim.Step()),
		fmt.Sprintf("speed: x%d", s.Ticker.Speed()),
		fmt.Sprintf("mass: %.0f (%s)", s.Sim.GravityWellMass(), massSource),
		fmt.Sprintf("trail: %.2f", s.Sim.ParticleTrailScale()),
		fmt.Sprintf("borders: %s", onOff(s.Sim.BordersActive())),
		fmt.Sprintf("clear screen: %s", onOff(s.Sim.ShouldClearScreen())),
		fmt.Sprintf("force law: %s", s.Sim.ForceLaw().Name),
		fmt.Sprintf("backend: %s", s.Sim.Backend().Name()),
		fmt.Sprintf("fps: avg %.0f min %.0f", mean, minFPS),
	}

	values := s.Sim.Metrics()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %.4g", name, values[name]))
	}
	return lines
}

// Report is Status as one block of text.
func (s *Session) Report() string {
	return strings.Join(s.Status(), "\n") + "\n"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
