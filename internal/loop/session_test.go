package loop

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/san-kum/gravwell/internal/control"
	"github.com/san-kum/gravwell/internal/metrics"
	"github.com/san-kum/gravwell/internal/sim"
	"github.com/san-kum/gravwell/internal/spawn"
)

func newSession() *Session {
	rng := rand.New(rand.NewPCG(1, 2))
	s := sim.New(sim.DefaultParams(800, 600), rng)
	return NewSession(s, nil, spawn.NewDefaultEmitter(rand.New(rand.NewPCG(3, 4))))
}

func TestSessionSpawnsWhilePointerHeld(t *testing.T) {
	s := newSession()

	if n := s.Frame(DefaultStepMs); n != 1 {
		t.Fatalf("expected 1 tick, got %d", n)
	}
	if got := s.Sim.ParticleCount(); got != 0 {
		t.Fatalf("expected no particles before press, got %d", got)
	}

	s.Pointer.Down(control.ButtonLeft, 100, 100, false)
	s.Frame(2 * DefaultStepMs)
	if got := s.Sim.ParticleCount(); got != 2*spawn.DefaultRate {
		t.Errorf("expected %d particles after two ticks, got %d", 2*spawn.DefaultRate, got)
	}
	for _, p := range s.Sim.Particles() {
		if p.Pos.X < 94 || p.Pos.X > 106 || p.Pos.Y < 94 || p.Pos.Y > 106 {
			t.Errorf("particle strayed from the spawn point: %+v", p.Pos)
		}
	}

	s.Pointer.Up(control.ButtonLeft)
	s.Frame(DefaultStepMs)
	if got := s.Sim.ParticleCount(); got != 2*spawn.DefaultRate {
		t.Errorf("expected spawning to stop on release, got %d particles", got)
	}
}

func TestSessionCtrlClickSpawnsWell(t *testing.T) {
	s := newSession()
	s.Pointer.Down(control.ButtonLeft, 300, 200, true)
	s.Pointer.Up(control.ButtonLeft)
	if s.Sim.WellCount() != 1 {
		t.Fatalf("expected 1 well, got %d", s.Sim.WellCount())
	}

	s.Pointer.Down(control.ButtonRight, 305, 205, false)
	if s.Sim.WellCount() != 0 {
		t.Errorf("expected right click to remove the well, got %d", s.Sim.WellCount())
	}
}

func TestSessionFrameRecordsFPS(t *testing.T) {
	s := newSession()
	s.Frame(20)
	s.Frame(40)
	mean, minFPS, _ := s.Frames.Stats()
	if mean != 37.5 || minFPS != 25 {
		t.Errorf("expected mean 37.5 min 25, got %f %f", mean, minFPS)
	}
}

func TestSessionActions(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		setup  func(*Session)
		check  func(*testing.T, *Session)
	}{
		{
			"toggle borders", ActionToggleBorders, nil,
			func(t *testing.T, s *Session) {
				if !s.Sim.BordersActive() {
					t.Error("expected borders on")
				}
			},
		},
		{
			"toggle clear screen", ActionToggleClearScreen, nil,
			func(t *testing.T, s *Session) {
				if s.Sim.ShouldClearScreen() {
					t.Error("expected clear screen off")
				}
			},
		},
		{
			"toggle well mass", ActionToggleWellMass, nil,
			func(t *testing.T, s *Session) {
				if !s.Sim.UseWellMass() {
					t.Error("expected per-well mass")
				}
			},
		},
		{
			"remove some", ActionRemoveSome,
			func(s *Session) { s.Sim.InitializeParticles(300) },
			func(t *testing.T, s *Session) {
				if got := s.Sim.ParticleCount(); got != 50 {
					t.Errorf("expected 50 particles, got %d", got)
				}
			},
		},
		{
			"remove some clamps", ActionRemoveSome,
			func(s *Session) { s.Sim.InitializeParticles(100) },
			func(t *testing.T, s *Session) {
				if got := s.Sim.ParticleCount(); got != 0 {
					t.Errorf("expected 0 particles, got %d", got)
				}
			},
		},
		{
			"clear particles", ActionClearParticles,
			func(s *Session) { s.Sim.InitializeParticles(10) },
			func(t *testing.T, s *Session) {
				if got := s.Sim.ParticleCount(); got != 0 {
					t.Errorf("expected 0 particles, got %d", got)
				}
			},
		},
		{
			"remove wells", ActionRemoveWells,
			func(s *Session) {
				s.Sim.SpawnGravityWell(10, 10)
				s.Sim.SpawnGravityWell(100, 100)
			},
			func(t *testing.T, s *Session) {
				if got := s.Sim.WellCount(); got != 0 {
					t.Errorf("expected 0 wells, got %d", got)
				}
			},
		},
		{
			"mass up", ActionMassUp, nil,
			func(t *testing.T, s *Session) {
				if got := s.Sim.GravityWellMass(); got != sim.DefaultGravityWellMass+MassStep {
					t.Errorf("expected mass %f, got %f", sim.DefaultGravityWellMass+MassStep, got)
				}
			},
		},
		{
			"mass up clamps", ActionMassUp,
			func(s *Session) { s.Sim.SetGravityWellMass(MaxMass - 1) },
			func(t *testing.T, s *Session) {
				if got := s.Sim.GravityWellMass(); got != MaxMass {
					t.Errorf("expected mass %f, got %f", MaxMass, got)
				}
			},
		},
		{
			"mass down clamps", ActionMassDown,
			func(s *Session) { s.Sim.SetGravityWellMass(5) },
			func(t *testing.T, s *Session) {
				if got := s.Sim.GravityWellMass(); got != 0 {
					t.Errorf("expected mass 0, got %f", got)
				}
			},
		},
		{
			"trail down clamps", ActionTrailDown,
			func(s *Session) { s.Sim.SetParticleTrailScale(0.01) },
			func(t *testing.T, s *Session) {
				if got := s.Sim.ParticleTrailScale(); got != 0 {
					t.Errorf("expected trail 0, got %f", got)
				}
			},
		},
		{
			"trail up clamps", ActionTrailUp,
			func(s *Session) { s.Sim.SetParticleTrailScale(0.99) },
			func(t *testing.T, s *Session) {
				if got := s.Sim.ParticleTrailScale(); got != MaxTrailScale {
					t.Errorf("expected trail %f, got %f", MaxTrailScale, got)
				}
			},
		},
		{
			"speed up", ActionSpeedUp, nil,
			func(t *testing.T, s *Session) {
				if got := s.Ticker.Speed(); got != 2 {
					t.Errorf("expected speed 2, got %d", got)
				}
			},
		},
		{
			"speed down stays at one", ActionSpeedDown, nil,
			func(t *testing.T, s *Session) {
				if got := s.Ticker.Speed(); got != 1 {
					t.Errorf("expected speed 1, got %d", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession()
			if tt.setup != nil {
				tt.setup(s)
			}
			s.Do(tt.action)
			tt.check(t, s)
		})
	}
}

func TestSessionReport(t *testing.T) {
	s := newSession()
	s.Sim.AddMetric(metrics.NewKineticEnergy())
	s.Sim.InitializeParticles(12)
	s.Sim.SpawnGravityWell(400, 300)
	s.Frame(DefaultStepMs)

	report := s.Report()
	for _, want := range []string{
		"particles: 12\n",
		"wells: 1\n",
		"step: 1\n",
		"speed: x1\n",
		"mass: 90 (global)\n",
		"borders: off\n",
		"clear screen: on\n",
		"backend: serial\n",
		"kinetic_energy: ",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if !strings.HasSuffix(report, "\n") {
		t.Error("expected report to end with a newline")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionRemoveSome.String(); got != "remove some" {
		t.Errorf("expected %q, got %q", "remove some", got)
	}
	if got := Action(99).String(); got != "action(99)" {
		t.Errorf("expected %q, got %q", "action(99)", got)
	}
}
