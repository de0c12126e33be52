package sim_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravwell/internal/dynamo"
	"github.com/san-kum/gravwell/internal/sim"
)

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	BeforeEach(func() {
		s = sim.New(sim.DefaultParams(800, 600), rand.New(rand.NewPCG(42, 42)))
	})

	Describe("particle bookkeeping", func() {
		BeforeEach(func() {
			for i := 0; i < 20; i++ {
				s.SpawnParticle(float64(i), float64(i), 1, 1)
			}
		})

		It("counts spawned particles", func() {
			Expect(s.ParticleCount()).To(Equal(20))
		})

		DescribeTable("trimming from the front",
			func(k, want int) {
				s.RemoveParticles(k)
				Expect(s.ParticleCount()).To(Equal(want))
			},
			Entry("fewer than present", 5, 15),
			Entry("all of them", 20, 0),
			Entry("more than present", 99, 0),
		)

		It("empties on clear", func() {
			s.ClearParticles()
			Expect(s.ParticleCount()).To(BeZero())
			Expect(s.Particles()).To(BeEmpty())
		})
	})

	Describe("update", func() {
		It("only damps velocity for a zero delta", func() {
			s.SpawnParticle(10, 10, 20, -30)
			s.Update(0)

			p := s.Particles()[0]
			Expect(p.Pos).To(Equal(dynamo.Vec2{X: 10, Y: 10}))
			Expect(p.Vel.X).To(BeNumerically("~", 20*sim.DefaultDamping, 1e-12))
			Expect(p.Vel.Y).To(BeNumerically("~", -30*sim.DefaultDamping, 1e-12))
		})

		It("reflects off the right border and clamps", func() {
			s.SetBordersActive(true)
			s.SpawnParticle(810, 100, 5, 0)
			s.Update(16.7)

			p := s.Particles()[0]
			Expect(p.Vel.X).To(BeNumerically("<", 0))
			Expect(p.Pos.X).To(Equal(799.0))
		})

		It("treats identical particles identically", func() {
			s.SpawnGravityWell(400, 300)
			s.SpawnGravityWell(120, 80)
			s.SpawnParticle(250, 250, 3, -7)
			s.SpawnParticle(250, 250, 3, -7)

			for i := 0; i < 60; i++ {
				s.Update(16.7)
			}

			a, b := s.Particles()[0], s.Particles()[1]
			Expect(a.Pos).To(Equal(b.Pos))
			Expect(a.Vel).To(Equal(b.Vel))
		})

		It("pulls particles toward a well", func() {
			s.SpawnGravityWell(400, 300)
			s.SpawnParticle(100, 300, 0, 0)
			s.Update(16.7)

			Expect(s.Particles()[0].Vel.X).To(BeNumerically(">", 0))
			Expect(s.Particles()[0].Vel.Y).To(BeNumerically("~", 0, 1e-12))
		})
	})

	Describe("wells", func() {
		BeforeEach(func() {
			s.SpawnGravityWell(100, 100)
		})

		It("spawns with the spawn mass, unrotated and unselected", func() {
			w := s.Wells()[0]
			Expect(w.Mass).To(Equal(sim.DefaultWellSpawnMass))
			Expect(w.RotationDeg).To(BeZero())
			Expect(w.IsSelected).To(BeFalse())
		})

		It("hit-tests against the fixed radius", func() {
			Expect(s.TrySelecting(200, 200)).To(BeFalse())
			Expect(s.TrySelecting(100, 100)).To(BeTrue())
		})

		It("moves only selected wells", func() {
			Expect(s.TrySelecting(100, 100)).To(BeTrue())
			s.MoveSelectionTo(50, 50)
			Expect(s.Wells()[0].Pos).To(Equal(dynamo.Vec2{X: 50, Y: 50}))

			s.ReleaseSelection()
			s.MoveSelectionTo(300, 300)
			Expect(s.Wells()[0].Pos).To(Equal(dynamo.Vec2{X: 50, Y: 50}))
		})

		It("removes at most one well per call", func() {
			s.SpawnGravityWell(100, 100)
			s.TryRemoving(100, 100)
			Expect(s.Wells()).To(HaveLen(1))
		})
	})
})
