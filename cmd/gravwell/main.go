package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravwell/internal/compute"
	"github.com/san-kum/gravwell/internal/config"
	"github.com/san-kum/gravwell/internal/export"
	"github.com/san-kum/gravwell/internal/gui"
	"github.com/san-kum/gravwell/internal/loop"
	"github.com/san-kum/gravwell/internal/metrics"
	"github.com/san-kum/gravwell/internal/sim"
	"github.com/san-kum/gravwell/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	debug      bool
	seed       int64
	particles  int
	wells      int
	borders    bool
	width      uint32
	height     uint32

	// headless
	theme  string
	frames int

	// snapshot
	steps      int
	outFile    string
	dots       bool
	energyFile string

	// bench
	counts      []int
	benchWells  int
	benchSteps  int
	benchWorker int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravwell",
		Short: "interactive particle simulation with gravity wells",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVar(&debug, "debug", false, "write a debug log to logs/gravwell.log")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&particles, "particles", config.DefaultInitialParticles, "initial particles")
	pf.IntVar(&wells, "wells", config.DefaultInitialWells, "initial gravity wells")
	pf.BoolVar(&borders, "borders", false, "reflect particles off the canvas edges")
	pf.Uint32Var(&width, "width", config.DefaultWidth, "canvas width")
	pf.Uint32Var(&height, "height", config.DefaultHeight, "canvas height")

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "run in the terminal without a GPU",
		RunE:  runHeadless,
	}
	headlessCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	headlessCmd.Flags().IntVar(&frames, "frames", 0, "run this many frames without a UI and print a report")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run a number of steps and write the frame as SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&steps, "steps", 300, "simulation steps before the snapshot")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "gravwell.svg", "output file")
	snapshotCmd.Flags().BoolVar(&dots, "dots", false, "render through the braille canvas instead of vector trails")
	snapshotCmd.Flags().StringVar(&energyFile, "energy", "", "also write the kinetic energy plot to this file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time Update on the serial and parallel backends",
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&counts, "counts", []int{1000, 10000, 100000}, "particle counts")
	benchCmd.Flags().IntVar(&benchWells, "bench-wells", 3, "gravity wells")
	benchCmd.Flags().IntVar(&benchSteps, "steps", 100, "updates per run")
	benchCmd.Flags().IntVar(&benchWorker, "workers", 0, "parallel workers (0 means one per CPU)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(headlessCmd, snapshotCmd, benchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to logs/gravwell.log in debug mode
// and discards it otherwise.
func setupLogging(debug bool) error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll("logs", 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join("logs", "gravwell.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return nil
}

// loadConfig resolves the config file or preset, then applies the flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	default:
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Simulation.Seed = seed
	}
	if flags.Changed("particles") {
		cfg.Simulation.InitialParticles = particles
	}
	if flags.Changed("wells") {
		cfg.Simulation.InitialWells = wells
	}
	if flags.Changed("borders") {
		cfg.Simulation.BordersActive = borders
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = width
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = height
	}
	return cfg, cfg.Validate()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := cfg.NewSession()
	if err != nil {
		return err
	}
	if frames <= 0 {
		return viz.Run(sess, theme)
	}

	energy := attachEnergy(sess.Sim, frames)
	start := time.Now()
	for i := 0; i < frames; i++ {
		sess.Frame(cfg.Loop.StepMs)
	}
	elapsed := time.Since(start)

	fmt.Print(sess.Report())
	fmt.Printf("wall: %v (%d frames)\n\n", elapsed.Round(time.Millisecond), frames)
	if vals := energy.Values(); len(vals) > 1 {
		fmt.Println(asciigraph.Plot(vals,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy")))
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := cfg.NewSimulation()
	if err != nil {
		return err
	}
	energy := attachEnergy(s, steps)

	for i := 0; i < steps; i++ {
		s.Update(cfg.Loop.StepMs)
	}

	var doc string
	if dots {
		c := viz.NewCanvas(int(cfg.Canvas.Width/8), int(cfg.Canvas.Height/16))
		s.SetRenderer(viz.NewCanvasRenderer(c, s.Width(), s.Height()))
		s.Render()
		doc = export.CanvasToSVG(c, 4, string(viz.Themes[0].Graph))
	} else {
		f := export.NewSVGFrame(s.Width(), s.Height())
		s.SetRenderer(f)
		s.Render()
		doc = f.String()
	}

	if err := os.WriteFile(outFile, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d particles, %d wells, step %d)\n", outFile, s.ParticleCount(), s.WellCount(), s.Step())

	if energyFile != "" {
		plot := export.SeriesToSVG(energy.Values(), 800, 300, "#ffb000")
		if plot == "" {
			return fmt.Errorf("snapshot: not enough steps for an energy plot")
		}
		if err := os.WriteFile(energyFile, []byte(plot), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", energyFile)
	}
	return nil
}

// attachEnergy records the kinetic energy after every step.
func attachEnergy(s *sim.Simulation, capacity int) *metrics.Series {
	ke := metrics.NewKineticEnergy()
	series := metrics.NewSeries(ke, max(capacity, 2))
	s.AddMetric(ke)
	s.AddObserver(series)
	return series
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	law, err := cfg.Law()
	if err != nil {
		return err
	}

	backends := []compute.Backend{
		compute.NewSerialBackend(),
		compute.NewCPUBackend(benchWorker, cfg.Compute.ParallelThreshold),
	}

	fmt.Printf("benchmarking %d updates, %d wells\n\n", benchSteps, benchWells)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTICLES\tBACKEND\tTIME\tUPDATES/SEC\tSPEEDUP")

	var speedups []float64
	for _, n := range counts {
		var serial time.Duration
		for i, b := range backends {
			s := sim.New(cfg.Params(), rand.New(rand.NewPCG(42, 1)))
			s.SetForceLaw(law)
			s.SetBackend(b)
			for _, p := range config.WellLayout(cfg.Canvas.Width, cfg.Canvas.Height, benchWells) {
				s.SpawnGravityWell(p[0], p[1])
			}
			s.InitializeParticles(n)

			start := time.Now()
			for j := 0; j < benchSteps; j++ {
				s.Update(loop.DefaultStepMs)
			}
			elapsed := time.Since(start)

			if i == 0 {
				serial = elapsed
			}
			speedup := serial.Seconds() / elapsed.Seconds()
			if i > 0 {
				speedups = append(speedups, speedup)
			}
			fmt.Fprintf(w, "%d\t%s\t%v\t%.0f\t%.2fx\n",
				n, b.Name(), elapsed.Round(time.Microsecond), float64(benchSteps)/elapsed.Seconds(), speedup)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(speedups) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(speedups,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("parallel speedup by particle count")))
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := "gravwell.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
