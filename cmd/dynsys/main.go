package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/dynsys/internal/analysis"
	"github.com/san-kum/dynsys/internal/config"
	"github.com/san-kum/dynsys/internal/evolve"
	"github.com/san-kum/dynsys/internal/physics"
	"github.com/san-kum/dynsys/internal/system"
	"github.com/san-kum/dynsys/internal/viz"
)

var (
	totalTime  float64
	dt         float64
	solverName string
	absTol     float64
	relTol     float64
	state      []float64
	configFile string
	preset     string

	outPath   string
	outFormat string
	component int
	frameRate int

	perturbation float64
	point        []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dynsys",
		Short: "evolve continuous dynamical systems",
	}

	evolveCmd := &cobra.Command{
		Use:   "evolve [system]",
		Short: "advance a system and print its final state",
		Args:  cobra.ExactArgs(1),
		RunE:  runEvolve,
	}
	addRunFlags(evolveCmd)

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory [system]",
		Short: "sample a system on a fixed time grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrajectory,
	}
	addRunFlags(trajectoryCmd)
	trajectoryCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	trajectoryCmd.Flags().StringVar(&outFormat, "format", "csv", "output format: csv or json")

	plotCmd := &cobra.Command{
		Use:   "plot [system]",
		Short: "plot one state component of a trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	addRunFlags(plotCmd)
	plotCmd.Flags().IntVar(&component, "component", 0, "state component index (-1 for all)")

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "step a system interactively with live rendering",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [system]",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.ExactArgs(1),
		RunE:  runLyapunov,
	}
	addRunFlags(lyapunovCmd)
	lyapunovCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial separation")

	stabilityCmd := &cobra.Command{
		Use:   "stability [system]",
		Short: "eigenvalues of the Jacobian at a fixed point",
		Args:  cobra.ExactArgs(1),
		RunE:  runStability,
	}
	stabilityCmd.Flags().Float64SliceVar(&point, "point", nil, "fixed point (default: origin)")

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list available systems",
		RunE:  listSystems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(evolveCmd, trajectoryCmd, plotCmd, liveCmd, lyapunovCmd, stabilityCmd, systemsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&totalTime, "time", config.DefaultTime, "integration horizon")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "trajectory sampling interval")
	cmd.Flags().StringVar(&solverName, "solver", "", "solver algorithm (default dp5)")
	cmd.Flags().Float64Var(&absTol, "abstol", 0, "absolute tolerance")
	cmd.Flags().Float64Var(&relTol, "reltol", 0, "relative tolerance")
	cmd.Flags().Float64SliceVar(&state, "state", nil, "initial state override")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset configuration name")
}

// resolveRun merges flags, preset, and config file into one run
// configuration. A preset replaces the flag values wholesale; an explicit
// config file wins over both.
func resolveRun(systemName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.System = systemName
	cfg.Time = totalTime
	cfg.Dt = dt
	cfg.Solver = solverName
	cfg.AbsTol = absTol
	cfg.RelTol = relTol
	cfg.State = state

	if preset != "" {
		p := config.GetPreset(systemName, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for system %q", preset, systemName)
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		cfg.System = systemName
	}
	return cfg, nil
}

func buildSystem(cfg *config.Config) (*system.System, error) {
	sys, err := physics.Lookup(cfg.System)
	if err != nil {
		return nil, err
	}
	if len(cfg.State) > 0 {
		if err := sys.SetState(cfg.State); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

func runEvolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(args[0])
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	final, err := evolve.Evolve(sys, cfg.Time, cfg.EvolveConfig())
	if err != nil {
		return err
	}

	parts := make([]string, len(final))
	for i, v := range final {
		parts[i] = fmt.Sprintf("%.8g", v)
	}
	fmt.Printf("%s after t=%g: [%s]\n", sys.Name(), cfg.Time, strings.Join(parts, ", "))
	return nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(args[0])
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	tr, err := evolve.Trajectory(sys, cfg.Time, cfg.Dt, cfg.EvolveConfig())
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch outFormat {
	case "csv":
		return tr.WriteCSV(out)
	case "json":
		return tr.EncodeJSON(out)
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", outFormat)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(args[0])
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	tr, err := evolve.Trajectory(sys, cfg.Time, cfg.Dt, cfg.EvolveConfig())
	if err != nil {
		return err
	}

	var graph string
	if component < 0 {
		graph, err = viz.PlotAll(tr, 80, 12)
	} else {
		graph, err = viz.Plot(tr, component, 80, 20)
	}
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(args[0])
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	it, err := evolve.NewIntegrator(sys, cfg.Time, cfg.EvolveConfig())
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(viz.NewLive(it, sys.Name(), frameRate)).Run()
	return err
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRun(args[0])
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	lambda, err := analysis.LyapunovExponent(sys, cfg.Time, cfg.Dt, perturbation, cfg.EvolveConfig())
	if err != nil {
		return err
	}
	fmt.Printf("largest Lyapunov exponent of %s over t=%g: %.6f\n", sys.Name(), cfg.Time, lambda)
	return nil
}

func runStability(cmd *cobra.Command, args []string) error {
	sys, err := physics.Lookup(args[0])
	if err != nil {
		return err
	}

	at := point
	if at == nil {
		at = make([]float64, sys.Dimension())
	}

	values, err := analysis.Stability(sys, at)
	if err != nil {
		return err
	}

	fmt.Printf("Jacobian eigenvalues of %s at %v:\n", sys.Name(), at)
	for _, v := range values {
		fmt.Printf("  %.6f %+.6fi\n", real(v), imag(v))
	}
	if analysis.IsStable(values) {
		fmt.Println("fixed point is linearly stable")
	} else {
		fmt.Println("fixed point is not linearly stable")
	}
	return nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tJACOBIAN")
	for _, name := range physics.Names() {
		sys, err := physics.Lookup(name)
		if err != nil {
			return err
		}
		_, hasJac := sys.Jacobian()
		fmt.Fprintf(w, "%s\t%d\t%v\n", name, sys.Dimension(), hasJac)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets(args[0])
	if names == nil {
		return fmt.Errorf("no presets for system %q", args[0])
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
