package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/oscillab/internal/analysis"
	"github.com/san-kum/oscillab/internal/config"
	"github.com/san-kum/oscillab/internal/export"
	"github.com/san-kum/oscillab/internal/metrics"
	"github.com/san-kum/oscillab/internal/oscillator"
	"github.com/san-kum/oscillab/internal/sim"
	"github.com/san-kum/oscillab/internal/storage"
	"github.com/san-kum/oscillab/internal/viz"
)

var (
	dataDir      string
	mass         float64
	stiffness    float64
	displacement float64
	damping      float64
	duration     float64
	fps          int
	configFile   string
	preset       string
	sampleAt     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oscillab",
		Short: "damped harmonic oscillator lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".oscillab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation headless and store the series",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live spring visualization",
		RunE:  runLive,
	}
	addParamFlags(liveCmd)

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "evaluate the analytic solution at a single time",
		RunE:  samplePoint,
	}
	addParamFlags(sampleCmd)
	sampleCmd.Flags().Float64Var(&sampleAt, "at", 0.0, "time to sample (s)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "recover the damped frequency from a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, sampleCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg)")
	cmd.Flags().Float64Var(&stiffness, "stiffness", config.DefaultStiffness, "spring constant (N/m)")
	cmd.Flags().Float64Var(&displacement, "displacement", config.DefaultDisplacement, "initial displacement (m)")
	cmd.Flags().Float64Var(&damping, "damping", config.DefaultDamping, "damping coefficient (kg/s)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulation time (s)")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "tick rate")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveParams merges preset, config file and flags (flags win) into a
// validated parameter set.
func resolveParams(cmd *cobra.Command) (oscillator.Parameters, int, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return oscillator.Parameters{}, 0, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return oscillator.Parameters{}, 0, fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	p, err := oscillator.New(mass, stiffness, displacement, damping, duration)
	if err != nil {
		return oscillator.Parameters{}, 0, err
	}
	return p, fps, nil
}

func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("mass") {
		mass = cfg.Mass
	}
	if !cmd.Flags().Changed("stiffness") {
		stiffness = cfg.Stiffness
	}
	if !cmd.Flags().Changed("displacement") {
		displacement = cfg.Displacement
	}
	if !cmd.Flags().Changed("damping") {
		damping = cfg.Damping
	}
	if !cmd.Flags().Changed("time") {
		duration = cfg.Duration
	}
	if cfg.FPS != 0 && !cmd.Flags().Changed("fps") {
		fps = cfg.FPS
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	p, rate, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.NewRunner()
	runner.AddMetric(metrics.NewAvgEnergy())
	runner.AddMetric(metrics.NewPeakDisplacement())
	runner.AddMetric(metrics.NewDecayRatio())

	fmt.Println("running oscillator simulation...")
	start := time.Now()

	result, err := runner.Run(context.Background(), p, sim.Options{FPS: rate})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(p, rate, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", result.Series.Len())
	fmt.Println(result.Descriptor.Summary())

	if avg, ok := result.AvgTotalEnergy(); ok {
		fmt.Printf("avg total energy: %.2f J\n", avg)
	} else {
		fmt.Println("avg total energy: undefined (no samples)")
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	p, rate, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	desc, err := oscillator.Classify(p)
	if err != nil {
		return err
	}

	m := viz.NewModel(p, desc, rate)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func samplePoint(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	desc, err := oscillator.Classify(p)
	if err != nil {
		return err
	}

	s := oscillator.At(p, desc, sampleAt)
	fmt.Println(desc.Summary())
	fmt.Printf("t=%.4f  x=%.6f  v=%.6f  a=%.6f\n", s.T, s.X, s.V, s.A)
	fmt.Printf("ke=%.6f  pe=%.6f  te=%.6f\n", s.KE, s.PE, s.TE)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPHASE\tSAMPLES\tM\tK\tB\tDURATION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Phase,
			run.Samples,
			run.Parameters.Mass,
			run.Parameters.Stiffness,
			run.Parameters.Damping,
			run.Parameters.Duration,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if series.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", series.Len())

	plots := []struct {
		caption string
		data    []float64
	}{
		{"position (m)", series.Positions},
		{"velocity (m/s)", series.Velocities},
		{"acceleration (m/s²)", series.Accelerations},
		{"kinetic energy (J)", series.Kinetic},
		{"potential energy (J)", series.Potential},
		{"total energy (J)", series.Total},
	}

	for _, pl := range plots {
		graph := asciigraph.Plot(pl.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(pl.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if series.Len() < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	n := 1
	for n < series.Len() {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, series.Positions)

	ps := analysis.PowerSpectrum(padded)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (position)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(series.Positions, float64(meta.FPS))
	expected := meta.Descriptor.OmegaD / (2 * math.Pi)

	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	fmt.Printf("damped frequency ωd/2π: %.3f hz\n", expected)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return export.WriteCSV(os.Stdout, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, export.Document{
		ID:         meta.ID,
		Parameters: meta.Parameters,
		Descriptor: meta.Descriptor,
		Metrics:    meta.Metrics,
		Series:     series,
	})
}
