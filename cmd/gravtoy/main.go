package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravtoy/internal/analysis"
	"github.com/san-kum/gravtoy/internal/automation"
	"github.com/san-kum/gravtoy/internal/config"
	"github.com/san-kum/gravtoy/internal/dynamo"
	"github.com/san-kum/gravtoy/internal/experiment"
	"github.com/san-kum/gravtoy/internal/export"
	"github.com/san-kum/gravtoy/internal/gui"
	"github.com/san-kum/gravtoy/internal/logging"
	"github.com/san-kum/gravtoy/internal/optim"
	"github.com/san-kum/gravtoy/internal/sim"
	"github.com/san-kum/gravtoy/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	logLevel   string

	ticks      int
	tickRate   int
	jsonOut    string
	csvOut     string
	svgOut     string
	showOrbit  bool
	controller string
	progress   int

	configOut string

	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int

	trials       int
	perturbation float64

	tuneParams []string
	tuneMetric string
)

// main registers the commands and opens the window when no subcommand is
// given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "gravtoy",
		Short:        "rocket and planet gravity toy",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, newLogger())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for exhaust particles")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $"+logging.EnvLevel)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report orbit metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().IntVar(&tickRate, "tick-rate", config.DefaultTickRate, "simulated ticks per second")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write the trace as JSON")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write the trace as CSV")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the orbit as SVG")
	runCmd.Flags().BoolVar(&showOrbit, "orbit", false, "print an ASCII orbit plot")
	runCmd.Flags().StringVar(&controller, "controller", "schedule", "controller (none, schedule)")
	runCmd.Flags().IntVar(&progress, "progress", 0, "log progress every N ticks (0 disables)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run across a range of one parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "rocket.vx", "parameter to sweep ("+strings.Join(config.ParamNames(), ", ")+")")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.3, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.2, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "jitter the initial velocity and count bound orbits",
		Args:  cobra.NoArgs,
		RunE:  runMonteCarlo,
	}
	monteCarloCmd.Flags().IntVar(&trials, "trials", 50, "number of trials")
	monteCarloCmd.Flags().Float64Var(&perturbation, "perturbation", 0.1, "max velocity jitter per axis")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search parameters to minimize a metric",
		Args:  cobra.NoArgs,
		RunE:  runTune,
	}
	tuneCmd.Flags().StringArrayVar(&tuneParams, "param", []string{"rocket.vx=0.5:1.0:11"}, "name=min:max:steps, repeatable")
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "eccentricity", "metric to minimize")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of configurations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	for _, c := range []*cobra.Command{sweepCmd, monteCarloCmd, tuneCmd} {
		c.Flags().StringVar(&controller, "controller", "schedule", "controller (none, schedule)")
		c.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "fly the rocket in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg, newLogger())
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-8s %s\n", name, config.Descriptions[name])
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	configCmd.Flags().StringVarP(&configOut, "out", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(runCmd, tuiCmd, presetsCmd, configCmd, sweepCmd, monteCarloCmd, tuneCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *logging.Logger {
	if logLevel == "" {
		return logging.FromEnv()
	}
	return logging.New(os.Stderr, logging.ParseLevel(logLevel))
}

// loadConfig layers defaults, preset, config file and flags in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Sim.Ticks = ticks
	}
	if flags.Changed("tick-rate") {
		cfg.Sim.TickRate = tickRate
	}
	if cfg.Sim.Seed == 0 || flags.Changed("seed") {
		cfg.Sim.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger().With("preset", preset, "seed", cfg.Sim.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exp, err := experiment.New(cfg, experiment.NewRegistry(), controller)
	if err != nil {
		return err
	}

	if progress > 0 {
		exp.Simulator().AddObserver(experiment.ProgressObserver(log, progress))
	}

	log.Info("run started", "ticks", cfg.Sim.Ticks, "controller", controller, "burns", len(cfg.Burns))
	start := time.Now()
	result, err := exp.Run(ctx)
	if err != nil {
		log.Error("run failed", err)
		return err
	}
	log.Info("run finished", "ticks", result.TicksTaken, "elapsed", time.Since(start))

	printMetrics(result, exp.ScheduledBurnTicks())
	printDistancePlot(result)
	printPeriod(result, cfg.Sim.TickRate)

	if showOrbit {
		focus := result.Final.Planet.Center()
		fmt.Println()
		fmt.Println(analysis.OrbitToASCII(result.Positions, &focus, 72, 30))
	}

	return writeExports(cfg, result, log)
}

func printMetrics(result *sim.Result, scheduledBurns int) {
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	final := result.Final
	fmt.Fprintf(w, "final_distance\t%.4f\n", final.Distance)
	fmt.Fprintf(w, "final_speed\t%.4f\n", final.Speed)
	fmt.Fprintf(w, "trail_points\t%d\n", final.TrailLen)
	fmt.Fprintf(w, "scheduled_burn_ticks\t%d\n", scheduledBurns)
	w.Flush()
}

func printDistancePlot(result *sim.Result) {
	if len(result.Distances) < 2 {
		return
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(result.Distances,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("distance to planet"),
	))
}

func printPeriod(result *sim.Result, rate int) {
	period, ok := analysis.DominantPeriod(result.Distances)
	if !ok {
		fmt.Println("\nno dominant period")
		return
	}
	fmt.Printf("\ndominant period: %.1f ticks (%.2fs)\n", period, period/float64(rate))
}

func writeExports(cfg *config.Config, result *sim.Result, log *logging.Logger) error {
	if jsonOut != "" {
		f, err := os.Create(jsonOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteJSON(f, export.NewTrace(preset, cfg.Sim.Seed, cfg.Sim.TickRate, result)); err != nil {
			return err
		}
		log.Info("trace written", "path", jsonOut, "format", "json")
	}

	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteCSV(f, result); err != nil {
			return err
		}
		log.Info("trace written", "path", csvOut, "format", "csv")
	}

	if svgOut != "" {
		view := dynamo.Rect{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
		svg := export.OrbitToSVG(result.Positions, cfg.Planet.Rect(), view, cfg.Window.Width, cfg.Window.Height, "#00cc66")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		log.Info("orbit written", "path", svgOut, "format", "svg")
	}
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if configOut != "" {
		if err := config.Save(configOut, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configOut)
		return nil
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger().With("param", sweepParam)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sweep := &automation.ParameterSweep{
		Param:      sweepParam,
		Min:        sweepMin,
		Max:        sweepMax,
		Steps:      sweepSteps,
		Controller: controller,
	}
	log.Info("sweep started", "min", sweepMin, "max", sweepMax, "steps", sweepSteps)
	results, err := automation.RunSweep(ctx, cfg, sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tPERIAPSIS\tAPOAPSIS\tECCENTRICITY\tBOUND\n", strings.ToUpper(sweepParam))
	periapses := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%.4f\terror: %v\t\t\t\n", r.ParamValue, r.Err)
			log.Warn("sweep point failed", "value", r.ParamValue, "error", r.Err)
			continue
		}
		periapses = append(periapses, r.Metrics["periapsis"])
		fmt.Fprintf(w, "%.4f\t%.2f\t%.2f\t%.4f\t%.2f\n",
			r.ParamValue, r.Metrics["periapsis"], r.Metrics["apoapsis"], r.Metrics["eccentricity"], r.Metrics["bound"])
	}
	w.Flush()

	if len(periapses) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(periapses,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("periapsis by "+sweepParam),
		))
	}
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger().With("seed", cfg.Sim.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mc := &automation.MonteCarloConfig{
		Trials:       trials,
		Perturbation: perturbation,
		Seed:         cfg.Sim.Seed,
		Controller:   controller,
	}
	log.Info("monte carlo started", "trials", trials, "perturbation", perturbation)
	results, err := automation.RunMonteCarlo(ctx, cfg, mc, experiment.NewRegistry())
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			log.Warn("trial failed", "trial", r.TrialID, "error", r.Err)
		}
	}
	bound, unbound := automation.MonteCarloStats(results)
	fmt.Printf("Trials:  %d\n", len(results))
	fmt.Printf("Bound:   %d (%.1f%%)\n", bound, 100*float64(bound)/float64(len(results)))
	fmt.Printf("Unbound: %d\n", unbound)
	return nil
}

// parseRange reads name=min:max:steps.
func parseRange(spec string) (string, []float64, error) {
	name, rng, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid range %q: want name=min:max:steps", spec)
	}
	var lo, hi float64
	var n int
	if _, err := fmt.Sscanf(rng, "%g:%g:%d", &lo, &hi, &n); err != nil {
		return "", nil, fmt.Errorf("invalid range %q: %w", spec, err)
	}
	if n < 1 {
		return "", nil, fmt.Errorf("invalid range %q: steps must be positive", spec)
	}
	return name, optim.Linspace(lo, hi, n), nil
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger().With("metric", tuneMetric)

	names := make([]string, 0, len(tuneParams))
	ranges := make([][]float64, 0, len(tuneParams))
	for _, spec := range tuneParams {
		name, values, err := parseRange(spec)
		if err != nil {
			return err
		}
		if _, err := cfg.Param(name); err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry := experiment.NewRegistry()
	build := func(params map[string]float64) (*experiment.Experiment, error) {
		c := cfg.Clone()
		for name, v := range params {
			if err := c.SetParam(name, v); err != nil {
				return nil, err
			}
		}
		return experiment.New(c, registry, controller)
	}

	log.Info("search started", "params", names)
	best, value, err := optim.NewGridSearch(names, ranges).Search(ctx, build, tuneMetric)
	if err != nil {
		return err
	}

	fmt.Printf("best %s: %.6f\n", tuneMetric, value)
	for _, name := range names {
		fmt.Printf("  %s = %.4f\n", name, best[name])
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunScenario(ctx, scenario, cfg, experiment.NewRegistry(), newLogger())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTICKS\tPERIAPSIS\tAPOAPSIS\tFINAL_DISTANCE")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
			r.Name, r.Result.TicksTaken, r.Result.Metrics["periapsis"], r.Result.Metrics["apoapsis"], r.Result.Final.Distance)
	}
	w.Flush()
	return nil
}
