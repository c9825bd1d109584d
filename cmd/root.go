package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/crossing-sim/crossing-sim/sim"
	"github.com/crossing-sim/crossing-sim/sim/trace"
)

// runOptions holds the flags of the run and validate commands.
type runOptions struct {
	scenarioPath string // YAML scenario; empty runs the built-in reference scenario
	logLevel     string // log verbosity level
	cargoPolicy  string // "stay" or "board"
	maxSteps     int    // step limit before the run is declared stalled
	capacity     int    // max combined weight per crossing
	summary      bool   // print the trace summary after the trace
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:          "crossing-sim",
		Short:        "Greedy simulator for the capacity-constrained river crossing puzzle",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log", getEnv(envLogLevel, "error"), "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&opts.scenarioPath, "scenario", getEnv(envScenario, ""), "Path to a YAML scenario (default: built-in reference scenario)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(opts.logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	}

	// runCmd executes the simulation and prints the trace
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the crossing simulation and print its trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(opts.scenarioPath)
			if err != nil {
				return err
			}
			applyOverrides(cmd, opts, scenario)
			return runScenario(cmd.OutOrStdout(), scenario, opts.summary)
		},
	}
	runCmd.Flags().StringVar(&opts.cargoPolicy, "cargo-policy", "", "Whether the cargo may board: stay or board (overrides the scenario)")
	runCmd.Flags().IntVar(&opts.maxSteps, "max-steps", sim.DefaultMaxSteps, "Step limit before the run is declared stalled (overrides the scenario)")
	runCmd.Flags().IntVar(&opts.capacity, "capacity", sim.DefaultCapacity, "Max combined weight per crossing (overrides the scenario)")
	runCmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a summary after the trace")

	// validateCmd checks a scenario without running it
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(opts.scenarioPath)
			if err != nil {
				return err
			}
			cfg := scenario.Config()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "scenario OK: %d people, cargo %d, capacity %d, cargo policy %s, max steps %d\n",
				len(scenario.People), scenario.Cargo.Weight, cfg.Capacity, cfg.CargoPolicy, cfg.MaxSteps)
			return err
		},
	}

	rootCmd.AddCommand(runCmd, validateCmd)
	return rootCmd
}

// loadScenario reads the scenario at path, or returns the reference scenario when path is empty.
func loadScenario(path string) (*sim.Scenario, error) {
	if path == "" {
		logrus.Debug("no scenario given, using the reference scenario")
		return sim.ReferenceScenario(), nil
	}
	return sim.LoadScenario(path)
}

// applyOverrides copies explicitly set flags onto the scenario.
func applyOverrides(cmd *cobra.Command, opts *runOptions, scenario *sim.Scenario) {
	if cmd.Flags().Changed("cargo-policy") {
		scenario.CargoPolicy = sim.CargoPolicy(opts.cargoPolicy)
	}
	if cmd.Flags().Changed("max-steps") {
		scenario.MaxSteps = opts.maxSteps
	}
	if cmd.Flags().Changed("capacity") {
		scenario.Capacity = opts.capacity
	}
}

// runScenario runs the simulation and writes the trace, one line per record.
// The partial trace is written even when the run fails.
func runScenario(out io.Writer, scenario *sim.Scenario, withSummary bool) error {
	log := logrus.WithField("run", uuid.NewString())

	s, err := sim.NewSimulator(scenario)
	if err != nil {
		return err
	}
	cfg := s.Config()
	log.Infof("Starting simulation with %d people, capacity=%d, cargoPolicy=%s, maxSteps=%d",
		len(scenario.People), cfg.Capacity, cfg.CargoPolicy, cfg.MaxSteps)

	tr, runErr := s.Run()
	for _, line := range tr.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	summary := trace.Summarize(tr)
	log.WithField("returnsByName", summary.ReturnsByName).Infof("Simulation finished: steps=%d crossings=%d returns=%d maxLoad=%d",
		summary.Steps, summary.Crossings, summary.Returns, summary.MaxLoad)
	if withSummary {
		if err := printSummary(out, summary); err != nil {
			return err
		}
	}
	return runErr
}

// printSummary writes the summary block in a single write so a failing writer is
// reported the same way as a failing trace line.
func printSummary(out io.Writer, summary *trace.TraceSummary) error {
	var b strings.Builder
	b.WriteString("=== Crossing Summary ===\n")
	fmt.Fprintf(&b, "steps: %d\n", summary.Steps)
	fmt.Fprintf(&b, "crossings: %d (pairs %d, solo %d)\n", summary.Crossings, summary.PairCrossings, summary.SoloCrossings)
	fmt.Fprintf(&b, "returns: %d\n", summary.Returns)
	if len(summary.ReturnsByName) > 0 {
		counts := make([]string, 0, len(summary.ReturnsByName))
		for _, name := range slices.Sorted(maps.Keys(summary.ReturnsByName)) {
			counts = append(counts, fmt.Sprintf("%s %d", name, summary.ReturnsByName[name]))
		}
		fmt.Fprintf(&b, "returns by person: %s\n", strings.Join(counts, ", "))
	}
	fmt.Fprintf(&b, "max load: %d\n", summary.MaxLoad)
	_, err := io.WriteString(out, b.String())
	return err
}

// Execute runs the CLI root command
func Execute() {
	loadDotEnv()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
