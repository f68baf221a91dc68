package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/trace"
	"github.com/inference-sim/disk-sim/sim/workload"
)

const defaultRequestsPath = "data/request.bin"

var (
	// CLI flags for the run command
	logLevel     string   // Log verbosity level
	configPath   string   // Optional YAML defaults file
	requestsPath string   // Request source (binary batch or YAML list)
	byteOrder    string   // Byte order of binary request files
	algorithms   []string // Algorithms to run, in report order
	startPolicy  string   // Fallback when no request pair brackets the head
	traceLevel   string   // Seek trace verbosity
	showSummary  bool     // Print the comparison table after the per-algorithm blocks
)

// errArgCount is reported when run is not given exactly a position and a direction.
var errArgCount = errors.New("this program requires two arguments: disk position (int) & head direction (LEFT or RIGHT)")

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sim",
	Short: "Disk-head scheduling simulator (FCFS, SCAN, C-SCAN)",
}

// runOptions is the validated configuration of one run.
type runOptions struct {
	RequestsPath string
	ByteOrder    string
	Algorithms   []string
	StartPolicy  sim.StartPolicy
	TraceLevel   trace.TraceLevel
	Summary      bool
}

// runCmd loads the request batch and reports every algorithm
var runCmd = &cobra.Command{
	Use:   "run <position> <direction>",
	Short: "Schedule the request batch with each algorithm",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errArgCount
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if configPath != "" {
			cfg, err := loadDefaultsConfig(configPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			applyRunDefaults(cmd, cfg.Run)
		}

		head, err := parseHeadState(args[0], args[1])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		opts := runOptions{
			RequestsPath: requestsPath,
			ByteOrder:    byteOrder,
			Algorithms:   algorithms,
			StartPolicy:  sim.StartPolicy(startPolicy),
			TraceLevel:   trace.TraceLevel(traceLevel),
			Summary:      showSummary,
		}
		if err := opts.validate(); err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Scheduling %s from cylinder %d moving %s with %v",
			opts.RequestsPath, head.Position, head.Direction, opts.Algorithms)
		if err := runSimulation(os.Stdout, opts, head); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// parseHeadState validates the position and direction arguments.
func parseHeadState(positionArg, directionArg string) (sim.HeadState, error) {
	position, err := strconv.Atoi(positionArg)
	if err != nil {
		return sim.HeadState{}, fmt.Errorf("invalid initial position (1st parameter) %q: not an integer", positionArg)
	}
	dir, err := sim.ParseDirection(directionArg)
	if err != nil {
		return sim.HeadState{}, fmt.Errorf("invalid initial direction (2nd parameter): %w", err)
	}
	head := sim.HeadState{Position: position, Direction: dir}
	if err := head.Validate(); err != nil {
		return sim.HeadState{}, fmt.Errorf("invalid initial position (1st parameter): %w", err)
	}
	return head, nil
}

func (o runOptions) validate() error {
	if len(o.Algorithms) == 0 {
		return fmt.Errorf("at least one algorithm is required")
	}
	for _, name := range o.Algorithms {
		if !sim.IsValidAlgorithm(name) {
			return fmt.Errorf("unknown algorithm %q; valid: %v", name, sim.DefaultAlgorithms)
		}
	}
	if !sim.ValidStartPolicies[string(o.StartPolicy)] {
		return fmt.Errorf("unknown start policy %q; valid: clamp, strict", o.StartPolicy)
	}
	if !trace.IsValidTraceLevel(string(o.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q; valid: none, seeks", o.TraceLevel)
	}
	if _, err := workload.ParseByteOrder(o.ByteOrder); err != nil {
		return err
	}
	return nil
}

// runSimulation loads the requests once and writes every algorithm's report to w.
func runSimulation(w io.Writer, opts runOptions, head sim.HeadState) error {
	order, err := workload.ParseByteOrder(opts.ByteOrder)
	if err != nil {
		return err
	}
	cylinders, err := workload.LoadRequests(opts.RequestsPath, order)
	if err != nil {
		return err
	}
	rs, err := sim.NewRequestSet(cylinders)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.RequestsPath, err)
	}

	st := trace.NewSimulationTrace(trace.TraceConfig{Level: opts.TraceLevel})
	results, err := sim.RunAll(rs, head, opts.Algorithms, opts.StartPolicy, st)
	if err != nil {
		return err
	}

	m := &sim.Metrics{Head: head, TotalRequests: rs.Len(), Results: results}
	m.Print(w)
	if opts.Summary {
		m.PrintSummary(w)
	}
	if st.Enabled() {
		printTraceSummary(w, trace.Summarize(st))
	}
	return nil
}

// printTraceSummary writes per-algorithm seek statistics, sorted by algorithm name.
// Writes nothing when the trace is empty.
func printTraceSummary(w io.Writer, summaries map[string]*trace.TraceSummary) {
	if len(summaries) == 0 {
		return
	}
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "=== Seek Trace Summary ===")
	for _, name := range names {
		s := summaries[name]
		fmt.Fprintf(w, "%-8s seeks=%d distance=%d max_seek=%d reversals=%d wraps=%d\n",
			sim.DisplayName(name), s.Seeks, s.TotalDistance, s.MaxSeek, s.Reversals, s.Wraps)
	}
}

// applyRunDefaults fills flags the user did not set from the defaults file.
func applyRunDefaults(cmd *cobra.Command, d RunDefaults) {
	flags := cmd.Flags()
	if d.Requests != "" && !flags.Changed("requests") {
		requestsPath = d.Requests
	}
	if d.ByteOrder != "" && !flags.Changed("byte-order") {
		byteOrder = d.ByteOrder
	}
	if len(d.Algorithms) > 0 && !flags.Changed("algorithms") {
		algorithms = d.Algorithms
	}
	if d.StartPolicy != "" && !flags.Changed("start-policy") {
		startPolicy = d.StartPolicy
	}
	if d.TraceLevel != "" && !flags.Changed("trace-level") {
		traceLevel = d.TraceLevel
	}
	if d.Summary != nil && !flags.Changed("summary") {
		showSummary = *d.Summary
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML defaults file")

	runCmd.Flags().StringVar(&requestsPath, "requests", defaultRequestsPath, "Request source: binary batch of int32 cylinders, or a .yaml request list")
	runCmd.Flags().StringVar(&byteOrder, "byte-order", "little", "Byte order of binary request files (little, big)")
	runCmd.Flags().StringSliceVar(&algorithms, "algorithms", sim.DefaultAlgorithms, "Comma-separated algorithms to run, in report order (fcfs, scan, c-scan)")
	runCmd.Flags().StringVar(&startPolicy, "start-policy", string(sim.StartPolicyClamp), "Start index when no request pair brackets the head (clamp, strict)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Seek trace level (none, seeks)")
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a head movement comparison table")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
