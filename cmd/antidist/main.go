// Command antidist samples random sets of d pure states in C^d and checks
// each one against the antidistinguishability conjecture.
//
// Usage:
//
//	antidist -d <dim> -i <iterations> [--seed N] [--timeout 1m] [--log-level info] [--short-circuit]
//
// One line per trial goes to stdout; logs (structured, tagged with a run id)
// go to stderr. At --log-level debug every SDP centering step is logged as
// well. A failed trial is logged and counted, never reported as a
// verdict.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/katalvlaran/antidist/oracle"
	"github.com/katalvlaran/antidist/quantum"
	"github.com/katalvlaran/antidist/sdp"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK          = 0
	exitInterrupted = 1
	exitUsage       = 2
)

// config holds the parsed command line.
type config struct {
	dim          int
	iterations   int
	seed         uint64
	timeout      time.Duration
	logLevel     string
	shortCircuit bool
}

// summary counts trial outcomes.
type summary struct {
	trials              int
	antidistinguishable int
	violations          int
	skipped             int
	failures            int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// parseFlags parses args; usage and errors are written to stderr.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet("antidist", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&cfg.dim, "dim", "d", 0, "dimension d of the pure states (d >= 2, required)")
	fs.IntVarP(&cfg.iterations, "iterations", "i", 0, "number of trials (>= 1, required)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "base RNG seed (0 = time-based, logged for replay)")
	fs.DurationVar(&cfg.timeout, "timeout", time.Minute, "per-trial SDP time limit (0 = none)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.shortCircuit, "short-circuit", false, "skip the SDP when the overlap inequality fails")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Utility to study the antidistinguishability of states.")
		fmt.Fprintln(stderr, "\nUsage: antidist -d <dim> -i <iterations> [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if !fs.Changed("dim") || !fs.Changed("iterations") {
		return cfg, errors.New("both -d and -i are required")
	}
	if cfg.dim < 2 {
		return cfg, fmt.Errorf("-d must be at least 2, got %d", cfg.dim)
	}
	if cfg.iterations < 1 {
		return cfg, fmt.Errorf("-i must be at least 1, got %d", cfg.iterations)
	}

	return cfg, nil
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "antidist:", err)
		return exitUsage
	}
	level, err := log.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "antidist:", err)
		return exitUsage
	}

	logger := log.NewWithOptions(stderr, log.Options{
		Level:           level,
		Prefix:          "antidist",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}).With("run", uuid.NewString())

	seed := cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "dim", cfg.dim, "iterations", cfg.iterations, "seed", seed,
		"timeout", cfg.timeout, "short_circuit", cfg.shortCircuit)

	opts := []oracle.Option{oracle.WithTimeout(cfg.timeout), oracle.WithShortCircuit(cfg.shortCircuit)}
	base := quantum.NewRNG(seed)
	started := time.Now()
	var sum summary

	for k := 1; k <= cfg.iterations; k++ {
		if ctx.Err() != nil {
			logger.Warn("interrupted", "completed", sum.trials, "of", cfg.iterations)
			logSummary(logger, sum, time.Since(started))
			return exitInterrupted
		}
		sum.trials++

		trialOpts := opts
		if level == log.DebugLevel {
			trialOpts = append(opts[:len(opts):len(opts)], solverTrace(logger, k))
		}
		v, err := trial(ctx, cfg.dim, quantum.DeriveRNG(base, uint64(k)), trialOpts)
		if err != nil {
			sum.failures++
			logger.Error("trial failed", "trial", k, "err", err)
			continue
		}

		ad := "skipped"
		switch {
		case !v.Solved:
			sum.skipped++
		case v.Antidistinguishable:
			sum.antidistinguishable++
			ad = "true"
		default:
			ad = "false"
		}
		if v.ConjectureViolated {
			sum.violations++
			logger.Warn("conjecture violated", "trial", k, "optimum", v.OptimalValue, "max_overlap", v.LargestOverlap)
		}
		logger.Debug("trial", "trial", k, "optimum", v.OptimalValue,
			"min_overlap", v.SmallestOverlap, "max_overlap", v.LargestOverlap)
		fmt.Fprintf(stdout, "Iteration %d out of %d. Is antidistinguishable: %s -- Is violated: %t\n",
			k, cfg.iterations, ad, v.ConjectureViolated)
	}

	logSummary(logger, sum, time.Since(started))

	return exitOK
}

// trial samples one state set from src and evaluates it.
func trial(ctx context.Context, dim int, src *rand.Rand, opts []oracle.Option) (oracle.Verdict, error) {
	o, err := oracle.NewRandom(dim, src, opts...)
	if err != nil {
		return oracle.Verdict{}, err
	}

	return o.Evaluate(ctx)
}

// solverTrace returns an oracle option whose solver logs every centering
// step of trial k at debug level.
func solverTrace(logger *log.Logger, k int) oracle.Option {
	return oracle.WithSolver(sdp.NewBarrierSolver(sdp.WithProgress(func(p sdp.Progress) {
		logger.Debug("sdp",
			"trial", k,
			"phase_one", p.PhaseOne,
			"outer", p.Outer,
			"t", p.T,
			"objective", p.Objective,
			"gap_bound", p.GapBound,
			"newton_steps", p.NewtonSteps)
	})))
}

// logSummary reports the run totals.
func logSummary(logger *log.Logger, s summary, elapsed time.Duration) {
	logger.Info("done",
		"trials", s.trials,
		"antidistinguishable", s.antidistinguishable,
		"violations", s.violations,
		"skipped", s.skipped,
		"failures", s.failures,
		"elapsed", elapsed.Round(time.Millisecond))
}
