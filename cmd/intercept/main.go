package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"

	"github.com/lixenwraith/intercept/parameter"
	"github.com/lixenwraith/intercept/scenario"
)

const (
	logDir      = "logs"
	logFileName = "intercept.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	planFlag    = flag.String("plan", "", "Scenario plan TOML file (default: built-in scenarios)")
	workersFlag = flag.Int("workers", parameter.DefaultWorkers, "Parallel solvers, 0 = GOMAXPROCS")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+filepath.Join(logDir, logFileName))
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "intercept crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *planFlag, *workersFlag); err != nil {
		slog.ErrorContext(ctx, "intercept failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, planPath string, workers int) error {
	plan := scenario.Default()
	if planPath != "" {
		var err error
		if plan, err = scenario.Load(planPath); err != nil {
			return err
		}
	}
	slog.InfoContext(ctx, "plan loaded",
		"scenarios", len(plan.Scenarios),
		"max_time", plan.Search.MaxTime,
		"time_step", plan.Search.TimeStep,
	)

	results, err := scenario.Run(ctx, plan, workers)
	if err != nil {
		return err
	}

	for _, res := range results {
		r := res.Report
		if err := r.Err(); err != nil {
			slog.WarnContext(ctx, "no firing solution",
				"name", res.Name,
				"policy", res.Policy,
				"candidates", r.Candidates,
				"reachable", r.Reachable,
				"err", err,
			)
			continue
		}
		slog.InfoContext(ctx, "firing solution",
			"name", res.Name,
			"policy", res.Policy,
			"angle", r.Solution.Angle,
			"time", r.Solution.Time,
			"aim_x", r.Aim.X,
			"aim_y", r.Aim.Y,
		)
	}
	return nil
}

// setupLogging installs the default slog logger
// Without debug, Info and above go to stderr and nil is returned
// With debug, everything goes to logs/intercept.log, rotated to .old past maxLogSize; caller closes the file
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}
