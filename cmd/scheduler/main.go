package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/medschedulr/roster/internal/cli"
	"github.com/medschedulr/roster/internal/engine"
	"github.com/medschedulr/roster/internal/solver"
	"github.com/medschedulr/roster/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.scheduler/scheduler.db
	dbPath := os.Getenv("SCHEDULER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".scheduler", "scheduler.db")
	}

	// Open database
	database, err := store.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	runRepo := store.NewSQLiteRunRepo(database)
	workloadRepo := store.NewSQLiteWorkloadLedgerRepo(database)

	var observer solver.SolveObserver = solver.NoopSolveObserver{}
	if envEnabled("SCHEDULER_LOG_SOLVES") {
		observer = solver.NewLogSolveObserver(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	oracle := solver.NewOrToolsOracle(observer)
	eng := engine.NewEngine(oracle)

	app := &cli.App{
		Schedule: eng,
		Runs:     runRepo,
		Workload: workloadRepo,
	}

	// Detect interactive terminal for commands that fall back to a
	// non-interactive path (e.g. the wizard refusing to run headless).
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func envEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
