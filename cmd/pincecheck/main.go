package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pincecheck/internal/cli"
	"github.com/alexanderramin/pincecheck/internal/config"
	"github.com/alexanderramin/pincecheck/internal/db"
	"github.com/alexanderramin/pincecheck/internal/flow"
	"github.com/alexanderramin/pincecheck/internal/repository"
	"github.com/alexanderramin/pincecheck/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// The TUI owns the terminal, so use-case logs only go to a file.
	var observers []service.UseCaseObserver
	if cfg.LogFile != "" {
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		observers = append(observers, service.NewLogUseCaseObserver(logFile, level))
	}

	operators := service.NewOperatorService(repository.NewSQLiteOperatorRepo(database), observers...)

	policy, err := flow.ParseStalePolicy(cfg.StaleRemediation)
	if err != nil {
		return err
	}
	opts := []flow.Option{flow.WithStalePolicy(policy)}
	if cfg.LogTransitions {
		opts = append(opts, flow.WithObserver(service.UseCaseObserverOrNoop(observers)))
	}

	app := &cli.App{
		Flow:      flow.NewController(operators, opts...),
		Operators: operators,
		Config:    cfg,
	}

	// Detect interactive terminal for the TUI and password prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
