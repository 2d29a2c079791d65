// Command reporter runs one sales reporting cycle: it picks up the
// latest forecast workbook, builds the quarterly pivot and budget
// reconciliation, writes one workbook per account executive and emails
// the reports. It is a batch job; a failed run is simply rerun.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salescli/internal/app"
	"salescli/internal/config"
	"salescli/internal/infrastructure"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	testMode := flag.Bool("test", false, "redirect all emails to the configured test address")
	noEmail := flag.Bool("no-email", false, "generate reports without sending any email")
	flag.Parse()

	if *testMode {
		os.Setenv("SALES_TEST_MODE", "true")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return exitConfig
	}
	if *noEmail {
		cfg.Email.Disabled = true
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		return exitError
	}
	defer infrastructure.CloseLogFile()

	if err := cfg.EnsureDirectories(); err != nil {
		logger.Error("failed to create directories", slog.String("error", err.Error()))
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to initialize application", slog.String("error", err.Error()))
		return exitError
	}

	summary, err := a.Run(ctx)
	if err != nil {
		logger.Error("reporting run failed",
			slog.String("run_id", summary.RunID),
			slog.String("error", err.Error()))
		return exitError
	}

	fmt.Printf("Run %s complete: %d files, %d emails, %s\n",
		summary.RunID, len(summary.FilesCreated), summary.EmailsSent,
		summary.Duration.Round(time.Millisecond))
	return exitOK
}
