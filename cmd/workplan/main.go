package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/workplan/internal/cli"
	"github.com/alexanderramin/workplan/internal/config"
	"github.com/alexanderramin/workplan/internal/db"
	"github.com/alexanderramin/workplan/internal/repository"
	"github.com/alexanderramin/workplan/internal/service"
	"github.com/alexanderramin/workplan/internal/workplan"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg := config.LoadConfig()
	app := &cli.App{Config: &cfg}

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			err = errors.Join(err, closers[i].Close())
		}
	}()

	// Wiring waits for flag parsing, so --db, --log-file and friends apply.
	app.Wire = func(cfg config.Config) error {
		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if cfg.LogFile != "" {
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			closers = append(closers, logFile)
			observer = service.NewLogUseCaseObserver(logFile, level)
		}

		store := workplan.NewStore(workplan.Seed(), nil)
		app.Plan = service.NewPlanService(store, observer)

		if !cfg.HistoryEnabled {
			app.Exports = service.NewExportService(cfg.ExportDir, nil, nil, 0, observer)
			return nil
		}

		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		closers = append(closers, database)

		records := repository.NewSQLiteExportRecordRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)
		app.Exports = service.NewExportService(cfg.ExportDir, records, uow, cfg.HistoryLimit, observer)
		return nil
	}

	// Only open the dashboard by default when a person is at the keyboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
