package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/alexanderramin/gradplan/internal/cli"
	"github.com/alexanderramin/gradplan/internal/config"
	"github.com/alexanderramin/gradplan/internal/db"
	"github.com/alexanderramin/gradplan/internal/importer"
	"github.com/alexanderramin/gradplan/internal/logging"
	"github.com/alexanderramin/gradplan/internal/repository"
	"github.com/alexanderramin/gradplan/internal/service"
	"github.com/alexanderramin/gradplan/internal/store"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.Bootstrap = func(cmd *cobra.Command) error {
		return wire(cmd, app)
	}

	rootCmd := cli.NewRootCmd(app)
	err := rootCmd.ExecuteContext(ctx)

	// Shutdown is idempotent; PersistentPostRunE only runs after success.
	if app.Shutdown != nil {
		err = errors.Join(err, app.Shutdown())
	}
	return err
}

// wire resolves configuration from the parsed flags and builds every
// service the commands use.
func wire(cmd *cobra.Command, app *cli.App) error {
	ctx := cmd.Context()

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	inputs, err := importer.LoadInputs(ctx, cfg.CatalogPath, cfg.CompletedPath)
	if err != nil {
		database.Close()
		return fmt.Errorf("loading inputs: %w", err)
	}
	if inputs.Catalog == nil {
		logger.InfoContext(ctx, "course catalog not found, waiting for it", "path", cfg.CatalogPath)
	}

	// Wire repositories and the plan store
	kvRepo := repository.NewSQLiteKVRepo(database)
	eventRepo := repository.NewSQLitePlanEventRepo(database)
	planStore := store.NewKVPlanStore(kvRepo, logger)

	// Wire unit of work for the event log
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	planner := service.NewPlannerService(ctx, planStore, service.PlannerOptions{
		SpanCourse:    cfg.SpanCourse,
		FollowUpDelay: cfg.FollowUpDelay,
	}, service.NewLogUseCaseObserver(logger))
	planner.Subscribe(service.NewEventLogListener(uow, cfg.EventRetention, logger))

	catalogSvc := service.NewCatalogService(inputs.Catalog, planner)

	app.Planner = planner
	app.Catalog = catalogSvc
	app.Status = service.NewStatusService(planner, catalogSvc, inputs.Completed)
	app.History = service.NewHistoryService(eventRepo)
	app.Logger = logger

	if cfg.WatchCatalog {
		catalogPath := cfg.CatalogPath
		app.WatchCatalog = func(ctx context.Context, fn importer.CatalogReloadFunc) error {
			return importer.WatchCatalog(ctx, catalogPath, importer.DefaultWatchDebounce, logger, fn)
		}
	}

	var once sync.Once
	var shutdownErr error
	app.Shutdown = func() error {
		once.Do(func() {
			// Pending follow-ups are applied before exit so no auto-add is lost.
			settleErr := planner.Settle(context.Background())
			shutdownErr = errors.Join(settleErr, planner.Close(), database.Close())
		})
		return shutdownErr
	}

	return nil
}
