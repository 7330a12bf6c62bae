package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alexanderramin/gradplan/internal/config"
	"github.com/alexanderramin/gradplan/internal/importer"
	"github.com/alexanderramin/gradplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Planner service.PlannerService
	Catalog service.CatalogService
	Status  service.StatusService
	History service.HistoryService

	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The bare command
	// opens the TUI only when it returns true.
	IsInteractive func() bool

	// WatchCatalog blocks until ctx is done, calling fn after every reload
	// of the catalog file. Nil disables live reload.
	WatchCatalog func(ctx context.Context, fn importer.CatalogReloadFunc) error

	// Bootstrap wires the services from the parsed flags before a command
	// runs. Tests leave it nil and fill the services directly.
	Bootstrap func(cmd *cobra.Command) error
	// Shutdown settles pending follow-ups and releases resources.
	Shutdown func() error
}

var errNotConfigured = errors.New("gradplan is not configured")

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) ready() error {
	if a.Planner == nil || a.Catalog == nil || a.Status == nil {
		return errNotConfigured
	}
	return nil
}

// NewRootCmd creates the top-level "gradplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "gradplan",
		Short:         "Plan remaining semesters against graduation credit requirements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap != nil {
				if err := app.Bootstrap(cmd); err != nil {
					return err
				}
			}
			return app.ready()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.Shutdown != nil {
				return app.Shutdown()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), app)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config.yaml or ~/.gradplan/config.yaml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newStatusCmd(app),
		newPlanCmd(app),
		newCatalogCmd(app),
		newRecommendCmd(app),
		newReportCmd(app),
	)

	return root
}
