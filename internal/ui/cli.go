// Package ui provides the horario command line interface.
package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/db"
	"github.com/javiermolinar/horario/internal/lookup"
	"github.com/javiermolinar/horario/internal/timetable"
	"github.com/javiermolinar/horario/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  *db.SQLite // Opened on first use
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "horario",
		Short: "Build a weekly class timetable in the terminal",
		Long: `Horario lets you build a weekly class timetable slot by slot.

Pick a free slot, choose one of the course sections offered at that time,
and horario places every class of that section, refusing anything that
would overlap a section you already picked.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to horario-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.serveCmd())
	a.root.AddCommand(a.offeringsCmd())
	a.root.AddCommand(a.codesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "horario %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) runTUI() error {
	lk, err := a.lookup(context.Background())
	if err != nil {
		return err
	}
	session, err := timetable.NewSession(nil, a.config.Grid.Palette)
	if err != nil {
		return fmt.Errorf("creating timetable: %w", err)
	}
	return tui.RunWithDebug(session, lk, a.config, a.debug)
}

// lookup builds the configured section lookup. Local mode opens the
// catalog store, importing the configured source if the store is empty.
func (a *App) lookup(ctx context.Context) (timetable.Lookup, error) {
	opts := lookup.Options{
		Mode:    a.config.Lookup.Mode,
		BaseURL: a.config.Lookup.BaseURL,
		Timeout: a.config.LookupTimeout(),
	}
	if opts.Mode != lookup.ModeHTTP {
		if err := a.ensureStore(); err != nil {
			return nil, err
		}
		if err := a.seedStore(ctx); err != nil {
			return nil, err
		}
		opts.Finder = a.store
	}
	return lookup.NewClient(opts)
}

// ensureStore opens the catalog database if not already open.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	if dir := filepath.Dir(a.config.Catalog.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}
	}
	store, err := db.New(a.config.Catalog.DBPath)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	a.store = store
	return nil
}

func (a *App) seedStore(ctx context.Context) error {
	n, err := a.store.CountSections(ctx)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}
	if n > 0 || a.config.Catalog.Source == "" {
		return nil
	}
	_, err = importSections(ctx, a.store, a.config.Catalog.Source)
	return err
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the catalog store.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
