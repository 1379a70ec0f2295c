package ui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/horario/internal/server"
)

const shutdownTimeout = 5 * time.Second

func (a *App) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the section catalog over HTTP",
		Long: `Answer section queries from the local catalog over HTTP.

  GET /api/sections?day=Monday&slot=07:00
  GET /health

Point another horario at it with lookup.mode = "http".`,
		Example: `  horario serve
  horario serve --addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.config.Server.Addr
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := a.seedStore(ctx); err != nil {
				return err
			}
			n, err := a.store.CountSections(ctx)
			if err != nil {
				return fmt.Errorf("reading catalog: %w", err)
			}

			srv := server.New(addr, a.store)
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on %s\n", formatStats(plural(n, "section", "sections")), addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr)")
	return cmd
}
