package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/livalex/egraph/internal/server"
	"github.com/livalex/egraph/pkg/store"
)

// newServeCmd creates the serve command. It runs the JSON API backed by
// the configured graph store and shuts down cleanly on context
// cancellation.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Long: `Serve the existential graph API over HTTP.

Endpoints under /api/v1:
  POST   /parse                 canonicalize notation
  POST   /rules/{rule}/sites    list application sites
  POST   /rules/{rule}/apply    apply a rule at a site
  GET    /graphs                list stored graphs
  POST   /graphs                save a graph
  GET    /graphs/{name}         fetch a stored graph
  DELETE /graphs/{name}         remove a stored graph`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(configPathFromContext(ctx))
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}

			return withStore(ctx, func(st store.Store) error {
				srv := &http.Server{
					Addr:    addr,
					Handler: server.New(st, logger),
				}

				errCh := make(chan error, 1)
				go func() {
					logger.Info("listening", "addr", addr, "store", cfg.Store.Backend)
					errCh <- srv.ListenAndServe()
				}()

				select {
				case <-ctx.Done():
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					logger.Info("shutting down")
					if err := srv.Shutdown(shutdownCtx); err != nil {
						return err
					}
					return ctx.Err()
				case err := <-errCh:
					if errors.Is(err, http.ErrServerClosed) {
						return nil
					}
					return err
				}
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
