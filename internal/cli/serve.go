package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/labkit/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd(root *rootOptions) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the labkit tools over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := server.Config{
				Addr:        root.cfg.Server.Addr,
				CorsOrigins: root.cfg.Server.CorsOrigins,
				Chart:       chartOptions(root.cfg.Iris),
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg).Run(ctx)
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (overrides [server].addr)")
	return c
}
