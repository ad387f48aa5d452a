package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ropa/arrear-calculator/internal/api"
	"github.com/ropa/arrear-calculator/internal/logging"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the arrear API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var origins []string
			if a.config != nil {
				if !cmd.Flags().Changed("port") && a.config.Server.Port != 0 {
					port = a.config.Server.Port
				}
				origins = a.config.Server.AllowedOrigins
			}

			handler := api.NewHandler(a.newEngine(), logging.Logger, Version)
			server := api.NewServer(port, api.NewRouter(handler, origins), logging.Logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on")
	return cmd
}
