// Package cmd - serve command
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"event-economics/api"
	"event-economics/internal/config"
	"event-economics/internal/logging"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator HTTP API",
	Long: `Serve the calculators over HTTP.

Endpoints:
  POST /staffing  POST /consumption  POST /price  POST /checkout/quote
  GET  /tools     POST /tools/{name}
  GET  /addons    GET  /health       GET  /version  GET /metrics`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	srv, err := api.NewServer(Version, cfg, logging.With(zap.String("component", "api")))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, serveAddr); err != nil {
		logging.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
