package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/inkwellhq/canopy"
	httpAdapter "github.com/inkwellhq/canopy/internal/adapters/http"
	"github.com/inkwellhq/canopy/internal/logging"
	"github.com/inkwellhq/canopy/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless editor API server",
	Long:  `Starts the tree engine in stateless server mode, exposing a JSON API over HTTP. Trees travel in request bodies; nothing is persisted.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		logger := logging.New(slog.LevelInfo)
		registry := prometheus.NewRegistry()
		engine := canopy.New(
			canopy.WithLogger(logger),
			canopy.WithMetrics(observability.New(registry)),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(engine, logger, registry),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting canopy server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("canopy server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
