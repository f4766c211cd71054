package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/leadscout/leadscout/internal/logger"
	"github.com/leadscout/leadscout/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultPort = 8080

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search pipeline over an http api",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", defaultPort, "port for the http api")
	//nolint: errcheck
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting leadscout", zap.String("version", version))

	if config == nil {
		logger.Fatal("config is required")
	}

	pipeline, crm, err := newPipeline(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the pipeline", zap.Error(err))
	}

	port := defaultPort
	if config.Server != nil && config.Server.Port != 0 {
		port = config.Server.Port
	}

	// A nil *hubspot.Client must not become a non-nil Upserter.
	var upserter server.Upserter
	if crm != nil {
		upserter = crm
	}

	srv := server.New(server.Config{Port: port}, pipeline, upserter, logger)

	if err := srv.Start(ctx); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "server stopped"))
}
