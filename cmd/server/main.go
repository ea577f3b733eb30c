package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bbp-gateway/internal/adapter"
	"github.com/MKhiriev/bbp-gateway/internal/config"
	"github.com/MKhiriev/bbp-gateway/internal/gateway"
	"github.com/MKhiriev/bbp-gateway/internal/handler"
	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/internal/server"
	"github.com/MKhiriev/bbp-gateway/internal/service"
	"github.com/MKhiriev/bbp-gateway/internal/workers"
	"github.com/MKhiriev/bbp-gateway/models"
	"golang.org/x/sync/errgroup"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(config.DefaultAppName).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(cfg.App.Name)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	monitor := config.NewMonitor(cfg.Service, config.ReloadServiceConfig)

	backend, err := adapter.NewHTTPBackendAdapter(monitor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	services, err := service.NewServices(backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	gw, err := gateway.New(services, monitor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gateway")
	}

	handlers, err := handler.NewHandlers(gw, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(workers.NewConfigReloader(monitor, log))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return bg.Run(gctx)
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("gateway stopped with error")
		return
	}
	log.Info().Msg("gateway stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
