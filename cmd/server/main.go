package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/aegis-vault/internal/config"
	"github.com/MKhiriev/aegis-vault/internal/handler"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/server"
	"github.com/MKhiriev/aegis-vault/internal/service"
	"github.com/MKhiriev/aegis-vault/internal/store"
	"github.com/MKhiriev/aegis-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("aegis-vault-server").Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.Known() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLoggerWithLevel("aegis-vault-server", cfg.App.LogLevel)
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Bool("enroll_two_factor", cfg.App.EnrollTwoFactor).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
