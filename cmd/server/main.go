package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/handler"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/server"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/MKhiriev/go-rsa-vault/internal/store"
	"github.com/MKhiriev/go-rsa-vault/internal/workers"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// openStorages is swapped in tests to observe the storage lifecycle.
var openStorages = store.NewStorages

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-rsa-vault-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-rsa-vault-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("auth_mode", cfg.App.AuthMode).
		Bool("key_sealing", cfg.App.KeyEncryptionKey != "").
		Msg("received configs")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err = run(context.Background(), cfg, metrics.NewMetrics(registry), log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the server and serves until a shutdown signal. Storages opened
// here are closed before run returns, on every path.
func run(ctx context.Context, cfg *config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) error {
	storages, err := openStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	lanes := workers.NewWorkers(cfg.Workers, m)

	services, err := service.NewServices(storages, lanes, cfg, m, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
