// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-av-booking/internal/adapter"
	"github.com/MKhiriev/go-av-booking/internal/booking"
	"github.com/MKhiriev/go-av-booking/internal/client"
	"github.com/MKhiriev/go-av-booking/internal/config"
	"github.com/MKhiriev/go-av-booking/internal/export"
	"github.com/MKhiriev/go-av-booking/internal/logger"
	"github.com/MKhiriev/go-av-booking/internal/service"
	"github.com/MKhiriev/go-av-booking/internal/store"
	"github.com/MKhiriev/go-av-booking/internal/workers"
	"github.com/MKhiriev/go-av-booking/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), bootstrap, os.Stdin, os.Stdout)
	code := client.Run(ctx, app, os.Args[1:], os.Stderr)

	stop()
	os.Exit(code)
}

func bootstrap(ctx context.Context, flags *config.StructuredConfig) (*client.Deps, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("avbook-client", cfg.App.LogFile, logger.ParseLevel(cfg.App.LogLevel))

	cal, err := booking.NewCalendar(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(localStorage, adapter.NewServerAdapter(gateway), cal, log)

	return &client.Deps{
		Session:         services.SessionService,
		Bookings:        services.BookingService,
		Users:           services.UserService,
		Exporter:        export.NewXLSXExporter(cfg.Export, cal, log),
		Workers:         workers.NewWorkers(log, workers.Periodic(services.RefreshJob, cfg.Workers.RefreshInterval)),
		RefreshInterval: cfg.Workers.RefreshInterval,
		Calendar:        cal,
		Logger:          log,
		Close:           localStorage.Close,
	}, nil
}
