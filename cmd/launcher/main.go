// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/acgs-launcher/internal/adapter"
	"github.com/MKhiriev/acgs-launcher/internal/browser"
	"github.com/MKhiriev/acgs-launcher/internal/client"
	"github.com/MKhiriev/acgs-launcher/internal/config"
	"github.com/MKhiriev/acgs-launcher/internal/environment"
	"github.com/MKhiriev/acgs-launcher/internal/events"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/process"
	"github.com/MKhiriev/acgs-launcher/internal/service"
	"github.com/MKhiriev/acgs-launcher/internal/store"
	"github.com/MKhiriev/acgs-launcher/internal/tui"
	"github.com/MKhiriev/acgs-launcher/internal/workers"
	"github.com/MKhiriev/acgs-launcher/models"
)

const appRole = "acgs-launcher"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetLauncherConfig()
	if err != nil {
		logger.NewLogger(appRole).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLauncherLogger(appRole, cfg.App.DataDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewLauncherStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	downloader, err := adapter.NewHTTPCoreDownloader(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating core downloader")
	}

	shell := process.NewShellInvoker(cfg.Process.CommandTimeout, log)
	services := service.NewLauncherServices(ctx, service.Dependencies{
		Storages:   storages,
		Shell:      shell,
		Tool:       process.NewToolRunner(cfg.App.JavaBinary, storages.Workspace, cfg.Process.CommandTimeout, log),
		Downloader: downloader,
		Java:       environment.NewJavaChecker(shell, cfg.App.JavaBinary, cfg.App.MinJavaMajor, log),
		Opener:     browser.NewSystemOpener(log),
		Progress:   events.NewBroker[models.DownloadProgress](),
		Links: service.WizardLinks{
			JavaDownloadURL: cfg.App.JavaDownloadURL,
			LicenseURL:      cfg.App.EulaURL,
		},
	}, log)

	var (
		coreStatus <-chan models.CoreStatus
		jobs       []workers.Worker
	)
	if cfg.Workers.CoreWatch {
		broker := events.NewBroker[models.CoreStatus]()
		coreStatus = broker.SubscribeChan(ctx, workers.CoreStatusTopic, 8)
		jobs = append(jobs, workers.NewCoreWatcher(storages.Workspace, broker, log))
	}

	ui := tui.New(services, coreStatus, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(ui, workers.NewWorkers(jobs...), storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init launcher app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("launcher run error")
	}
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
