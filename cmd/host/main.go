// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/toolbox-vault/internal/bridge"
	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/fsys"
	handler "github.com/MKhiriev/toolbox-vault/internal/handler/http"
	"github.com/MKhiriev/toolbox-vault/internal/locator"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/internal/server"
	"github.com/MKhiriev/toolbox-vault/internal/store"
	"github.com/MKhiriev/toolbox-vault/internal/workers"
	"github.com/MKhiriev/toolbox-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	if err := run(context.Background(), os.Args[1:], buildInfo); err != nil {
		fmt.Fprintf(os.Stderr, "toolbox host: %v\n", err)
		os.Exit(1)
	}
}

// run wires the host and serves the bridge until ctx is done or a stop signal
// arrives.
func run(ctx context.Context, args []string, buildInfo models.AppBuildInfo) error {
	cfg, err := config.GetHostConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	// the log file lives under the storage root, so the locator runs before
	// the host logger exists
	bootLog := logger.NewLogger("host")
	bootLog.Logger = bootLog.Output(os.Stderr)

	filesystem := fsys.OS()
	loc := locator.New(filesystem, cfg.Storage, bootLog)

	logPath := cfg.Log.File
	if logPath == "" {
		if p, err := loc.LogFile(ctx); err == nil {
			logPath = p
		}
	}

	log := logger.NewHostLogger("host", logPath)
	defer log.Close()
	logger.SetLevel(cfg.Log.Level)

	if !log.HasFileSink() {
		log.Warn().Str("path", logPath).Msg("log file unavailable, logging to stderr")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	// the queue outlives ctx so requests still in flight during shutdown
	// can finish; Stop drains it once the server is down
	queue := workers.NewSerial(cfg.Workers.QueueSize, log)
	workers.NewWorkers(queue).Run(context.WithoutCancel(ctx))
	defer queue.Stop()

	storages, err := store.NewStorages(ctx, filesystem, loc, queue, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return fmt.Errorf("error creating storages: %w", err)
	}
	if !storages.Persistent {
		log.Warn().Msg("no storage location is writable, credentials are kept in memory only")
	}

	metadata, err := bridge.NewAppMetadata(cfg.App, buildInfo)
	if err != nil {
		return fmt.Errorf("error building app metadata: %w", err)
	}

	b := bridge.New(storages.CredentialStore, loc, bridge.NewDesktopOpener(), metadata, log)
	h := handler.NewHandler(b, cfg.Bridge, log)

	srv, err := server.NewServer(h.Init(), cfg.Bridge, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer(ctx)
}
