// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package main

import (
	"context"
	"fmt"

	"github.com/dkotelnikov/fieldvault/internal/config"
	"github.com/dkotelnikov/fieldvault/internal/handler"
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/server"
	"github.com/dkotelnikov/fieldvault/internal/service"
	"github.com/dkotelnikov/fieldvault/internal/store"
	"github.com/dkotelnikov/fieldvault/internal/workers"
	"github.com/dkotelnikov/fieldvault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fieldvault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Dur("rotation_interval", cfg.Workers.RotationInterval).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := migrations.Migrate(storages.DB.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	services := service.NewServices(storages, cfg, log)
	if err := services.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading key material and encryption settings")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(services, cfg.Workers, log)
	background.Run()
	defer background.Stop()

	srv.RunServer()
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
