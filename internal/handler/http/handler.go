// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package http

import (
	"github.com/dkotelnikov/fieldvault/internal/logger"
	"github.com/dkotelnikov/fieldvault/internal/service"
)

type Handler struct {
	services *service.Services
	version  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
