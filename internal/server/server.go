// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dkotelnikov/fieldvault/internal/config"
	"github.com/dkotelnikov/fieldvault/internal/handler"
	"github.com/dkotelnikov/fieldvault/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wires the HTTP server from the created handlers. At least one
// listen address must be configured.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if s.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer starts the configured server and blocks until an interrupt
// signal triggers a graceful shutdown.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	idleConnectionsClosed := make(chan struct{})

	go func() {
		<-ctx.Done()
		s.logger.Info().Msg("shutdown signal received")
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("starting HTTP server")
	s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server stopped")
}

// Shutdown gracefully stops the running server.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
