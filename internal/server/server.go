// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/pin-vault/internal/logger"
)

// Server wraps the HTTP server hosting the vaultsyncd API.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer builds a Server listening on address and routing to handler.
func NewServer(address string, handler *Handler, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           handler.Init(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: log,
	}
}

// Run starts serving and blocks until the listener stops. A graceful
// Shutdown is not reported as an error.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("vaultsyncd listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
