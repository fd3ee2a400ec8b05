// Copyright (c) 2025, recipelog authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/modpack-tools/recipelog/pkg/normalize"
	"github.com/modpack-tools/recipelog/pkg/report"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server serves a read-only query API over one extraction report.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	normalizer  *normalize.Normalizer
	mu          sync.RWMutex
	report      *report.Report
	ready       bool
}

// NewServer creates a new server instance over the given report.
func NewServer(config *Config, rep *report.Report) *Server {
	if config == nil {
		config = NewConfig()
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
		normalizer:  normalize.New(nil),
		report:      rep,
	}

	mux := s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:           mux,
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
	}

	return s
}

// Report returns the report the server is currently serving.
func (s *Server) Report() *report.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// SetReport swaps the report being served.
func (s *Server) SetReport(rep *report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = rep
}

// SetReady marks the server as ready to serve traffic
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start starts the HTTP server and blocks until the context is canceled or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	slog.Info("starting server", slog.String("address", s.httpServer.Addr))

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts a server over the report with default configuration and blocks
// until interrupted.
func Run(rep *report.Report) error {
	if err := RunWithConfig(NewConfig(), rep); err != nil {
		slog.Error("error running server", slog.String("error", err.Error()))
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// RunWithConfig starts the server with custom configuration and handles
// graceful shutdown on SIGINT and SIGTERM.
func RunWithConfig(config *Config, rep *report.Report) error {
	server := NewServer(config, rep)

	slog.Info("server config",
		slog.String("name", config.Name),
		slog.String("version", config.Version),
		slog.String("address", server.httpServer.Addr),
		slog.Any("rateLimit", config.RateLimit),
		slog.Int("rateLimitBurst", config.RateLimitBurst),
		slog.Duration("readTimeout", config.ReadTimeout),
		slog.Duration("writeTimeout", config.WriteTimeout),
		slog.Duration("idleTimeout", config.IdleTimeout),
		slog.Duration("shutdownTimeout", config.ShutdownTimeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
