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
	"log/slog"
	"net/http"
	"time"

	"github.com/modpack-tools/recipelog/pkg/serializer"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Default handler
	mux.HandleFunc("/", s.handleDefault)

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)

	// API endpoints with middleware
	mux.HandleFunc("/v1/recipes", s.withMiddleware(s.handleRecipes))
	mux.HandleFunc("/v1/stats", s.withMiddleware(s.handleStats))
	mux.HandleFunc("/v1/formats", s.withMiddleware(s.handleFormats))

	return mux
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes: []string{
			"GET /v1/recipes",
			"GET /v1/stats",
			"GET /v1/formats",
			"GET /health",
			"GET /ready",
		},
	}

	s.mu.RLock()
	resp.Ready = s.ready
	s.mu.RUnlock()

	serializer.RespondJSON(w, http.StatusOK, resp)
}
