// Package server exposes extraction reports over a read-only HTTP API.
//
// # Overview
//
// The server loads one extraction report and answers queries about it:
// individual outcomes, batch statistics, and the registered handler set.
// It is intended for browsing large mod-pack extraction results without
// re-running the pipeline.
//
// # Endpoints
//
// System endpoints (no rate limiting):
//
//	GET /         - Service metadata and route listing
//	GET /health   - Liveness probe, always 200 while the process runs
//	GET /ready    - Readiness probe, 503 until a report is loaded
//
// API endpoints (rate limited, instrumented):
//
//	GET /v1/recipes  - Outcomes, filterable by recipeType, status, format;
//	                   limit caps the page size; view=normalized renders
//	                   parsed outcomes as canonical slot/parameter views
//	GET /v1/stats    - Batch summary and report metadata
//	GET /v1/formats  - Registered handlers: name, format, recipe type
//
// # Usage
//
// Serve a report with defaults (port 8080):
//
//	rep, err := serializer.FromFile[report.Report]("report.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := server.Run(rep); err != nil {
//	    log.Fatal(err)
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 50
//
//	if err := server.RunWithConfig(cfg, rep); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Environment variables:
//
//	PORT                     - Listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS - Graceful shutdown window
//
// # Middleware
//
// API requests pass through a middleware chain: metrics, API version
// negotiation, request ID propagation, panic recovery, rate limiting,
// and request logging. Request IDs arrive via X-Request-Id or are
// generated, and are echoed back on every response.
//
// # Error Handling
//
// All API errors share one payload shape (ErrorResponse) with codes drawn
// from the pkg/errors taxonomy, a request ID, and a retryable hint.
//
// # Observability
//
// The server exports Prometheus metrics:
//   - recipelog_http_requests_total{method,path,status}
//   - recipelog_http_request_duration_seconds{method,path}
//   - recipelog_http_requests_in_flight
//   - recipelog_rate_limit_rejects_total
//   - recipelog_panic_recoveries_total
//
// # Integration
//
// The server is invoked by:
//   - pkg/cli - serve command
//
// It depends on:
//   - pkg/report - The resource being served
//   - pkg/normalize - Canonical recipe views
//   - pkg/serializer - JSON responses
//   - pkg/errors - Error taxonomy
package server
