// Package cli implements the command-line interface for the recipelog tool.
//
// # Overview
//
// The recipelog CLI extracts structured recipe records from CraftTweaker-style
// mod-pack build logs, lists the registration signatures the extractor
// recognizes, and serves extraction reports over HTTP. It is designed for
// mod-pack maintainers auditing what their build scripts actually register.
//
// # Commands
//
// extract - Extract recipe records from a build log:
//
//	recipelog extract --source FILE|URL|- [--output FILE] [--format json|yaml|table]
//	                  [--concurrency N] [--stats] [--timeout DURATION]
//
// Splits the log into registration statements, routes each to the handler
// recognizing its signature, and writes an extraction report with one outcome
// per statement plus batch statistics. Unrecognized statements are reported
// as unhandled, with a closest-match suggestion for misspelled recipe types.
//
// formats - List recognized signatures:
//
//	recipelog formats [--output FILE] [--format json|yaml|table]
//
// Lists every registered handler with its record format, recipe type, and
// accepted field counts.
//
// serve - Serve an extraction report over HTTP:
//
//	recipelog serve --report FILE [--port PORT]
//
// Loads a report produced by extract and exposes it on a read-only HTTP API
// with outcome filtering, batch statistics, and the handler listing.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default):
//   - Machine-parseable, compact
//   - Suitable for programmatic consumption and for serve
//
// YAML:
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Extract a local log to a JSON report:
//
//	recipelog extract -f crafttweaker.log -o report.json
//
// Extract a remote log with a parallel dispatch pool and a summary:
//
//	recipelog extract -f https://packs.example.com/crafttweaker.log -c 8 --stats
//
// Serve a report on port 9090:
//
//	recipelog serve -r report.json -p 9090
//
// # Environment Variables
//
//	RECIPELOG_LOG_LEVEL  Logging verbosity (debug, info, warn, error)
//	RECIPELOG_FORMAT     Default output format (json, yaml, table)
//	PORT                 Listen port for serve (default 8080)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/report - Extraction pipeline orchestration
//   - pkg/handler - Signature recognition and extraction
//   - pkg/server - Read-only HTTP API
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/modpack-tools/recipelog/pkg/cli.version=1.0.0'"
package cli
