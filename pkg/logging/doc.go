// Package logging provides structured logging utilities for recipelog
// components.
//
// # Overview
//
// This package wraps the standard library slog package with recipelog
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipelog", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("processing batch", "segments", 1024)
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("api-server", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug recipelog extract build.log
//	LOG_LEVEL=error recipelog serve
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "extraction complete",
//	    "module": "recipelog",
//	    "version": "v1.0.0",
//	    "parsed": 812
//	}
//
// Debug logs include source location.
//
// # Integration
//
// This package is used by:
//   - pkg/dispatch - segment routing logging
//   - pkg/cli - CLI command logging
//   - pkg/server - API server logging
//
// All components share consistent logging format and configuration.
package logging
