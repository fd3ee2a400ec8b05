// Package report assembles extraction reports from build logs.
//
// # Overview
//
// The report package orchestrates the full extraction pipeline: it segments
// the raw log text, dispatches each segment to a capability-scored handler,
// aggregates the outcomes into batch statistics, and serializes the result
// as a versioned resource.
//
// # Core Types
//
// Extractor: Pipeline orchestration over one build log
//
//	type Extractor struct {
//	    Version    string                // Tool version stamped in the header
//	    Source     string                // Log name recorded in metadata
//	    Dispatcher *dispatch.Dispatcher  // Segment router (optional)
//	    Serializer serializer.Serializer // Output serializer (optional)
//	}
//
// Report: Assembled extraction result
//
//	type Report struct {
//	    Header                      // API version, kind, metadata
//	    Summary  *dispatch.Summary  // Batch statistics
//	    Outcomes []dispatch.Outcome // Per-segment results, in input order
//	}
//
// # Usage
//
// Basic extraction with defaults (stdout JSON):
//
//	extractor := &report.Extractor{
//	    Version: "v1.0.0",
//	    Source:  "crafttweaker.log",
//	}
//
//	f, err := os.Open("crafttweaker.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	rep, err := extractor.Extract(context.Background(), f)
//	if err != nil {
//	    log.Fatalf("extraction failed: %v", err)
//	}
//	fmt.Printf("coverage: %.1f%%\n", rep.Summary.Coverage*100)
//
// Custom output serializer:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "report.yaml")
//	defer writer.Close()
//
//	extractor := &report.Extractor{
//	    Version:    "v1.0.0",
//	    Serializer: writer,
//	}
//
// # Report Structure
//
// Reports contain a header, summary, and outcomes:
//
//	apiVersion: recipelog/v1
//	kind: ExtractionReport
//	metadata:
//	  id: 3f1c9a2e-...
//	  timestamp: 2025-01-15T10:30:00Z
//	  version: v1.0.0
//	  source: crafttweaker.log
//	summary:
//	  total: 128
//	  parsed: 120
//	  errors: 3
//	  unhandled: 5
//	  coverage: 0.9375
//	outcomes:
//	  - status: parsed
//	    recipeType: "<recipetype:mekanism:activating>"
//	    record: {...}
//
// # Error Handling
//
// Extract() returns an error when:
//   - Reading the input fails
//   - The context is canceled or times out
//   - Serialization fails
//
// Segments that fail extraction do NOT fail the batch; they are recorded as
// error outcomes and counted in the summary.
//
// # Observability
//
// The extractor exports Prometheus metrics:
//   - recipelog_extraction_duration_seconds: Total time per log
//   - recipelog_extraction_total{status}: Extraction attempts
//   - recipelog_extraction_segments: Segment count of the last log
//   - recipelog_extraction_coverage: Parsed fraction of the last log
//
// # Integration
//
// The extractor is invoked by:
//   - pkg/cli - extract command
//
// It depends on:
//   - pkg/segment - Log segmentation
//   - pkg/dispatch - Handler routing
//   - pkg/serializer - Output formatting
//
// Reports are consumed by:
//   - pkg/server - Read-only query API
//   - External analysis tools
package report
