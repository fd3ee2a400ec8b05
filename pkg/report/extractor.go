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

package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/modpack-tools/recipelog/pkg/dispatch"
	"github.com/modpack-tools/recipelog/pkg/segment"
	"github.com/modpack-tools/recipelog/pkg/serializer"
)

// Extractor runs the full extraction pipeline over one build log: segment
// the raw text, dispatch each segment to a handler, and serialize the
// assembled report.
type Extractor struct {
	// Version is the tool version stamped into the report header.
	Version string

	// Source names the log being processed, recorded in report metadata.
	Source string

	// Dispatcher routes segments to handlers. If nil, a dispatcher over the
	// built-in registry is used.
	Dispatcher *dispatch.Dispatcher

	// Serializer writes the report. If nil, a stdout JSON serializer is used.
	Serializer serializer.Serializer
}

// Extract reads the entire log from input, runs the pipeline, and
// serializes the resulting report. The report is also returned so callers
// can render statistics.
func (e *Extractor) Extract(ctx context.Context, input io.Reader) (*Report, error) {
	if e.Dispatcher == nil {
		e.Dispatcher = dispatch.New(nil)
	}

	slog.Debug("starting extraction", slog.String("source", e.Source))

	start := time.Now()
	defer func() {
		extractionDuration.Observe(time.Since(start).Seconds())
	}()

	data, err := io.ReadAll(input)
	if err != nil {
		extractionTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	segments := segment.ScanAll(string(data))
	slog.Debug("segmented log", slog.Int("segments", len(segments)))

	outcomes, err := e.Dispatcher.DispatchAll(ctx, segments)
	if err != nil {
		extractionTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to dispatch segments: %w", err)
	}

	rep := Build(outcomes, e.Version, e.Source)

	extractionTotal.WithLabelValues("success").Inc()
	extractionSegmentCount.Set(float64(rep.Summary.Total))
	extractionCoverage.Set(rep.Summary.Coverage)

	slog.Debug("extraction complete",
		slog.Int("total", rep.Summary.Total),
		slog.Int("parsed", rep.Summary.Parsed),
		slog.Int("errors", rep.Summary.Errors),
		slog.Int("unhandled", rep.Summary.Unhandled))

	if e.Serializer == nil {
		e.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := e.Serializer.Serialize(ctx, rep); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	return rep, nil
}
