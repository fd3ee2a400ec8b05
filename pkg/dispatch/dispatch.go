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

// Package dispatch routes segments to the handler registry and aggregates
// batch outcomes. A single unroutable or failing segment never aborts the
// batch; failures become outcome data.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"golang.org/x/sync/errgroup"

	"github.com/modpack-tools/recipelog/pkg/errors"
	"github.com/modpack-tools/recipelog/pkg/handler"
	"github.com/modpack-tools/recipelog/pkg/record"
	"github.com/modpack-tools/recipelog/pkg/segment"
)

// maxSuggestionDistance bounds how far a known recipe type may be from an
// unhandled one and still be offered as a likely misspelling.
const maxSuggestionDistance = 5

// Dispatcher routes segments to the best-scoring handler. The zero
// Concurrency value keeps batch dispatch sequential.
type Dispatcher struct {
	// Concurrency caps the number of segments dispatched in parallel by
	// DispatchAll. Values below 2 select the sequential path.
	Concurrency int

	registry *handler.Registry
}

// New builds a dispatcher over the given registry. A nil registry selects the
// built-in handler set.
func New(r *handler.Registry) *Dispatcher {
	if r == nil {
		r = handler.Default()
	}
	return &Dispatcher{registry: r}
}

// Registry returns the handler registry this dispatcher routes to.
func (d *Dispatcher) Registry() *handler.Registry {
	return d.registry
}

// Dispatch routes one segment to the best-scoring handler and returns the
// outcome. Pure with respect to the dispatcher: the same segment always
// produces the same outcome, ties on the maximum positive score resolving to
// the earliest-registered handler. All handlers scoring 0 yields an unhandled
// outcome; an extraction failure (including a recovered handler panic) yields
// an error outcome carrying the diagnostic message.
func (d *Dispatcher) Dispatch(seg segment.Segment) Outcome {
	start := time.Now()
	defer func() {
		dispatchDuration.Observe(time.Since(start).Seconds())
	}()

	best := d.selectHandler(seg)
	if best == nil {
		dispatchTotal.WithLabelValues(string(StatusUnhandled)).Inc()
		return Outcome{
			Status:     StatusUnhandled,
			RecipeType: seg.RecipeType,
			StartLine:  seg.StartLine,
			Suggestion: d.suggest(seg.RecipeType),
		}
	}

	rec, err := extract(best, seg)
	if err != nil {
		slog.Debug("extraction failed",
			slog.String("handler", best.Name),
			slog.Int("line", seg.StartLine),
			slog.String("error", err.Error()))
		dispatchTotal.WithLabelValues(string(StatusError)).Inc()
		return Outcome{
			Status:     StatusError,
			RecipeType: seg.RecipeType,
			StartLine:  seg.StartLine,
			Error:      err.Error(),
		}
	}

	dispatchTotal.WithLabelValues(string(StatusParsed)).Inc()
	formatSelectedTotal.WithLabelValues(rec.Format.String()).Inc()
	return Outcome{
		Status:     StatusParsed,
		RecipeType: seg.RecipeType,
		StartLine:  seg.StartLine,
		Record:     rec,
	}
}

// DispatchAll routes a batch, preserving segment order in the result. With
// Concurrency above 1 the segments fan out on an errgroup with that limit;
// the only error returned is context cancellation.
func (d *Dispatcher) DispatchAll(ctx context.Context, segs []segment.Segment) ([]Outcome, error) {
	out := make([]Outcome, len(segs))

	if d.Concurrency < 2 {
		for i, seg := range segs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = d.Dispatch(seg)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.Concurrency)
	for i, seg := range segs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = d.Dispatch(seg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// selectHandler returns the max-positive-score handler, nil when every score
// is 0. Registration order breaks ties.
func (d *Dispatcher) selectHandler(seg segment.Segment) *handler.Handler {
	var best *handler.Handler
	bestScore := 0
	for _, h := range d.registry.Handlers() {
		if s := h.Score(seg); s > bestScore {
			best, bestScore = h, s
		}
	}
	return best
}

// suggest returns the closest registered recipe type to an unknown one,
// empty when the segment was untyped or nothing is plausibly close.
func (d *Dispatcher) suggest(recipeType string) string {
	if recipeType == "" {
		return ""
	}
	unknown := trimTypeBrackets(recipeType)

	bestDist := maxSuggestionDistance + 1
	bestType := ""
	for _, known := range d.registry.RecipeTypes() {
		if dist := levenshtein.ComputeDistance(unknown, trimTypeBrackets(known)); dist < bestDist {
			bestDist, bestType = dist, known
		}
	}
	return bestType
}

func trimTypeBrackets(s string) string {
	s = strings.TrimPrefix(s, "<recipetype:")
	return strings.TrimSuffix(s, ">")
}

// extract shields the batch from a panicking handler by converting the panic
// into a structured internal error.
func extract(h *handler.Handler, seg segment.Segment) (rec *record.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeInternal,
				fmt.Sprintf("handler %s panicked: %v", h.Name, r))
		}
	}()
	return h.Extract(seg)
}
