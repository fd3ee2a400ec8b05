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

package dispatch

import (
	"github.com/modpack-tools/recipelog/pkg/record"
)

// Status classifies the result of dispatching one segment.
type Status string

const (
	// StatusParsed means a handler claimed the segment and extraction
	// succeeded.
	StatusParsed Status = "parsed"

	// StatusUnhandled means no handler scored positive. Not an error.
	StatusUnhandled Status = "unhandled"

	// StatusError means a handler claimed the segment but extraction failed.
	StatusError Status = "error"
)

// Outcome is the dispatch result for a single segment. Exactly one of Record
// and Error is populated for parsed and error outcomes respectively;
// unhandled outcomes carry neither.
type Outcome struct {
	Status     Status         `json:"status" yaml:"status"`
	RecipeType string         `json:"recipeType,omitempty" yaml:"recipeType,omitempty"`
	StartLine  int            `json:"startLine,omitempty" yaml:"startLine,omitempty"`
	Record     *record.Record `json:"record,omitempty" yaml:"record,omitempty"`
	Error      string         `json:"error,omitempty" yaml:"error,omitempty"`

	// Suggestion is the closest known recipe type for an unhandled typed
	// segment, when one is close enough to plausibly be a misspelling.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// untypedKey groups outcomes whose statement carried no recipe-type context.
const untypedKey = "(untyped)"

// TypeStats is the per-recipe-type status breakdown.
type TypeStats struct {
	Parsed    int `json:"parsed" yaml:"parsed"`
	Errors    int `json:"errors" yaml:"errors"`
	Unhandled int `json:"unhandled" yaml:"unhandled"`
}

// Summary aggregates a batch of outcomes.
type Summary struct {
	Total     int     `json:"total" yaml:"total"`
	Parsed    int     `json:"parsed" yaml:"parsed"`
	Errors    int     `json:"errors" yaml:"errors"`
	Unhandled int     `json:"unhandled" yaml:"unhandled"`
	Coverage  float64 `json:"coverage" yaml:"coverage"`

	// ByType breaks the counts down by recipe type. Untyped statements are
	// grouped under "(untyped)".
	ByType map[string]*TypeStats `json:"byType,omitempty" yaml:"byType,omitempty"`
}

// Summarize computes batch statistics over outcomes. Coverage is the parsed
// fraction of the total, 0 for an empty batch.
func Summarize(outcomes []Outcome) *Summary {
	s := &Summary{
		Total:  len(outcomes),
		ByType: make(map[string]*TypeStats),
	}
	for _, o := range outcomes {
		key := o.RecipeType
		if key == "" {
			key = untypedKey
		}
		ts := s.ByType[key]
		if ts == nil {
			ts = &TypeStats{}
			s.ByType[key] = ts
		}
		switch o.Status {
		case StatusParsed:
			s.Parsed++
			ts.Parsed++
		case StatusError:
			s.Errors++
			ts.Errors++
		default:
			s.Unhandled++
			ts.Unhandled++
		}
	}
	if s.Total > 0 {
		s.Coverage = float64(s.Parsed) / float64(s.Total)
	}
	return s
}
