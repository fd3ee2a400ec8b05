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
	"github.com/modpack-tools/recipelog/pkg/dispatch"
	"github.com/modpack-tools/recipelog/pkg/header"
	"github.com/modpack-tools/recipelog/pkg/record"
)

// FullAPIVersion is the schema version stamped on every extraction report.
const FullAPIVersion = "recipelog/v1"

// NewReport creates a new Report instance with an initialized Outcomes slice.
func NewReport() *Report {
	return &Report{
		Outcomes: make([]dispatch.Outcome, 0),
	}
}

// Report is the complete result of extracting one build log. It carries
// resource metadata, batch statistics, and the per-segment outcomes in
// input order.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Summary aggregates the outcomes by status and recipe type.
	Summary *dispatch.Summary `json:"summary" yaml:"summary"`

	// Outcomes contains one entry per segment, in input order.
	Outcomes []dispatch.Outcome `json:"outcomes" yaml:"outcomes"`
}

// Build assembles a Report from dispatch outcomes. The header metadata is
// stamped with a unique id, timestamp, and the tool version; source names
// the log the outcomes came from and is recorded when non-empty.
func Build(outcomes []dispatch.Outcome, version, source string) *Report {
	r := NewReport()
	r.Init(header.KindExtractionReport, FullAPIVersion, version)
	if source != "" {
		r.Metadata["source"] = source
	}
	r.Outcomes = append(r.Outcomes, outcomes...)
	r.Summary = dispatch.Summarize(r.Outcomes)
	return r
}

// Records returns the successfully extracted records, in input order.
func (r *Report) Records() []*record.Record {
	out := make([]*record.Record, 0, len(r.Outcomes))
	for i := range r.Outcomes {
		if r.Outcomes[i].Status == dispatch.StatusParsed && r.Outcomes[i].Record != nil {
			out = append(out, r.Outcomes[i].Record)
		}
	}
	return out
}
