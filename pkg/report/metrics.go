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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Extraction pipeline metrics
	extractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipelog_extraction_duration_seconds",
			Help:    "Time taken to extract a complete build log",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	extractionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipelog_extraction_total",
			Help: "Total number of extraction attempts",
		},
		[]string{"status"}, // success or error
	)

	extractionSegmentCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipelog_extraction_segments",
			Help: "Number of segments in the last extracted log",
		},
	)

	extractionCoverage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipelog_extraction_coverage",
			Help: "Parsed fraction of the last extracted log",
		},
	)
)
