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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipelog_dispatch_total",
			Help: "Total number of dispatched segments",
		},
		[]string{"status"}, // parsed, unhandled, error
	)

	dispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipelog_dispatch_duration_seconds",
			Help:    "Time taken to dispatch a single segment",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	formatSelectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipelog_format_selected_total",
			Help: "Number of parsed records by format tag",
		},
		[]string{"format"},
	)
)
