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

package server

import (
	"net/http"
	"strconv"

	"github.com/modpack-tools/recipelog/pkg/dispatch"
	"github.com/modpack-tools/recipelog/pkg/errors"
	"github.com/modpack-tools/recipelog/pkg/handler"
	"github.com/modpack-tools/recipelog/pkg/normalize"
	"github.com/modpack-tools/recipelog/pkg/record"
	"github.com/modpack-tools/recipelog/pkg/serializer"
)

// RecipesResponse is the payload of GET /v1/recipes. Outcomes carries the raw
// view; Views carries the normalized view of parsed outcomes when
// view=normalized is requested.
type RecipesResponse struct {
	Total    int                `json:"total"`
	Count    int                `json:"count"`
	Outcomes []dispatch.Outcome `json:"outcomes,omitempty"`
	Views    []*normalize.View  `json:"views,omitempty"`
}

// StatsResponse is the payload of GET /v1/stats.
type StatsResponse struct {
	Source   string            `json:"source,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Summary  *dispatch.Summary `json:"summary"`
}

// FormatInfo describes one registered handler.
type FormatInfo struct {
	Name       string `json:"name"`
	Format     string `json:"format"`
	RecipeType string `json:"recipeType,omitempty"`
}

// FormatsResponse is the payload of GET /v1/formats.
type FormatsResponse struct {
	Count   int          `json:"count"`
	Formats []FormatInfo `json:"formats"`
}

// handleRecipes handles GET /v1/recipes. Outcomes can be filtered by
// recipeType, status, and format query parameters; limit caps the page size.
// view=normalized renders parsed outcomes as canonical slot/parameter views
// instead of raw outcomes.
func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]interface{}{
				"method": r.Method,
			})
		return
	}

	rep := s.Report()
	if rep == nil {
		WriteError(w, r, http.StatusServiceUnavailable, errors.ErrCodeUnavailable,
			"No report loaded", true, nil)
		return
	}

	q := r.URL.Query()
	recipeType := q.Get("recipeType")
	status := q.Get("status")
	format := q.Get("format")
	view := q.Get("view")

	if view != "" && view != "raw" && view != "normalized" {
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid view parameter", false, map[string]interface{}{
				"view":  view,
				"valid": []string{"raw", "normalized"},
			})
		return
	}

	if status != "" && !isValidStatus(status) {
		WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid status filter", false, map[string]interface{}{
				"status": status,
				"valid":  []string{string(dispatch.StatusParsed), string(dispatch.StatusUnhandled), string(dispatch.StatusError)},
			})
		return
	}

	if format != "" {
		if _, ok := record.ParseFormat(format); !ok {
			WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Unknown format filter", false, map[string]interface{}{
					"format": format,
				})
			return
		}
	}

	limit := s.config.MaxPageSize
	if limitStr := q.Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Invalid limit parameter", false, map[string]interface{}{
					"limit": limitStr,
				})
			return
		}
		if n < limit {
			limit = n
		}
	}

	matched := 0
	outcomes := make([]dispatch.Outcome, 0, limit)
	var views []*normalize.View
	for i := range rep.Outcomes {
		o := &rep.Outcomes[i]
		if recipeType != "" && o.RecipeType != recipeType {
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		if format != "" && (o.Record == nil || string(o.Record.Format) != format) {
			continue
		}
		matched++
		if view == "normalized" {
			if o.Record == nil || len(views) >= limit {
				continue
			}
			nv, err := s.normalizer.View(o.Record)
			if err != nil {
				WriteErrorFromErr(w, r, err, "Failed to normalize record", nil)
				return
			}
			views = append(views, nv)
			continue
		}
		if len(outcomes) < limit {
			outcomes = append(outcomes, *o)
		}
	}

	resp := RecipesResponse{Total: matched}
	if view == "normalized" {
		resp.Count = len(views)
		resp.Views = views
	} else {
		resp.Count = len(outcomes)
		resp.Outcomes = outcomes
	}
	serializer.RespondJSON(w, http.StatusOK, resp)
}

// handleStats handles GET /v1/stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	rep := s.Report()
	if rep == nil {
		WriteError(w, r, http.StatusServiceUnavailable, errors.ErrCodeUnavailable,
			"No report loaded", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, StatsResponse{
		Source:   rep.Metadata["source"],
		Metadata: rep.Metadata,
		Summary:  rep.Summary,
	})
}

// handleFormats handles GET /v1/formats, listing the registered handlers.
func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	handlers := handler.Default().Handlers()
	infos := make([]FormatInfo, 0, len(handlers))
	for _, h := range handlers {
		infos = append(infos, FormatInfo{
			Name:       h.Name,
			Format:     string(h.Format),
			RecipeType: h.RecipeType(),
		})
	}

	serializer.RespondJSON(w, http.StatusOK, FormatsResponse{
		Count:   len(infos),
		Formats: infos,
	})
}

func isValidStatus(status string) bool {
	switch dispatch.Status(status) {
	case dispatch.StatusParsed, dispatch.StatusUnhandled, dispatch.StatusError:
		return true
	default:
		return false
	}
}
