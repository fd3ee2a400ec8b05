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

// Package handler implements recognition and extraction for recipe
// registration signatures. Each handler is a data-driven description
// {name, prefix, format, layouts}; one shared routine performs recognition
// and extraction for all of them.
package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/modpack-tools/recipelog/pkg/errors"
	"github.com/modpack-tools/recipelog/pkg/record"
	"github.com/modpack-tools/recipelog/pkg/segment"
	"github.com/modpack-tools/recipelog/pkg/splitter"
)

// FieldKind identifies the value type of a layout field.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindFloat  FieldKind = "float"
	KindInt    FieldKind = "int"
	KindBool   FieldKind = "bool"
)

// FieldSpec describes one positional field of a layout. Soft fields resolve
// coercion failures with Default instead of failing the extraction; the
// policy is per-field configuration, never a global rule.
type FieldSpec struct {
	Name    string
	Kind    FieldKind
	Soft    bool
	Default any
}

// Layout is one accepted field arrangement. Handlers with multiple layouts
// select among them by field count alone.
type Layout struct {
	Fields []FieldSpec
}

// Handler recognizes and extracts exactly one recipe-registration signature.
// Handlers are stateless; the same Handler value may be used concurrently.
type Handler struct {
	// Name is the handler identity used in diagnostics, e.g. "mekanism:sawing".
	Name string

	// Prefix is the literal, case-sensitive call-prefix signature. This is
	// the compatibility contract with the upstream log producer and must not
	// be altered.
	Prefix string

	// Format is the canonical result-kind tag stamped on extracted records.
	Format record.Format

	// Layouts are the accepted field layouts, mutually exclusive by count.
	Layouts []Layout
}

// RecipeType returns the bracketed recipe-type portion of the recognition
// prefix, empty for untyped built-in calls.
func (h *Handler) RecipeType() string {
	if !strings.HasPrefix(h.Prefix, "<") {
		return ""
	}
	end := strings.IndexByte(h.Prefix, '>')
	if end < 0 {
		return ""
	}
	return h.Prefix[:end+1]
}

// Score reports this handler's compatibility with the segment: 1 when the
// raw text contains the exact call-prefix signature, 0 otherwise. Pure;
// tolerates empty raw text.
func (h *Handler) Score(seg segment.Segment) int {
	if seg.RawText == "" {
		return 0
	}
	if strings.Contains(seg.RawText, h.Prefix) {
		return 1
	}
	return 0
}

// Extract destructures the segment's statement into a Record. Structural
// shape failures (absent signature, missing `);` closer, missing quoted id,
// field count matching no accepted layout) fail with a structured error
// naming handler and recipe type; coercion failures on soft fields resolve
// to the field's documented default.
func (h *Handler) Extract(seg segment.Segment) (*record.Record, error) {
	i := strings.Index(seg.RawText, h.Prefix)
	if i < 0 {
		return nil, errors.NewWithContext(errors.ErrCodeSignatureMismatch,
			fmt.Sprintf("statement does not carry signature %q", h.Prefix),
			h.diagContext(seg))
	}

	body := strings.TrimSpace(seg.RawText[i+len(h.Prefix):])
	if !strings.HasSuffix(body, ");") {
		return nil, errors.NewWithContext(errors.ErrCodeStructuralMismatch,
			fmt.Sprintf("handler %s: statement is missing the trailing \");\" closer", h.Name),
			h.diagContext(seg))
	}
	body = body[:len(body)-2]

	fields := splitter.Split(body)
	if len(fields) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeStructuralMismatch,
			fmt.Sprintf("handler %s: statement has no arguments", h.Name),
			h.diagContext(seg))
	}

	id, ok := unquote(fields[0])
	if !ok || id == "" {
		return nil, errors.NewWithContext(errors.ErrCodeStructuralMismatch,
			fmt.Sprintf("handler %s: first argument %q is not a non-empty quoted literal", h.Name, fields[0]),
			h.diagContext(seg))
	}

	rest := fields[1:]
	layout := h.layoutFor(len(rest))
	if layout == nil {
		return nil, errors.NewWithContext(errors.ErrCodeStructuralMismatch,
			fmt.Sprintf("handler %s: %d field(s) match none of the accepted layouts %v",
				h.Name, len(rest), h.AcceptedCounts()),
			h.diagContext(seg))
	}

	rec := record.New(id, seg.RecipeType, h.Format)
	for n, fs := range layout.Fields {
		v, err := coerce(fs, rest[n])
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeValueCoercion,
				fmt.Sprintf("handler %s: field %q is not coercible to %s", h.Name, fs.Name, fs.Kind),
				err, h.diagContext(seg))
		}
		rec.Set(fs.Name, v)
	}
	return rec, nil
}

// AcceptedCounts returns the field counts of all accepted layouts.
func (h *Handler) AcceptedCounts() []int {
	counts := make([]int, 0, len(h.Layouts))
	for _, l := range h.Layouts {
		counts = append(counts, len(l.Fields))
	}
	return counts
}

func (h *Handler) layoutFor(count int) *Layout {
	for i := range h.Layouts {
		if len(h.Layouts[i].Fields) == count {
			return &h.Layouts[i]
		}
	}
	return nil
}

func (h *Handler) diagContext(seg segment.Segment) map[string]any {
	return map[string]any{
		"handler":    h.Name,
		"format":     h.Format.String(),
		"recipeType": seg.RecipeType,
		"startLine":  seg.StartLine,
	}
}

// coerce converts one raw field per its spec. Soft fields fall back to their
// documented default; others surface the conversion error.
func coerce(fs FieldSpec, raw string) (record.Value, error) {
	raw = strings.TrimSpace(raw)
	switch fs.Kind {
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if fs.Soft {
				return record.Float64(fs.Default.(float64)), nil
			}
			return nil, err
		}
		return record.Float64(f), nil
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			if fs.Soft {
				return record.Int(fs.Default.(int)), nil
			}
			return nil, err
		}
		return record.Int(n), nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			if fs.Soft {
				return record.Bool(fs.Default.(bool)), nil
			}
			return nil, err
		}
		return record.Bool(b), nil
	default:
		return record.Str(raw), nil
	}
}

// unquote strips a surrounding double-quote pair, reporting whether the raw
// text was a quoted literal.
func unquote(raw string) (string, bool) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", false
	}
	return raw[1 : len(raw)-1], true
}
