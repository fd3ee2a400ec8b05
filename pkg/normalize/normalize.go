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

// Package normalize collapses the per-format record schemas into a common
// presentation shape: ingredient and output slots with canonical reference
// views, plus plain parameters.
package normalize

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/modpack-tools/recipelog/pkg/errors"
	"github.com/modpack-tools/recipelog/pkg/handler"
	"github.com/modpack-tools/recipelog/pkg/record"
	"github.com/modpack-tools/recipelog/pkg/splitter"
)

// cacheSize bounds the ingredient memoization cache. Mod-pack logs repeat
// the same reference text across thousands of recipes.
const cacheSize = 4096

// Role marks a slot as consumed or produced.
type Role string

const (
	RoleInput  Role = "input"
	RoleOutput Role = "output"
)

// Slot is one ingredient or output position of a normalized recipe. List
// fields and alternation both expand into Ingredients; a plain reference
// yields exactly one entry.
type Slot struct {
	Name        string       `json:"name" yaml:"name"`
	Role        Role         `json:"role" yaml:"role"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Param is a non-slot field rendered as a plain value, e.g. duration or
// experience.
type Param struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// View is the canonical, format-independent shape of one parsed recipe.
type View struct {
	RecipeID   string        `json:"recipeId" yaml:"recipeId"`
	RecipeType string        `json:"recipeType,omitempty" yaml:"recipeType,omitempty"`
	Format     record.Format `json:"format" yaml:"format"`
	Slots      []Slot        `json:"slots" yaml:"slots"`
	Params     []Param       `json:"params,omitempty" yaml:"params,omitempty"`
}

// Inputs returns the consumed slots in layout order.
func (v *View) Inputs() []Slot {
	return v.filter(RoleInput)
}

// Outputs returns the produced slots in layout order.
func (v *View) Outputs() []Slot {
	return v.filter(RoleOutput)
}

func (v *View) filter(role Role) []Slot {
	out := make([]Slot, 0, len(v.Slots))
	for _, s := range v.Slots {
		if s.Role == role {
			out = append(out, s)
		}
	}
	return out
}

// Normalizer maps records to canonical views. Which fields are slots versus
// parameters is driven by the handler layout owning the record's format.
// Safe for concurrent use.
type Normalizer struct {
	registry *handler.Registry
	cache    *lru.Cache[string, []Ingredient]
}

// New builds a normalizer over the given registry, the built-in set when nil.
func New(r *handler.Registry) *Normalizer {
	if r == nil {
		r = handler.Default()
	}
	cache, err := lru.New[string, []Ingredient](cacheSize)
	if err != nil {
		panic(err)
	}
	return &Normalizer{registry: r, cache: cache}
}

// View normalizes one record. String fields of the owning layout become
// slots with canonical ingredient views; numeric and boolean fields become
// plain parameters. Slot order follows the layout.
func (n *Normalizer) View(rec *record.Record) (*View, error) {
	if rec == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "record is nil")
	}
	h := n.registry.ByFormat(rec.Format)
	if h == nil {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("no handler owns format %q", rec.Format),
			map[string]any{"recipeId": rec.RecipeID})
	}

	layout := layoutMatching(h, rec)
	if layout == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("record fields match no layout of format %q", rec.Format),
			map[string]any{"recipeId": rec.RecipeID, "fields": len(rec.Fields)})
	}

	v := &View{
		RecipeID:   rec.RecipeID,
		RecipeType: rec.RecipeType,
		Format:     rec.Format,
		Slots:      make([]Slot, 0, len(layout.Fields)),
	}
	for _, fs := range layout.Fields {
		val := rec.Get(fs.Name)
		if val == nil {
			continue
		}
		if fs.Kind != handler.KindString {
			v.Params = append(v.Params, Param{Name: fs.Name, Value: val.Any()})
			continue
		}
		raw, _ := val.Any().(string)
		v.Slots = append(v.Slots, Slot{
			Name:        fs.Name,
			Role:        roleOf(fs.Name),
			Ingredients: n.ingredients(raw),
		})
	}
	return v, nil
}

// ingredients expands one raw slot field, memoized on the raw text. List
// fields flatten recursively; alternation expands per alternative.
func (n *Normalizer) ingredients(raw string) []Ingredient {
	if cached, ok := n.cache.Get(raw); ok {
		return cached
	}
	out := expandField(raw)
	n.cache.Add(raw, out)
	return out
}

func expandField(raw string) []Ingredient {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		inner := trimmed[1 : len(trimmed)-1]
		var out []Ingredient
		for _, part := range splitter.Split(inner) {
			out = append(out, expandField(part)...)
		}
		return out
	}
	return ParseField(trimmed)
}

// layoutMatching selects the handler layout whose field names the record
// actually carries.
func layoutMatching(h *handler.Handler, rec *record.Record) *handler.Layout {
	for i := range h.Layouts {
		l := &h.Layouts[i]
		if len(l.Fields) != len(rec.Fields) {
			continue
		}
		all := true
		for _, fs := range l.Fields {
			if !rec.Has(fs.Name) {
				all = false
				break
			}
		}
		if all {
			return l
		}
	}
	return nil
}

// roleOf classifies a layout field name. Every output-bearing field in the
// built-in set carries "output" or "Output" in its name.
func roleOf(name string) Role {
	if strings.Contains(strings.ToLower(name), "output") {
		return RoleOutput
	}
	return RoleInput
}
