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

package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Record is the result of a successful extraction: one uniform row per
// registered recipe. RecipeType is copied verbatim from the source statement
// and is empty when the statement carried no explicit type context.
// Fields holds the format-specific values keyed by layout field name.
type Record struct {
	RecipeID   string           `json:"recipeId" yaml:"recipeId"`
	RecipeType string           `json:"recipeType,omitempty" yaml:"recipeType,omitempty"`
	Format     Format           `json:"format" yaml:"format"`
	Fields     map[string]Value `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// New creates a Record with an initialized field map.
func New(id, recipeType string, format Format) *Record {
	return &Record{
		RecipeID:   id,
		RecipeType: recipeType,
		Format:     format,
		Fields:     make(map[string]Value),
	}
}

// Set stores a field value, initializing the map if needed.
func (r *Record) Set(key string, v Value) {
	if r.Fields == nil {
		r.Fields = make(map[string]Value)
	}
	r.Fields[key] = v
}

// Has checks if a field exists.
func (r *Record) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// Get retrieves a field value by key, returning nil if not found.
func (r *Record) Get(key string) Value {
	return r.Fields[key]
}

// Keys returns all field names in sorted order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetString attempts to retrieve a string field, returning an error if not found or wrong type.
func (r *Record) GetString(key string) (string, error) {
	v := r.Fields[key]
	if v == nil {
		return "", fmt.Errorf("field %q not found", key)
	}
	s, ok := v.Any().(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	return s, nil
}

// GetFloat64 attempts to retrieve a float64 field, returning an error if not found or wrong type.
func (r *Record) GetFloat64(key string) (float64, error) {
	v := r.Fields[key]
	if v == nil {
		return 0, fmt.Errorf("field %q not found", key)
	}
	f, ok := v.Any().(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a float64", key)
	}
	return f, nil
}

// GetInt attempts to retrieve an integer field, returning an error if not found or wrong type.
func (r *Record) GetInt(key string) (int, error) {
	v := r.Fields[key]
	if v == nil {
		return 0, fmt.Errorf("field %q not found", key)
	}
	switch n := v.Any().(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("field %q is not an integer", key)
	}
}

// Validate checks if the record is properly formed.
func (r *Record) Validate() error {
	if r.RecipeID == "" {
		return errors.New("record recipeId cannot be empty")
	}
	if r.Format == "" {
		return errors.New("record format cannot be empty")
	}
	return nil
}

// Equal reports whether two records carry identical identity and
// field-for-field identical values.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	if r.RecipeID != other.RecipeID || r.RecipeType != other.RecipeType || r.Format != other.Format {
		return false
	}
	if len(r.Fields) != len(other.Fields) {
		return false
	}
	for k, v := range r.Fields {
		ov, ok := other.Fields[k]
		if !ok || v.Any() != ov.Any() {
			return false
		}
	}
	return true
}

// UnmarshalJSON custom unmarshaler for Record to handle the Value interface.
func (r *Record) UnmarshalJSON(data []byte) error {
	var tmp struct {
		RecipeID   string         `json:"recipeId"`
		RecipeType string         `json:"recipeType"`
		Format     Format         `json:"format"`
		Fields     map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	r.RecipeID = tmp.RecipeID
	r.RecipeType = tmp.RecipeType
	r.Format = tmp.Format
	r.Fields = make(map[string]Value, len(tmp.Fields))
	for k, v := range tmp.Fields {
		r.Fields[k] = ToValue(v)
	}
	return nil
}

// UnmarshalYAML custom unmarshaler for Record to handle the Value interface.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	var tmp struct {
		RecipeID   string         `yaml:"recipeId"`
		RecipeType string         `yaml:"recipeType"`
		Format     Format         `yaml:"format"`
		Fields     map[string]any `yaml:"fields"`
	}
	if err := node.Decode(&tmp); err != nil {
		return err
	}

	r.RecipeID = tmp.RecipeID
	r.RecipeType = tmp.RecipeType
	r.Format = tmp.Format
	r.Fields = make(map[string]Value, len(tmp.Fields))
	for k, v := range tmp.Fields {
		r.Fields[k] = ToValue(v)
	}
	return nil
}
