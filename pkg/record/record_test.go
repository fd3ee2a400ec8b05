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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecordAccessors(t *testing.T) {
	r := New("proc/unit", "<recipetype:mekanism:activating>", FormatActivating)
	r.Set("input", Str("<chemical:a> * 10"))
	r.Set("output", Str("<chemical:b>"))
	r.Set("experience", Float64(0.35))
	r.Set("cookTime", Int(200))

	s, err := r.GetString("input")
	require.NoError(t, err)
	assert.Equal(t, "<chemical:a> * 10", s)

	f, err := r.GetFloat64("experience")
	require.NoError(t, err)
	assert.InDelta(t, 0.35, f, 0.0001)

	n, err := r.GetInt("cookTime")
	require.NoError(t, err)
	assert.Equal(t, 200, n)

	_, err = r.GetString("missing")
	assert.Error(t, err)
	_, err = r.GetFloat64("input")
	assert.Error(t, err)

	assert.True(t, r.Has("output"))
	assert.False(t, r.Has("leftInput"))
	assert.Equal(t, []string{"cookTime", "experience", "input", "output"}, r.Keys())
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     *Record
		wantErr bool
	}{
		{
			name: "valid",
			rec:  New("id", "", FormatFurnace),
		},
		{
			name:    "empty id",
			rec:     New("", "", FormatFurnace),
			wantErr: true,
		},
		{
			name:    "empty format",
			rec:     New("id", "", ""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecordEqual(t *testing.T) {
	a := New("x", "<recipetype:mekanism:sawing>", FormatSawing)
	a.Set("input", Str("<item:minecraft:oak_log>"))
	a.Set("secondaryChance", Float64(0.25))

	b := New("x", "<recipetype:mekanism:sawing>", FormatSawing)
	b.Set("input", Str("<item:minecraft:oak_log>"))
	b.Set("secondaryChance", Float64(0.25))

	assert.True(t, a.Equal(b))

	b.Set("secondaryChance", Float64(0.5))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestRecordJSONRoundTrip(t *testing.T) {
	r := New("p/u", "<recipetype:mekanism:activating>", FormatActivating)
	r.Set("input", Str("<chemical:a> * 10"))
	r.Set("output", Str("<chemical:b>"))

	data, err := json.Marshal(r)
	require.NoError(t, err)

	// Values marshal as bare scalars, not object wrappers. encoding/json
	// HTML-escapes the angle brackets of reference tokens.
	assert.Contains(t, string(data), `"input":"\u003cchemical:a\u003e * 10"`)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r.RecipeID, got.RecipeID)
	assert.Equal(t, r.RecipeType, got.RecipeType)
	assert.Equal(t, "<chemical:a> * 10", got.Fields["input"].Any())
	assert.Equal(t, "<chemical:b>", got.Fields["output"].Any())
}

func TestRecordYAMLRoundTrip(t *testing.T) {
	r := New("iron", "", FormatFurnace)
	r.Set("output", Str("<item:minecraft:iron_ingot>"))
	r.Set("cookTime", Int(200))

	data, err := yaml.Marshal(r)
	require.NoError(t, err)

	var got Record
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "iron", got.RecipeID)
	assert.Empty(t, got.RecipeType)
	assert.Equal(t, 200, got.Fields["cookTime"].Any())
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("addActivating")
	assert.True(t, ok)
	assert.Equal(t, FormatActivating, f)

	_, ok = ParseFormat("addUnknown")
	assert.False(t, ok)
}
