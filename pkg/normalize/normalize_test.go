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

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modpack-tools/recipelog/pkg/handler"
	"github.com/modpack-tools/recipelog/pkg/record"
	"github.com/modpack-tools/recipelog/pkg/segment"
)

func extract(t *testing.T, raw, recipeType string) *record.Record {
	t.Helper()
	seg := segment.Segment{RawText: raw, RecipeType: recipeType}
	var best *handler.Handler
	for _, h := range handler.Default().Handlers() {
		if h.Score(seg) > 0 {
			best = h
			break
		}
	}
	require.NotNil(t, best, "no handler for %q", raw)
	rec, err := best.Extract(seg)
	require.NoError(t, err)
	return rec
}

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Ingredient
	}{
		{
			name: "plain namespaced item",
			raw:  "<item:minecraft:iron_ingot>",
			want: []Ingredient{{Text: "<item:minecraft:iron_ingot>", Namespace: "minecraft", Quantity: 1}},
		},
		{
			name: "mod namespace",
			raw:  "<item:mekanism:bio_fuel>",
			want: []Ingredient{{Text: "<item:mekanism:bio_fuel>", Namespace: "mekanism", Quantity: 1}},
		},
		{
			name: "namespace fallback",
			raw:  "<chemical:oxygen>",
			want: []Ingredient{{Text: "<chemical:oxygen>", Namespace: "minecraft", Quantity: 1}},
		},
		{
			name: "tag reference",
			raw:  "<tag:items:forge:ingots/iron>",
			want: []Ingredient{{Text: "<tag:items:forge:ingots/iron>", Namespace: "forge", Tag: true, Quantity: 1}},
		},
		{
			name: "short tag falls back",
			raw:  "<tag:items:logs>",
			want: []Ingredient{{Text: "<tag:items:logs>", Namespace: "minecraft", Tag: true, Quantity: 1}},
		},
		{
			name: "quantity multiplier",
			raw:  "<chemical:a> * 10",
			want: []Ingredient{{Text: "<chemical:a>", Namespace: "minecraft", Quantity: 10}},
		},
		{
			name: "modifier chain reduces to inner token",
			raw:  "(<item:minecraft:stone>).mutable()",
			want: []Ingredient{{Text: "<item:minecraft:stone>", Namespace: "minecraft", Quantity: 1}},
		},
		{
			name: "alternation expands",
			raw:  "<item:minecraft:coal> | <item:minecraft:charcoal>",
			want: []Ingredient{
				{Text: "<item:minecraft:coal>", Namespace: "minecraft", Quantity: 1},
				{Text: "<item:minecraft:charcoal>", Namespace: "minecraft", Quantity: 1},
			},
		},
		{
			name: "non-token text passes through",
			raw:  "plainvalue",
			want: []Ingredient{{Text: "plainvalue", Namespace: "minecraft", Quantity: 1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseField(tc.raw))
		})
	}
}

func TestIngredientLabel(t *testing.T) {
	assert.Equal(t, "<item:a>", Ingredient{Text: "<item:a>", Quantity: 1}.Label())
	assert.Equal(t, "<item:a> x4", Ingredient{Text: "<item:a>", Quantity: 4}.Label())
}

func TestViewActivating(t *testing.T) {
	n := New(nil)
	rec := extract(t,
		`<recipetype:mekanism:activating>.addRecipe("p/u", <chemical:a> * 10, <chemical:b>);`,
		"<recipetype:mekanism:activating>")

	v, err := n.View(rec)
	require.NoError(t, err)
	assert.Equal(t, "p/u", v.RecipeID)
	assert.Equal(t, record.FormatActivating, v.Format)

	ins := v.Inputs()
	require.Len(t, ins, 1)
	require.Len(t, ins[0].Ingredients, 1)
	assert.Equal(t, 10, ins[0].Ingredients[0].Quantity)
	assert.Equal(t, "<chemical:a>", ins[0].Ingredients[0].Text)

	outs := v.Outputs()
	require.Len(t, outs, 1)
	assert.Equal(t, "<chemical:b>", outs[0].Ingredients[0].Text)
	assert.Empty(t, v.Params)
}

func TestViewFurnaceParams(t *testing.T) {
	n := New(nil)
	rec := extract(t,
		`furnace.addRecipe("iron", <item:minecraft:iron_ingot>, <item:minecraft:raw_iron>, 0.7, 300);`, "")

	v, err := n.View(rec)
	require.NoError(t, err)
	require.Len(t, v.Slots, 2)
	assert.Equal(t, RoleOutput, v.Slots[0].Role)
	assert.Equal(t, RoleInput, v.Slots[1].Role)

	require.Len(t, v.Params, 2)
	assert.Equal(t, "experience", v.Params[0].Name)
	assert.Equal(t, 0.7, v.Params[0].Value)
	assert.Equal(t, "cookTime", v.Params[1].Name)
	assert.Equal(t, 300, v.Params[1].Value)
}

func TestViewShapedPatternFlattens(t *testing.T) {
	n := New(nil)
	rec := extract(t,
		`craftingTable.addShaped("sword", <item:minecraft:iron_sword>, [[<item:minecraft:iron_ingot>], [<item:minecraft:iron_ingot>], [<item:minecraft:stick>]]);`, "")

	v, err := n.View(rec)
	require.NoError(t, err)

	ins := v.Inputs()
	require.Len(t, ins, 1)
	assert.Equal(t, "pattern", ins[0].Name)
	require.Len(t, ins[0].Ingredients, 3)
	assert.Equal(t, "<item:minecraft:stick>", ins[0].Ingredients[2].Text)
}

func TestViewSeparatingOutputs(t *testing.T) {
	n := New(nil)
	rec := extract(t,
		`<recipetype:mekanism:separating>.addRecipe("water", <fluid:minecraft:water>, <chemical:hydrogen>, <chemical:oxygen>);`,
		"<recipetype:mekanism:separating>")

	v, err := n.View(rec)
	require.NoError(t, err)
	assert.Len(t, v.Inputs(), 1)
	assert.Len(t, v.Outputs(), 2)
}

func TestViewUnknownFormat(t *testing.T) {
	n := New(nil)
	_, err := n.View(&record.Record{RecipeID: "x", Format: record.Format("bogus")})
	require.Error(t, err)
}

func TestViewNilRecord(t *testing.T) {
	_, err := New(nil).View(nil)
	require.Error(t, err)
}

func TestViewIsMemoized(t *testing.T) {
	// The second normalization of the same raw text must return the cached
	// parse and produce an identical view.
	n := New(nil)
	rec := extract(t,
		`<recipetype:mekanism:crushing>.addRecipe("c", <item:minecraft:cobblestone>, <item:minecraft:gravel>);`,
		"<recipetype:mekanism:crushing>")

	first, err := n.View(rec)
	require.NoError(t, err)
	second, err := n.View(rec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
