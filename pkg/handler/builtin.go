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

package handler

import "github.com/modpack-tools/recipelog/pkg/record"

// Documented soft defaults for the vanilla cooking family.
const (
	DefaultExperience       = 0.0
	DefaultFurnaceCookTime  = 200
	DefaultBlastCookTime    = 100
	DefaultSmokerCookTime   = 100
	DefaultCampfireCookTime = 600
)

// typedPrefix builds the literal recognition signature for a typed
// registration call, e.g. <recipetype:mekanism:sawing>.addRecipe(.
func typedPrefix(mod, kind string) string {
	return "<recipetype:" + mod + ":" + kind + ">.addRecipe("
}

// slots builds a layout of plain string fields.
func slots(names ...string) Layout {
	fields := make([]FieldSpec, 0, len(names))
	for _, n := range names {
		fields = append(fields, FieldSpec{Name: n, Kind: KindString})
	}
	return Layout{Fields: fields}
}

// withField appends one extra field to a copy of the layout.
func (l Layout) withField(fs FieldSpec) Layout {
	fields := make([]FieldSpec, 0, len(l.Fields)+1)
	fields = append(fields, l.Fields...)
	fields = append(fields, fs)
	return Layout{Fields: fields}
}

// cookingLayouts is the shared 2-or-4 field shape of the vanilla cooking
// calls: output, input, and optionally experience and cook time. The two
// numeric fields are designated soft: non-coercible values resolve to the
// documented defaults rather than failing the extraction.
func cookingLayouts(defaultCookTime int) []Layout {
	short := slots("output", "input")
	long := short.
		withField(FieldSpec{Name: "experience", Kind: KindFloat, Soft: true, Default: DefaultExperience}).
		withField(FieldSpec{Name: "cookTime", Kind: KindInt, Soft: true, Default: defaultCookTime})
	return []Layout{short, long}
}

// pairLayouts is the 2-or-3 field shape used by the Mekanism machines that
// take an optional secondary chemical input.
func pairLayouts() []Layout {
	return []Layout{
		slots("input", "output"),
		slots("input", "chemicalInput", "output"),
	}
}

// Builtin returns the full ordered handler set. The order is load-bearing:
// it defines the dispatcher's deterministic tie-break.
func Builtin() []*Handler {
	return []*Handler{
		// Vanilla built-in calls (untyped; bare method-call openers).
		{
			Name:    "craftingTable:shaped",
			Prefix:  "craftingTable.addShaped(",
			Format:  record.FormatShaped,
			Layouts: []Layout{slots("output", "pattern")},
		},
		{
			Name:    "craftingTable:shapeless",
			Prefix:  "craftingTable.addShapeless(",
			Format:  record.FormatShapeless,
			Layouts: []Layout{slots("output", "ingredients")},
		},
		{
			Name:    "furnace",
			Prefix:  "furnace.addRecipe(",
			Format:  record.FormatFurnace,
			Layouts: cookingLayouts(DefaultFurnaceCookTime),
		},
		{
			Name:    "blastFurnace",
			Prefix:  "blastFurnace.addRecipe(",
			Format:  record.FormatBlastFurnace,
			Layouts: cookingLayouts(DefaultBlastCookTime),
		},
		{
			Name:    "smoker",
			Prefix:  "smoker.addRecipe(",
			Format:  record.FormatSmoker,
			Layouts: cookingLayouts(DefaultSmokerCookTime),
		},
		{
			Name:    "campfire",
			Prefix:  "campfire.addRecipe(",
			Format:  record.FormatCampfire,
			Layouts: cookingLayouts(DefaultCampfireCookTime),
		},
		{
			Name:    "stoneCutter",
			Prefix:  "stoneCutter.addRecipe(",
			Format:  record.FormatStonecutting,
			Layouts: []Layout{slots("output", "input")},
		},
		{
			Name:    "smithing",
			Prefix:  "smithing.addRecipe(",
			Format:  record.FormatSmithing,
			Layouts: []Layout{slots("output", "base", "addition")},
		},

		// Mekanism typed calls. The recognition signature embeds the full
		// recipe-type name, keeping signatures mutually exclusive.
		{
			Name:    "mekanism:activating",
			Prefix:  typedPrefix("mekanism", "activating"),
			Format:  record.FormatActivating,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:centrifuging",
			Prefix:  typedPrefix("mekanism", "centrifuging"),
			Format:  record.FormatCentrifuging,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:oxidizing",
			Prefix:  typedPrefix("mekanism", "oxidizing"),
			Format:  record.FormatOxidizing,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:crushing",
			Prefix:  typedPrefix("mekanism", "crushing"),
			Format:  record.FormatCrushing,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:enriching",
			Prefix:  typedPrefix("mekanism", "enriching"),
			Format:  record.FormatEnriching,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:smelting",
			Prefix:  typedPrefix("mekanism", "smelting"),
			Format:  record.FormatSmelting,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:crystallizing",
			Prefix:  typedPrefix("mekanism", "crystallizing"),
			Format:  record.FormatCrystallizing,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:evaporating",
			Prefix:  typedPrefix("mekanism", "evaporating"),
			Format:  record.FormatEvaporating,
			Layouts: []Layout{slots("input", "output")},
		},
		{
			Name:    "mekanism:chemical_infusing",
			Prefix:  typedPrefix("mekanism", "chemical_infusing"),
			Format:  record.FormatChemicalInfusing,
			Layouts: []Layout{slots("leftInput", "rightInput", "output")},
		},
		{
			Name:    "mekanism:combining",
			Prefix:  typedPrefix("mekanism", "combining"),
			Format:  record.FormatCombining,
			Layouts: []Layout{slots("input", "extraInput", "output")},
		},
		{
			Name:    "mekanism:dissolution",
			Prefix:  typedPrefix("mekanism", "dissolution"),
			Format:  record.FormatDissolution,
			Layouts: []Layout{slots("input", "chemicalInput", "output")},
		},
		{
			Name:    "mekanism:metallurgic_infusing",
			Prefix:  typedPrefix("mekanism", "metallurgic_infusing"),
			Format:  record.FormatMetallurgicInfusing,
			Layouts: []Layout{slots("input", "chemicalInput", "output")},
		},
		{
			Name:    "mekanism:washing",
			Prefix:  typedPrefix("mekanism", "washing"),
			Format:  record.FormatWashing,
			Layouts: []Layout{slots("fluidInput", "chemicalInput", "output")},
		},
		{
			Name:    "mekanism:purifying",
			Prefix:  typedPrefix("mekanism", "purifying"),
			Format:  record.FormatPurifying,
			Layouts: pairLayouts(),
		},
		{
			Name:    "mekanism:injecting",
			Prefix:  typedPrefix("mekanism", "injecting"),
			Format:  record.FormatInjecting,
			Layouts: pairLayouts(),
		},
		{
			Name:    "mekanism:compressing",
			Prefix:  typedPrefix("mekanism", "compressing"),
			Format:  record.FormatCompressing,
			Layouts: pairLayouts(),
		},
		{
			Name:    "mekanism:separating",
			Prefix:  typedPrefix("mekanism", "separating"),
			Format:  record.FormatSeparating,
			Layouts: []Layout{slots("input", "leftOutput", "rightOutput")},
		},
		{
			Name:   "mekanism:sawing",
			Prefix: typedPrefix("mekanism", "sawing"),
			Format: record.FormatSawing,
			Layouts: []Layout{
				slots("input", "output"),
				slots("input", "output", "secondaryOutput").
					withField(FieldSpec{Name: "secondaryChance", Kind: KindFloat}),
			},
		},
		{
			Name:   "mekanism:nucleosynthesizing",
			Prefix: typedPrefix("mekanism", "nucleosynthesizing"),
			Format: record.FormatNucleosynthesizing,
			Layouts: []Layout{
				slots("input", "chemicalInput", "output").
					withField(FieldSpec{Name: "duration", Kind: KindInt}),
				slots("input", "chemicalInput", "output").
					withField(FieldSpec{Name: "duration", Kind: KindInt}).
					withField(FieldSpec{Name: "perTick", Kind: KindFloat}),
			},
		},
		{
			Name:   "mekanism:reaction",
			Prefix: typedPrefix("mekanism", "reaction"),
			Format: record.FormatReaction,
			Layouts: []Layout{
				reactionLayout(),
				reactionLayout().
					withField(FieldSpec{Name: "energyRequired", Kind: KindFloat, Soft: true, Default: 0.0}),
			},
		},
	}
}

func reactionLayout() Layout {
	return Layout{Fields: []FieldSpec{
		{Name: "input", Kind: KindString},
		{Name: "fluidInput", Kind: KindString},
		{Name: "chemicalInput", Kind: KindString},
		{Name: "duration", Kind: KindInt},
		{Name: "output", Kind: KindString},
		{Name: "chemicalOutput", Kind: KindString},
	}}
}
