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

// Format is the canonical result-kind tag identifying which field layout
// a Record follows.
type Format string

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// Format constants for the vanilla built-in registration calls.
const (
	FormatShaped       Format = "addShaped"
	FormatShapeless    Format = "addShapeless"
	FormatFurnace      Format = "addFurnace"
	FormatBlastFurnace Format = "addBlastFurnace"
	FormatSmoker       Format = "addSmoker"
	FormatCampfire     Format = "addCampfire"
	FormatStonecutting Format = "addStonecutting"
	FormatSmithing     Format = "addSmithing"
)

// Format constants for the typed Mekanism registration calls.
const (
	FormatActivating          Format = "addActivating"
	FormatCentrifuging        Format = "addCentrifuging"
	FormatOxidizing           Format = "addOxidizing"
	FormatCrushing            Format = "addCrushing"
	FormatEnriching           Format = "addEnriching"
	FormatSmelting            Format = "addSmelting"
	FormatCrystallizing       Format = "addCrystallizing"
	FormatEvaporating         Format = "addEvaporating"
	FormatChemicalInfusing    Format = "addChemicalInfusing"
	FormatCombining           Format = "addCombining"
	FormatDissolution         Format = "addDissolution"
	FormatMetallurgicInfusing Format = "addMetallurgicInfusing"
	FormatWashing             Format = "addWashing"
	FormatPurifying           Format = "addPurifying"
	FormatInjecting           Format = "addInjecting"
	FormatCompressing         Format = "addCompressing"
	FormatSeparating          Format = "addSeparating"
	FormatSawing              Format = "addSawing"
	FormatNucleosynthesizing  Format = "addNucleosynthesizing"
	FormatReaction            Format = "addReaction"
)

// Formats is the list of all known format tags, in registration order.
var Formats = []Format{
	FormatShaped,
	FormatShapeless,
	FormatFurnace,
	FormatBlastFurnace,
	FormatSmoker,
	FormatCampfire,
	FormatStonecutting,
	FormatSmithing,
	FormatActivating,
	FormatCentrifuging,
	FormatOxidizing,
	FormatCrushing,
	FormatEnriching,
	FormatSmelting,
	FormatCrystallizing,
	FormatEvaporating,
	FormatChemicalInfusing,
	FormatCombining,
	FormatDissolution,
	FormatMetallurgicInfusing,
	FormatWashing,
	FormatPurifying,
	FormatInjecting,
	FormatCompressing,
	FormatSeparating,
	FormatSawing,
	FormatNucleosynthesizing,
	FormatReaction,
}

// ParseFormat parses a string into a Format.
// Returns the Format and true if the string names a known format,
// or empty Format and false otherwise.
func ParseFormat(s string) (Format, bool) {
	for _, f := range Formats {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
