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

// Package segment converts raw multi-line log text into an ordered stream of
// candidate recipe-registration statements.
package segment

// Segment is one candidate statement extracted from a log. It is produced by
// the Scanner and consumed read-only by the dispatcher.
type Segment struct {
	// RawText is the statement verbatim, semicolon-terminated, trimmed of
	// surrounding whitespace.
	RawText string `json:"rawText" yaml:"rawText"`

	// RecipeType is the declared type context when the statement carries an
	// explicit bracketed type prefix (e.g. "<recipetype:mekanism:sawing>"),
	// empty otherwise.
	RecipeType string `json:"recipeType,omitempty" yaml:"recipeType,omitempty"`

	// StartLine and EndLine are 1-based inclusive source line numbers.
	StartLine int `json:"startLine" yaml:"startLine"`
	EndLine   int `json:"endLine" yaml:"endLine"`
}
