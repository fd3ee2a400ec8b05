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
	"fmt"
	"strconv"
	"strings"
)

// DefaultNamespace is assumed when a reference token does not carry an
// explicit namespace.
const DefaultNamespace = "minecraft"

// Ingredient is the canonical view of one item, tag, fluid, or chemical
// reference.
type Ingredient struct {
	// Text is the reduced reference token, modifier chains and quantity
	// multipliers stripped. Non-token field text passes through verbatim.
	Text string `json:"text" yaml:"text"`

	// Namespace is the source namespace of the reference, DefaultNamespace
	// when the token does not name one.
	Namespace string `json:"namespace" yaml:"namespace"`

	// Tag is true for tag references, false for concrete ones.
	Tag bool `json:"tag,omitempty" yaml:"tag,omitempty"`

	// Quantity is the multiplier attached to the reference, 1 when absent.
	Quantity int `json:"quantity" yaml:"quantity"`
}

// Label renders the ingredient for presentation: the reference text with a
// quantity suffix when the quantity exceeds one.
func (i Ingredient) Label() string {
	if i.Quantity > 1 {
		return fmt.Sprintf("%s x%d", i.Text, i.Quantity)
	}
	return i.Text
}

// ParseField expands one raw slot field into its alternatives. Alternation
// (`|` between references) yields one ingredient per alternative; everything
// else yields exactly one.
func ParseField(raw string) []Ingredient {
	parts := splitAlternatives(raw)
	out := make([]Ingredient, 0, len(parts))
	for _, p := range parts {
		out = append(out, parseOne(p))
	}
	return out
}

// parseOne normalizes a single (non-alternated) field: quantity multipliers
// are folded into Quantity, modifier chains reduce to their inner reference
// token, and the namespace is read from the token.
func parseOne(raw string) Ingredient {
	raw = strings.TrimSpace(raw)

	ing := Ingredient{Quantity: 1}
	raw, ing.Quantity = stripQuantity(raw)

	if tok := firstRefToken(raw); tok != "" {
		raw = tok
	}
	ing.Text = raw

	inner, ok := strings.CutPrefix(raw, "<")
	if !ok || !strings.HasSuffix(inner, ">") {
		ing.Namespace = DefaultNamespace
		return ing
	}
	inner = strings.TrimSuffix(inner, ">")
	parts := strings.Split(inner, ":")

	ing.Tag = parts[0] == "tag"
	ing.Namespace = namespaceOf(parts)
	return ing
}

// namespaceOf reads the namespace segment out of a split reference token.
// Concrete tokens are <kind:namespace:path>; tag tokens carry an extra
// registry segment, <tag:registry:namespace:path>.
func namespaceOf(parts []string) string {
	if parts[0] == "tag" {
		if len(parts) >= 4 {
			return parts[2]
		}
		return DefaultNamespace
	}
	if len(parts) >= 3 {
		return parts[1]
	}
	return DefaultNamespace
}

// stripQuantity folds a trailing top-level `* N` multiplier into a count.
// Text without a well-formed integer multiplier passes through untouched.
func stripQuantity(raw string) (string, int) {
	i := topLevelIndex(raw, '*')
	if i < 0 {
		return raw, 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw[i+1:]))
	if err != nil || n < 1 {
		return raw, 1
	}
	return strings.TrimSpace(raw[:i]), n
}

// splitAlternatives splits on `|` at top level, leaving nesting intact.
func splitAlternatives(raw string) []string {
	var out []string
	start := 0
	depth, inRef := 0, false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '<':
			inRef = true
		case '>':
			inRef = false
		case '(', '[':
			if !inRef {
				depth++
			}
		case ')', ']':
			if !inRef && depth > 0 {
				depth--
			}
		case '|':
			if !inRef && depth == 0 {
				out = append(out, strings.TrimSpace(raw[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(raw[start:]))
	return out
}

// topLevelIndex returns the index of the first occurrence of c outside
// reference tokens and nesting, -1 if none.
func topLevelIndex(raw string, c byte) int {
	depth, inRef := 0, false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '<':
			inRef = true
		case '>':
			inRef = false
		case '(', '[':
			if !inRef {
				depth++
			}
		case ')', ']':
			if !inRef && depth > 0 {
				depth--
			}
		case c:
			if !inRef && depth == 0 {
				return i
			}
		}
	}
	return -1
}

// firstRefToken returns the first complete <...> token in the text, empty
// when there is none. Modifier chains like (<item:x>).mutable() reduce to
// the token they wrap.
func firstRefToken(raw string) string {
	open := strings.IndexByte(raw, '<')
	if open < 0 {
		return ""
	}
	end := strings.IndexByte(raw[open:], '>')
	if end < 0 {
		return ""
	}
	return raw[open : open+end+1]
}
