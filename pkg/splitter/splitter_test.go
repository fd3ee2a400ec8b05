package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple fields",
			input: "<item:minecraft:iron_ingot>, <item:minecraft:coal>",
			want:  []string{"<item:minecraft:iron_ingot>", "<item:minecraft:coal>"},
		},
		{
			name:  "alternation chain is one field",
			input: "<item:a> | <item:b>, <item:c>",
			want:  []string{"<item:a> | <item:b>", "<item:c>"},
		},
		{
			name:  "modifier chain is one field",
			input: "(<item:x>).mutable(), <item:y>",
			want:  []string{"(<item:x>).mutable()", "<item:y>"},
		},
		{
			name:  "quantity multiplier is one field",
			input: "<chemical:a> * 10, <chemical:b>",
			want:  []string{"<chemical:a> * 10", "<chemical:b>"},
		},
		{
			name:  "commas inside parens do not split",
			input: "foo(1, 2, 3), bar",
			want:  []string{"foo(1, 2, 3)", "bar"},
		},
		{
			name:  "commas inside list brackets do not split",
			input: "<item:out>, [[<item:a>, <item:b>], [<item:c>]]",
			want:  []string{"<item:out>", "[[<item:a>, <item:b>], [<item:c>]]"},
		},
		{
			name:  "trailing comma drops empty field",
			input: "<item:a>, <item:b>,",
			want:  []string{"<item:a>", "<item:b>"},
		},
		{
			name:  "unmatched closer floors depth at zero",
			input: "a), b, c",
			want:  []string{"a)", "b", "c"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  []string{},
		},
		{
			name:  "single field",
			input: "<item:minecraft:stone>",
			want:  []string{"<item:minecraft:stone>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input))
		})
	}
}

func TestSplitReferenceTokenShieldsDelimiters(t *testing.T) {
	// Characters inside <...> never affect depth or comma splitting.
	got := Split("<tag:items:forge:ingots/iron,copper>, <item:b>")
	assert.Equal(t, []string{"<tag:items:forge:ingots/iron,copper>", "<item:b>"}, got)
}

func TestSplitRoundTrip(t *testing.T) {
	// Re-joining output fields with ", " and re-splitting returns the same
	// list for inputs without irregular internal spacing.
	inputs := []string{
		"<item:a>, <item:b> | <item:c>, (<item:d>).mutable()",
		"<chemical:a> * 10, <chemical:b>",
		"<item:out>, [[<item:a>, <item:b>]], 0.5, 200",
	}
	for _, in := range inputs {
		first := Split(in)
		second := Split(strings.Join(first, ", "))
		assert.Equal(t, first, second, "input %q", in)
	}
}
