// Package splitter splits recipe-call parameter strings into top-level
// comma-separated fields while leaving nested syntax untouched.
//
// Three constructs must survive as single opaque fields: bracketed reference
// tokens (<item:minecraft:iron_ingot>, <tag:items:forge:ingots>), modifier
// chains ((<item:x>).mutable()), and alternation chains (<item:a> | <item:b>).
// Their internal semantics are deferred to the normalizer.
package splitter

import "strings"

// Split splits a parameter string (the text between the outer call
// parentheses, minus the leading id literal) into ordered top-level fields.
// A comma separates fields only at paren depth 0 and outside a reference
// token. Fields are trimmed; an empty trailing field after a trailing comma
// is dropped.
func Split(s string) []string {
	fields := make([]string, 0, 4)
	var buf strings.Builder

	depth := 0
	inRef := false

	for _, r := range s {
		switch {
		case r == '<' && !inRef:
			inRef = true
			buf.WriteRune(r)
		case r == '>' && inRef:
			inRef = false
			buf.WriteRune(r)
		case inRef:
			// Reference token content never affects depth or splitting.
			buf.WriteRune(r)
		case r == '(' || r == '[':
			depth++
			buf.WriteRune(r)
		case r == ')' || r == ']':
			// Unmatched closers must not crash; depth floors at 0.
			if depth > 0 {
				depth--
			}
			buf.WriteRune(r)
		case r == ',' && depth == 0:
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}

	if tail := strings.TrimSpace(buf.String()); tail != "" {
		fields = append(fields, tail)
	}
	return fields
}
