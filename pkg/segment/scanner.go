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

package segment

import (
	"io"
	"strings"
)

// recipeTypePrefix marks statements that carry an explicit type context.
const recipeTypePrefix = "<recipetype:"

// Scanner yields Segments from raw log text, one per statement, in source
// order. A statement terminates at a `;` that is outside a string literal,
// outside a reference token, and either at paren/bracket depth 0 or at the
// end of a line (depth recovery for truncated statements). EOF terminates a
// trailing non-empty statement so truncation surfaces downstream as an
// extraction error instead of being silently dropped.
//
// Usage follows bufio.Scanner:
//
//	sc := segment.NewScanner(text)
//	for sc.Scan() {
//	    seg := sc.Segment()
//	    ...
//	}
//
// Scanners are single-pass; create a new one to restart the sequence.
type Scanner struct {
	src  string
	pos  int
	line int
	cur  Segment
}

// NewScanner creates a Scanner over the given text.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// NewScannerFromReader reads all of r and returns a Scanner over its content.
func NewScannerFromReader(r io.Reader) (*Scanner, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewScanner(string(data)), nil
}

// Segment returns the segment produced by the last successful call to Scan.
func (s *Scanner) Segment() Segment {
	return s.cur
}

// Scan advances to the next statement. It returns false when the input is
// exhausted.
func (s *Scanner) Scan() bool {
	var (
		buf       strings.Builder
		startLine int
		depth     int
		inString  bool
		inRef     bool
		escaped   bool
	)

	flush := func(endLine int) bool {
		raw := strings.TrimSpace(buf.String())
		if strings.TrimSpace(strings.TrimSuffix(raw, ";")) == "" {
			return false
		}
		s.cur = Segment{
			RawText:    raw,
			RecipeType: typeContext(raw),
			StartLine:  startLine,
			EndLine:    endLine,
		}
		return true
	}

	for s.pos < len(s.src) {
		c := s.src[s.pos]
		s.pos++

		if c == '\n' {
			// String literals and reference tokens never span lines;
			// reset so malformed input cannot swallow the rest of the log.
			inString = false
			inRef = false
			escaped = false
			buf.WriteByte(c)
			s.line++
			continue
		}

		switch {
		case inString:
			buf.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		case c == '"':
			inString = true
		case inRef:
			if c == '>' {
				inRef = false
			}
			buf.WriteByte(c)
			continue
		case c == '<':
			inRef = true
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
		case c == ';':
			if depth == 0 || s.atLineEnd() {
				buf.WriteByte(c)
				if flush(s.line) {
					return true
				}
				// Empty statement, keep scanning.
				buf.Reset()
				startLine = 0
				depth = 0
				continue
			}
		}

		if startLine == 0 && !isSpace(c) {
			startLine = s.line
		}
		if startLine == 0 {
			continue // skip leading whitespace between statements
		}
		buf.WriteByte(c)
	}

	return flush(s.line)
}

// atLineEnd reports whether only whitespace remains before the next newline
// or EOF.
func (s *Scanner) atLineEnd() bool {
	for i := s.pos; i < len(s.src); i++ {
		switch s.src[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}
	return true
}

// typeContext extracts the bracketed recipe-type prefix, empty when absent.
func typeContext(raw string) string {
	if !strings.HasPrefix(raw, recipeTypePrefix) {
		return ""
	}
	end := strings.IndexByte(raw, '>')
	if end < 0 {
		return ""
	}
	return raw[:end+1]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// ScanAll drains a fresh scan of text and returns all segments in source
// order. Line ranges are non-decreasing.
func ScanAll(text string) []Segment {
	segments := make([]Segment, 0, 64)
	sc := NewScanner(text)
	for sc.Scan() {
		segments = append(segments, sc.Segment())
	}
	return segments
}
