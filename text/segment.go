package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode NFC, so that a decomposed "e" + U+0301
// typed by the user matches a precomposed "é" glyph.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Segment splits s into glyph tokens, scanning left to right:
//   - every wide-script (CJK) character is a token of its own
//   - consecutive non-space, non-wide characters form one token
//   - whitespace only separates tokens
//
// "天天" yields ["天", "天"]; "a.sc b" yields ["a.sc", "b"]; "天abc地"
// yields ["天", "abc", "地"], so Latin runs need no spaces around CJK.
func Segment(s string) []string {
	if IsBlank(s) {
		return nil
	}

	var tokens []string
	start := -1 // byte offset of the open non-wide run, or -1
	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, s[start:end])
			start = -1
		}
	}

	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case IsWideScript(r):
			flush(i)
			tokens = append(tokens, string(r))
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(s))
	return tokens
}
