package font

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// HexNames returns the Unicode hex glyph names for r, most common first:
// uniXXXX and uXXXX for the BMP, uXXXXX[X] above it.
func HexNames(r rune) []string {
	if r < 0 || r > utf8.MaxRune {
		return nil
	}
	if r <= 0xFFFF {
		return []string{fmt.Sprintf("uni%04X", r), fmt.Sprintf("u%04X", r)}
	}
	return []string{fmt.Sprintf("u%05X", r)}
}

// ParseHexName decodes a uniXXXX or uXXXX[XX] glyph name into its code point.
func ParseHexName(name string) (rune, bool) {
	var digits string
	switch {
	case strings.HasPrefix(name, "uni") && len(name) == 7:
		digits = name[3:]
	case strings.HasPrefix(name, "u") && len(name) >= 5 && len(name) <= 7:
		digits = name[1:]
	default:
		return 0, false
	}
	if strings.ToUpper(digits) != digits {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, false
	}
	return rune(v), true
}

// DefaultName picks the glyph name a font editor would give the character
// r: ASCII letters and digits keep their character, everything else gets
// its hex name.
func DefaultName(r rune) string {
	if r < utf8.RuneSelf && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
		return string(r)
	}
	if names := HexNames(r); len(names) > 0 {
		return names[0]
	}
	return ""
}

// glyphLookup is the lookup surface shared by the Service implementations.
type glyphLookup interface {
	glyphByName(name string) (Glyph, bool)
	glyphByRune(r rune) (Glyph, bool)
}

// resolve applies the lookup order of Service.ResolveGlyph.
func resolve(l glyphLookup, token string) (Glyph, bool) {
	if token == "" {
		return Glyph{}, false
	}
	if g, ok := l.glyphByName(token); ok {
		return g, true
	}

	r, size := utf8.DecodeRuneInString(token)
	if size == len(token) && r != utf8.RuneError {
		for _, name := range HexNames(r) {
			if g, ok := l.glyphByName(name); ok {
				return g, true
			}
		}
		return l.glyphByRune(r)
	}

	// A hex name typed for a glyph that carries a different name.
	if r, ok := ParseHexName(token); ok {
		return l.glyphByRune(r)
	}
	return Glyph{}, false
}
