package grid

import (
	"slices"
	"strings"

	"github.com/gogpu/ninebox/font"
)

// Parser resolves free text into glyph identifiers of the active font.
// *text.Parser implements it.
type Parser interface {
	Parse(input string, maxCount int) []font.GlyphID
}

// Compose merges the layers of s into the nine cells to display. The live
// selection is whatever SetCenter last stored. It does not modify s.
//
// Layers apply in increasing priority:
//  1. the base layer: the selection mirrored into every cell
//  2. the arrangement, where filled, but only while the search text
//     contains at least one valid glyph
//  3. in lock mode, the first glyph of each parseable lock input
//  4. the selection (or blank) in the center, unconditionally
func Compose(s *State, p Parser) Arrangement {
	out := s.base

	if hasGlyphs(p, s.searchText) {
		for i, id := range s.arrangement {
			if !id.IsEmpty() {
				out[i] = id
			}
		}
	}

	if s.lockMode {
		for _, pos := range Surrounding {
			if id, ok := lockGlyph(p, s.lockInputs[pos]); ok {
				out[pos] = id
			}
		}
	}

	out[Center] = s.Selection()
	return out
}

// LockedPositions returns the positions whose lock input currently
// overrides the display: lock mode on and the input parses to a glyph.
func LockedPositions(s *State, p Parser) []Position {
	if !s.lockMode {
		return nil
	}
	var locked []Position
	for _, pos := range Surrounding {
		if _, ok := lockGlyph(p, s.lockInputs[pos]); ok {
			locked = append(locked, pos)
		}
	}
	return locked
}

// UnlockedPositions returns the surrounding positions not in LockedPositions.
func UnlockedPositions(s *State, p Parser) []Position {
	locked := LockedPositions(s, p)
	out := make([]Position, 0, len(Surrounding))
	for _, pos := range Surrounding {
		if !slices.Contains(locked, pos) {
			out = append(out, pos)
		}
	}
	return out
}

// EffectiveAlphabet is the source for random fills: the glyphs of the
// search text when it has any, else the selection alone, else nothing.
func EffectiveAlphabet(s *State, selection font.GlyphID, p Parser) []font.GlyphID {
	if ids := parse(p, s.searchText, 0); len(ids) > 0 {
		return ids
	}
	if !selection.IsEmpty() {
		return []font.GlyphID{selection}
	}
	return nil
}

// HasValidSearch reports whether the search text contains a valid glyph.
func HasValidSearch(s *State, p Parser) bool {
	return hasGlyphs(p, s.searchText)
}

func lockGlyph(p Parser, raw string) (font.GlyphID, bool) {
	ids := parse(p, raw, 1)
	if len(ids) == 0 {
		return font.Empty, false
	}
	return ids[0], true
}

func hasGlyphs(p Parser, input string) bool {
	return len(parse(p, input, 1)) > 0
}

func parse(p Parser, input string, maxCount int) []font.GlyphID {
	if p == nil || strings.TrimSpace(input) == "" {
		return nil
	}
	return p.Parse(input, maxCount)
}
