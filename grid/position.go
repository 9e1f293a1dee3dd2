package grid

import (
	"strings"

	"github.com/gogpu/ninebox/font"
)

// Size is the number of cells in the nine-box.
const Size = 9

// Position indexes a cell of the 3×3 grid, row by row:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Position int

// Center is the cell showing the glyph being edited. It is never lockable.
const Center Position = 4

// Surrounding lists the eight non-center positions in order.
var Surrounding = [...]Position{0, 1, 2, 3, 5, 6, 7, 8}

// Valid reports whether p is one of the nine cells.
func (p Position) Valid() bool { return p >= 0 && p < Size }

// Lockable reports whether p may carry a lock input.
func (p Position) Lockable() bool { return p.Valid() && p != Center }

// Row returns the zero-based row of p.
func (p Position) Row() int { return int(p) / 3 }

// Col returns the zero-based column of p.
func (p Position) Col() int { return int(p) % 3 }

// Arrangement is one glyph identifier per cell; font.Empty is a blank cell.
type Arrangement [Size]font.GlyphID

// IsBlank reports whether every cell is empty.
func (a Arrangement) IsBlank() bool {
	for _, id := range a {
		if !id.IsEmpty() {
			return false
		}
	}
	return true
}

// String renders the arrangement as three space separated rows, with "·"
// for blank cells.
func (a Arrangement) String() string {
	var b strings.Builder
	for i, id := range a {
		switch {
		case i == 0:
		case i%3 == 0:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		if id.IsEmpty() {
			b.WriteString("·")
		} else {
			b.WriteString(string(id))
		}
	}
	return b.String()
}

// Mirror returns the live selection layer: id in every cell, or an all
// blank arrangement when id is empty.
func Mirror(id font.GlyphID) Arrangement {
	var a Arrangement
	if id.IsEmpty() {
		return a
	}
	for i := range a {
		a[i] = id
	}
	return a
}
