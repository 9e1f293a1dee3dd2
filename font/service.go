package font

// GlyphID identifies a glyph the way the user typed it: a literal character
// ("A", "天") or a glyph name ("a.sc", "uni5929"). The empty GlyphID is the
// blank cell.
type GlyphID string

// Empty is the blank cell.
const Empty GlyphID = ""

// IsEmpty reports whether id is the blank cell.
func (id GlyphID) IsEmpty() bool { return id == Empty }

// Font is an opaque handle to an open font document.
type Font interface {
	// Family returns the family name, or "" if unknown.
	Family() string

	// Path returns the file the font was loaded from, or "" for fonts
	// that only exist in memory.
	Path() string

	// GlyphCount returns the number of glyphs in the font.
	GlyphCount() int

	// Masters returns the interpolation masters. Static fonts have one.
	Masters() []Master
}

// Master is one interpolation source of a font (a weight, a width...).
// Its ID partitions per-font caches.
type Master struct {
	ID   string
	Name string
}

// Glyph is a glyph resolved in a specific font.
type Glyph struct {
	// Name is the glyph's production or nice name.
	Name string
	// Index is the glyph index within the font.
	Index uint16
	// Rune is the code point mapped to the glyph, or 0 if unencoded.
	Rune rune
}

// Context is the font and master currently being edited.
type Context struct {
	Font   Font
	Master Master
}

// Service is the narrow view of the host font editor that the grid engine
// depends on. Implementations must be usable from a single goroutine; none
// of the methods may block.
type Service interface {
	// CurrentContext returns the active font and master, or false when no
	// font is open.
	CurrentContext() (Context, bool)

	// ResolveGlyph looks up a character or glyph name in f. It tries the
	// exact glyph name, then the Unicode hex name form (uniXXXX, uXXXXX)
	// and finally the code point for single-character input.
	ResolveGlyph(f Font, charOrName string) (Glyph, bool)

	// LayerWidth returns the advance width of g in master m, in font units.
	LayerWidth(g Glyph, m Master) float64

	// FontIdentity returns a string that changes whenever f is replaced,
	// saved, or has its glyph set edited.
	FontIdentity(f Font) string

	// SelectedGlyph returns the glyph currently selected in the editor.
	SelectedGlyph() (GlyphID, bool)
}
