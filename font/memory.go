package font

import (
	"slices"
	"time"
	"unicode/utf8"
)

// MemoryFont is a font that only exists in memory. It backs tests and the
// demo mode of the preview tool.
type MemoryFont struct {
	family  string
	masters []Master
	glyphs  []Glyph
	byName  map[string]int
	byRune  map[rune]int
	widths  map[string]float64 // keyed by master ID + "\x00" + glyph name
}

// NewMemoryFont creates a font containing one glyph per rune of chars plus
// one unencoded glyph per extra name. The font has a single master.
func NewMemoryFont(family, chars string, names ...string) *MemoryFont {
	f := &MemoryFont{
		family:  family,
		masters: []Master{{ID: family + "-regular", Name: "Regular"}},
		byName:  make(map[string]int),
		byRune:  make(map[rune]int),
		widths:  make(map[string]float64),
	}
	for _, r := range chars {
		f.AddGlyph(DefaultName(r), r)
	}
	for _, n := range names {
		f.AddGlyph(n, 0)
	}
	return f
}

// AddGlyph adds a glyph. A zero r leaves the glyph unencoded.
// Adding an existing name is a no-op.
func (f *MemoryFont) AddGlyph(name string, r rune) {
	if name == "" {
		return
	}
	if _, ok := f.byName[name]; ok {
		return
	}
	g := Glyph{Name: name, Index: uint16(len(f.glyphs)), Rune: r}
	f.glyphs = append(f.glyphs, g)
	f.byName[name] = len(f.glyphs) - 1
	if r != 0 {
		if _, taken := f.byRune[r]; !taken {
			f.byRune[r] = len(f.glyphs) - 1
		}
	}
}

// RemoveGlyph deletes the glyph with the given name, or the glyph encoded
// for a single-character argument.
func (f *MemoryFont) RemoveGlyph(nameOrChar string) {
	idx, ok := f.byName[nameOrChar]
	if !ok {
		if r, size := utf8.DecodeRuneInString(nameOrChar); size == len(nameOrChar) {
			idx, ok = f.byRune[r]
		}
	}
	if !ok {
		return
	}
	f.glyphs = slices.Delete(f.glyphs, idx, idx+1)
	f.reindex()
}

// SetMasters replaces the master list. At least one master is kept.
func (f *MemoryFont) SetMasters(masters ...Master) {
	if len(masters) == 0 {
		return
	}
	f.masters = slices.Clone(masters)
}

// SetWidth records the advance width of glyph name in master masterID.
func (f *MemoryFont) SetWidth(masterID, name string, width float64) {
	f.widths[masterID+"\x00"+name] = width
}

func (f *MemoryFont) reindex() {
	clear(f.byName)
	clear(f.byRune)
	for i := range f.glyphs {
		f.glyphs[i].Index = uint16(i)
		g := f.glyphs[i]
		f.byName[g.Name] = i
		if g.Rune != 0 {
			if _, taken := f.byRune[g.Rune]; !taken {
				f.byRune[g.Rune] = i
			}
		}
	}
}

// Family implements Font.
func (f *MemoryFont) Family() string { return f.family }

// Path implements Font. Memory fonts have no file.
func (f *MemoryFont) Path() string { return "" }

// GlyphCount implements Font.
func (f *MemoryFont) GlyphCount() int { return len(f.glyphs) }

// Masters implements Font.
func (f *MemoryFont) Masters() []Master { return slices.Clone(f.masters) }

func (f *MemoryFont) glyphByName(name string) (Glyph, bool) {
	if i, ok := f.byName[name]; ok {
		return f.glyphs[i], true
	}
	return Glyph{}, false
}

func (f *MemoryFont) glyphByRune(r rune) (Glyph, bool) {
	if i, ok := f.byRune[r]; ok {
		return f.glyphs[i], true
	}
	return Glyph{}, false
}

// Memory is a Service over in-memory fonts. One font is active at a time.
type Memory struct {
	active   *MemoryFont
	master   int
	selected GlyphID
}

// NewMemory creates a Service with f active. f may be nil (no font open).
func NewMemory(f *MemoryFont) *Memory {
	return &Memory{active: f}
}

// Open makes f the active font and resets the master to the first one.
func (m *Memory) Open(f *MemoryFont) {
	m.active = f
	m.master = 0
}

// Close closes the active font. The selection is dropped with it.
func (m *Memory) Close() {
	m.active = nil
	m.master = 0
	m.selected = Empty
}

// Active returns the active font, or nil.
func (m *Memory) Active() *MemoryFont { return m.active }

// SetMaster switches the active master. Out of range indices are ignored.
func (m *Memory) SetMaster(i int) {
	if m.active == nil || i < 0 || i >= len(m.active.masters) {
		return
	}
	m.master = i
}

// Select sets the live edit selection.
func (m *Memory) Select(id GlyphID) { m.selected = id }

// ClearSelection removes the live edit selection.
func (m *Memory) ClearSelection() { m.selected = Empty }

// CurrentContext implements Service.
func (m *Memory) CurrentContext() (Context, bool) {
	if m.active == nil {
		return Context{}, false
	}
	return Context{Font: m.active, Master: m.active.masters[m.master]}, true
}

// ResolveGlyph implements Service.
func (m *Memory) ResolveGlyph(f Font, charOrName string) (Glyph, bool) {
	mf, ok := f.(*MemoryFont)
	if !ok || mf == nil {
		return Glyph{}, false
	}
	return resolve(mf, charOrName)
}

// LayerWidth implements Service. Glyphs without a recorded width are 600
// units wide.
func (m *Memory) LayerWidth(g Glyph, master Master) float64 {
	if m.active != nil {
		if w, ok := m.active.widths[master.ID+"\x00"+g.Name]; ok {
			return w
		}
	}
	return 600
}

// FontIdentity implements Service.
func (m *Memory) FontIdentity(f Font) string {
	return IdentityOf(f, time.Time{})
}

// SelectedGlyph implements Service.
func (m *Memory) SelectedGlyph() (GlyphID, bool) {
	if m.active == nil || m.selected.IsEmpty() {
		return Empty, false
	}
	return m.selected, true
}
