package font

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"time"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Document is a font file opened in a Workspace.
//
// Glyph names and the glyph count come from golang.org/x/image/font/sfnt,
// the family description and advances from go-text/typesetting, the same
// split the rendering stack uses for parsing versus shaping.
type Document struct {
	path    string
	modTime time.Time
	data    []byte

	sf   *opentype.Font
	gt   *gotext.Font
	face *gotext.Face

	family  string
	masters []Master

	// names maps glyph names to indices. Built on first name lookup.
	names map[string]sfnt.GlyphIndex
	buf   sfnt.Buffer
}

// Family implements Font.
func (d *Document) Family() string { return d.family }

// Path implements Font.
func (d *Document) Path() string { return d.path }

// GlyphCount implements Font.
func (d *Document) GlyphCount() int { return d.sf.NumGlyphs() }

// Masters implements Font.
func (d *Document) Masters() []Master { return slices.Clone(d.masters) }

// ModTime returns the modification time recorded when the file was opened.
func (d *Document) ModTime() time.Time { return d.modTime }

// Data returns the raw font bytes. Callers must not modify them.
func (d *Document) Data() []byte { return d.data }

func (d *Document) glyphByName(name string) (Glyph, bool) {
	if d.names == nil {
		d.indexNames()
	}
	idx, ok := d.names[name]
	if !ok {
		return Glyph{}, false
	}
	return Glyph{Name: name, Index: uint16(idx)}, true
}

func (d *Document) glyphByRune(r rune) (Glyph, bool) {
	gid, ok := d.gt.NominalGlyph(r)
	if !ok || gid == 0 {
		return Glyph{}, false
	}
	name, _ := d.sf.GlyphName(&d.buf, sfnt.GlyphIndex(gid))
	return Glyph{Name: name, Index: uint16(gid), Rune: r}, true
}

// indexNames reads every glyph name from the post or CFF table.
// Fonts without glyph names get an empty index; lookups then fall back to
// code points.
func (d *Document) indexNames() {
	n := d.sf.NumGlyphs()
	d.names = make(map[string]sfnt.GlyphIndex, n)
	for i := 0; i < n; i++ {
		name, err := d.sf.GlyphName(&d.buf, sfnt.GlyphIndex(i))
		if err != nil || name == "" {
			continue
		}
		if _, dup := d.names[name]; !dup {
			d.names[name] = sfnt.GlyphIndex(i)
		}
	}
}

// parseDocument parses font data with both backends.
func parseDocument(path string, modTime time.Time, data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse %q: %w", path, err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to load %q: %w", path, err)
	}

	d := &Document{
		path:    path,
		modTime: modTime,
		data:    data,
		sf:      sf,
		gt:      face.Font,
		face:    face,
	}
	d.family = face.Font.Describe().Family
	if d.family == "" {
		d.family, _ = sf.Name(&d.buf, sfnt.NameIDFamily)
	}
	style, _ := sf.Name(&d.buf, sfnt.NameIDSubfamily)
	if style == "" {
		style = "Regular"
	}
	d.masters = []Master{{ID: d.family + "-" + style, Name: style}}
	return d, nil
}

// Workspace is a Service over font files, modelled on an editor with
// several open documents and one active document.
type Workspace struct {
	docs     []*Document
	active   int
	selected GlyphID
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{active: -1}
}

// Open loads a TTF or OTF file and makes it the active document.
func (w *Workspace) Open(path string) (*Document, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to stat font file: %w", err)
	}
	d, err := parseDocument(path, info.ModTime(), data)
	if err != nil {
		return nil, err
	}
	w.add(d)
	return d, nil
}

// OpenBytes adds an in-memory font (an embedded font, a download) under
// name and makes it active. Its identity is hash based.
func (w *Workspace) OpenBytes(name string, data []byte) (*Document, error) {
	d, err := parseDocument(name, time.Time{}, slices.Clone(data))
	if err != nil {
		return nil, err
	}
	d.path = ""
	w.add(d)
	return d, nil
}

func (w *Workspace) add(d *Document) {
	w.docs = append(w.docs, d)
	w.active = len(w.docs) - 1
	w.selected = Empty
}

// Documents returns the open documents in opening order.
func (w *Workspace) Documents() []*Document { return slices.Clone(w.docs) }

// Active returns the active document, or nil.
func (w *Workspace) Active() *Document {
	if w.active < 0 || w.active >= len(w.docs) {
		return nil
	}
	return w.docs[w.active]
}

// Activate makes document i active. The selection does not carry over.
func (w *Workspace) Activate(i int) error {
	if i < 0 || i >= len(w.docs) {
		return ErrNoDocument
	}
	if i != w.active {
		w.active = i
		w.selected = Empty
	}
	return nil
}

// Next activates the document after the active one, wrapping around.
func (w *Workspace) Next() {
	if len(w.docs) == 0 {
		return
	}
	_ = w.Activate((w.active + 1) % len(w.docs))
}

// CloseActive closes the active document and activates the previous one.
func (w *Workspace) CloseActive() {
	if w.Active() == nil {
		return
	}
	w.docs = slices.Delete(w.docs, w.active, w.active+1)
	w.selected = Empty
	switch {
	case len(w.docs) == 0:
		w.active = -1
	case w.active > 0:
		w.active--
	}
}

// Select sets the live edit selection.
func (w *Workspace) Select(id GlyphID) { w.selected = id }

// ClearSelection removes the live edit selection.
func (w *Workspace) ClearSelection() { w.selected = Empty }

// CurrentContext implements Service.
func (w *Workspace) CurrentContext() (Context, bool) {
	d := w.Active()
	if d == nil {
		return Context{}, false
	}
	return Context{Font: d, Master: d.masters[0]}, true
}

// ResolveGlyph implements Service.
func (w *Workspace) ResolveGlyph(f Font, charOrName string) (Glyph, bool) {
	d, ok := f.(*Document)
	if !ok || d == nil {
		return Glyph{}, false
	}
	return resolve(d, charOrName)
}

// LayerWidth implements Service. Advances are reported in font units of the
// default instance.
func (w *Workspace) LayerWidth(g Glyph, _ Master) float64 {
	d := w.Active()
	if d == nil {
		return 0
	}
	return float64(d.face.HorizontalAdvance(gotext.GID(g.Index)))
}

// FontIdentity implements Service.
func (w *Workspace) FontIdentity(f Font) string {
	d, ok := f.(*Document)
	if !ok || d == nil {
		return ""
	}
	return IdentityOf(d, d.modTime)
}

// SelectedGlyph implements Service.
func (w *Workspace) SelectedGlyph() (GlyphID, bool) {
	if w.Active() == nil || w.selected.IsEmpty() {
		return Empty, false
	}
	return w.selected, true
}
