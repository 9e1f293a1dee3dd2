package font

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestWorkspaceOpenBytes(t *testing.T) {
	ws := NewWorkspace()
	if _, ok := ws.CurrentContext(); ok {
		t.Fatal("empty workspace must have no context")
	}

	doc, err := ws.OpenBytes("goregular", goregular.TTF)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}
	if doc.Family() != "Go" {
		t.Errorf("family = %q, want Go", doc.Family())
	}
	if doc.GlyphCount() == 0 {
		t.Error("expected glyphs")
	}
	if !strings.HasPrefix(ws.FontIdentity(doc), "hash:") {
		t.Errorf("in-memory document identity = %q, want hash based", ws.FontIdentity(doc))
	}

	ctx, ok := ws.CurrentContext()
	if !ok || ctx.Font != doc {
		t.Fatal("opened document must be active")
	}
	if len(doc.Masters()) != 1 {
		t.Errorf("masters = %v", doc.Masters())
	}
}

func TestWorkspaceResolve(t *testing.T) {
	ws := NewWorkspace()
	doc, err := ws.OpenBytes("goregular", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	for _, tok := range []string{"A", "z", "\u00e9", "uni0041"} {
		g, ok := ws.ResolveGlyph(doc, tok)
		if !ok {
			t.Errorf("ResolveGlyph(%q) failed", tok)
			continue
		}
		if g.Index == 0 {
			t.Errorf("ResolveGlyph(%q) returned .notdef", tok)
		}
	}
	if _, ok := ws.ResolveGlyph(doc, "天"); ok {
		t.Error("Go Regular has no CJK glyphs")
	}
	if _, ok := ws.ResolveGlyph(doc, "no.such.glyph"); ok {
		t.Error("unknown name must not resolve")
	}
}

func TestWorkspaceLayerWidth(t *testing.T) {
	ws := NewWorkspace()
	doc, err := ws.OpenBytes("goregular", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	ctx, _ := ws.CurrentContext()

	m, _ := ws.ResolveGlyph(doc, "m")
	i, _ := ws.ResolveGlyph(doc, "i")
	wm := ws.LayerWidth(m, ctx.Master)
	wi := ws.LayerWidth(i, ctx.Master)
	if wm <= 0 || wi <= 0 {
		t.Fatalf("widths m=%v i=%v must be positive", wm, wi)
	}
	if wm <= wi {
		t.Errorf("m (%v) should be wider than i (%v) in a proportional font", wm, wi)
	}
}

func TestWorkspaceOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "GoRegular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	ws := NewWorkspace()
	doc, err := ws.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id := ws.FontIdentity(doc)
	if !strings.HasPrefix(id, "file:"+path+"@") {
		t.Errorf("identity = %q, want file based", id)
	}
}

func TestWorkspaceOpenErrors(t *testing.T) {
	ws := NewWorkspace()
	if _, err := ws.Open(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := ws.OpenBytes("empty", nil); err != ErrEmptyFontData {
		t.Errorf("err = %v, want ErrEmptyFontData", err)
	}
	if _, err := ws.OpenBytes("junk", []byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
	if ws.Active() != nil {
		t.Error("failed opens must not add documents")
	}
}

func TestWorkspaceDocuments(t *testing.T) {
	ws := NewWorkspace()
	regular, err := ws.OpenBytes("regular", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	bold, err := ws.OpenBytes("bold", gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if ws.Active() != bold {
		t.Fatal("last opened document must be active")
	}
	if ws.FontIdentity(regular) == ws.FontIdentity(bold) {
		t.Error("different fonts must have different identities")
	}

	ws.Select("A")
	ws.Next()
	if ws.Active() != regular {
		t.Error("Next must wrap to the first document")
	}
	if _, ok := ws.SelectedGlyph(); ok {
		t.Error("selection must not carry over to another document")
	}

	if err := ws.Activate(7); err != ErrNoDocument {
		t.Errorf("Activate(7) = %v, want ErrNoDocument", err)
	}

	ws.CloseActive()
	if ws.Active() != bold {
		t.Error("closing the first document must activate the remaining one")
	}
	ws.CloseActive()
	if ws.Active() != nil {
		t.Error("workspace must be empty")
	}
	if _, ok := ws.CurrentContext(); ok {
		t.Error("no context after closing everything")
	}
}
