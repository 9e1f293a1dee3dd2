package text

import (
	"slices"
	"testing"

	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/session"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestParser(t *testing.T) (*Parser, *font.Memory, *session.Session) {
	t.Helper()
	f := font.NewMemoryFont("Test", "ABC天地\u00e9", "abc", "a.sc")
	svc := font.NewMemory(f)
	sess := session.New()
	sess.Reset(svc.FontIdentity(f))
	return NewParser(svc, sess, 0), svc, sess
}

func ids(s ...string) []font.GlyphID {
	out := make([]font.GlyphID, len(s))
	for i, v := range s {
		out[i] = font.GlyphID(v)
	}
	return out
}

func TestParse(t *testing.T) {
	p, _, _ := newTestParser(t)

	tests := []struct {
		name string
		in   string
		max  int
		want []font.GlyphID
	}{
		{"empty", "", 0, nil},
		{"whitespace", "   ", 0, nil},
		{"CJK pair", "天天", 0, ids("天", "天")},
		{"nice name run", "abc", 0, ids("abc")},
		{"invalid run dropped whole", "abcx", 0, nil},
		{"invalid tokens dropped", "A zz B", 0, ids("A", "B")},
		{"mixed without spaces", "天abc地", 0, ids("天", "abc", "地")},
		{"dotted name", "a.sc", 0, ids("a.sc")},
		{"max count", "A B C", 2, ids("A", "B")},
		{"negative max is unlimited", "A B", -1, ids("A", "B")},
		{"hex name", "uni5929", 0, ids("uni5929")},
		{"decomposed accent", "e\u0301", 0, ids("\u00e9")},
		{"fully invalid", "xyz 人", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Parse(tt.in, tt.max); !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestParseNoFont(t *testing.T) {
	p := NewParser(font.NewMemory(nil), nil, 0)
	if got := p.Parse("A", 0); got != nil {
		t.Errorf("Parse without font = %q, want nil", got)
	}
	if _, ok := p.First("A"); ok {
		t.Error("First without font must fail")
	}
	if p.Exists("A") {
		t.Error("Exists without font must be false")
	}
}

func TestParseResultIsACopy(t *testing.T) {
	p, _, _ := newTestParser(t)
	got := p.Parse("A B", 0)
	got[0] = "mutated"
	if again := p.Parse("A B", 0); again[0] != "A" {
		t.Errorf("cached result was mutated: %q", again)
	}
}

func TestParseCaching(t *testing.T) {
	p, _, _ := newTestParser(t)
	p.Parse("A B", 0)
	p.Parse("A B", 0)

	stats := p.Stats()
	if stats[0].Hits != 1 {
		t.Errorf("result cache hits = %d, want 1", stats[0].Hits)
	}
}

func TestParseCacheClearedOnFontSwitch(t *testing.T) {
	p, svc, sess := newTestParser(t)
	if got := p.Parse("地", 0); len(got) != 1 {
		t.Fatalf("Parse(地) = %q", got)
	}

	// Same master ID, glyph removed: only a session reset makes the
	// removal visible.
	svc.Active().RemoveGlyph("地")
	sess.Reset(svc.FontIdentity(svc.Active()))

	if got := p.Parse("地", 0); got != nil {
		t.Errorf("Parse(地) after removal = %q, want nil", got)
	}
}

func TestFirstAndHasGlyphs(t *testing.T) {
	p, _, _ := newTestParser(t)
	if id, ok := p.First("zz 天 A"); !ok || id != "天" {
		t.Errorf("First = %q, %v; want 天", id, ok)
	}
	if !p.HasGlyphs("zz A") {
		t.Error("HasGlyphs(zz A) = false")
	}
	if p.HasGlyphs("zz qq") {
		t.Error("HasGlyphs(zz qq) = true")
	}
}

func TestValidate(t *testing.T) {
	p, _, _ := newTestParser(t)

	tests := []struct {
		name        string
		in          string
		wantValid   bool
		wantGlyphs  []font.GlyphID
		wantInvalid []string
	}{
		{"blank", "  ", true, nil, nil},
		{"all valid", "天 A", true, ids("天", "A"), nil},
		{"one invalid", "天 zz", false, ids("天"), []string{"zz"}},
		{"all invalid", "人 qq", false, nil, []string{"人", "qq"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := p.Validate(tt.in)
			if v.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", v.Valid, tt.wantValid)
			}
			if !slices.Equal(v.Glyphs, tt.wantGlyphs) {
				t.Errorf("Glyphs = %q, want %q", v.Glyphs, tt.wantGlyphs)
			}
			if !slices.Equal(v.Invalid, tt.wantInvalid) {
				t.Errorf("Invalid = %q, want %q", v.Invalid, tt.wantInvalid)
			}
		})
	}
}

func TestParseRealFont(t *testing.T) {
	ws := font.NewWorkspace()
	if _, err := ws.OpenBytes("goregular", goregular.TTF); err != nil {
		t.Fatal(err)
	}
	p := NewParser(ws, session.New(), 0)

	if got := p.Parse("A 天 z", 0); !slices.Equal(got, ids("A", "z")) {
		t.Errorf("Parse = %q, want [A z]", got)
	}
	v := p.Validate("天")
	if v.Valid || len(v.Invalid) != 1 {
		t.Errorf("Validate(天) = %+v, want one invalid token", v)
	}
}
