package text

import (
	"slices"

	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/internal/cache"
	"github.com/gogpu/ninebox/session"
)

// DefaultCacheLimit is the soft limit of each parser cache.
const DefaultCacheLimit = 1024

// parseKey identifies a cached Parse result.
type parseKey struct {
	master string
	text   string
	max    int
}

// lookupKey identifies a cached token lookup.
type lookupKey struct {
	master string
	token  string
}

// Parser turns free text into glyph identifiers of the active font.
//
// Tokens that do not resolve are dropped as a whole: an invalid run such as
// "abcx" is never split into "a", "b", "c".
//
// Parser is not safe for concurrent use.
type Parser struct {
	svc     font.Service
	results *cache.Cache[parseKey, []font.GlyphID]
	lookups *cache.Cache[lookupKey, bool] // false is the not-found sentinel
}

// NewParser creates a parser resolving against svc. Its caches are
// registered with sess and therefore cleared on every font switch.
// A non-positive limit selects DefaultCacheLimit.
func NewParser(svc font.Service, sess *session.Session, limit int) *Parser {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	p := &Parser{
		svc:     svc,
		results: cache.New[parseKey, []font.GlyphID]("parse", limit),
		lookups: cache.New[lookupKey, bool]("glyph-lookup", limit),
	}
	if sess != nil {
		sess.Register(p.results)
		sess.Register(p.lookups)
	}
	return p
}

// Parse returns the glyph identifiers found in input, in order, keeping at
// most maxCount of them (maxCount <= 0 keeps all). Blank input and a
// missing font both yield nil.
func (p *Parser) Parse(input string, maxCount int) []font.GlyphID {
	if IsBlank(input) {
		return nil
	}
	ctx, ok := p.svc.CurrentContext()
	if !ok {
		return nil
	}
	if maxCount < 0 {
		maxCount = 0
	}

	key := parseKey{master: ctx.Master.ID, text: input, max: maxCount}
	ids := p.results.GetOrCreate(key, func() []font.GlyphID {
		return p.parse(ctx, input, maxCount)
	})
	return slices.Clone(ids)
}

// First returns the first glyph identifier in input.
func (p *Parser) First(input string) (font.GlyphID, bool) {
	ids := p.Parse(input, 1)
	if len(ids) == 0 {
		return font.Empty, false
	}
	return ids[0], true
}

// HasGlyphs reports whether input contains at least one valid glyph.
func (p *Parser) HasGlyphs(input string) bool {
	return len(p.Parse(input, 1)) > 0
}

func (p *Parser) parse(ctx font.Context, input string, maxCount int) []font.GlyphID {
	var ids []font.GlyphID
	for _, tok := range Segment(Normalize(input)) {
		if !p.exists(ctx, tok) {
			continue
		}
		ids = append(ids, font.GlyphID(tok))
		if maxCount > 0 && len(ids) == maxCount {
			break
		}
	}
	return ids
}

// Exists reports whether id resolves in the active font.
func (p *Parser) Exists(id font.GlyphID) bool {
	if id.IsEmpty() {
		return false
	}
	ctx, ok := p.svc.CurrentContext()
	if !ok {
		return false
	}
	return p.exists(ctx, Normalize(string(id)))
}

func (p *Parser) exists(ctx font.Context, token string) bool {
	key := lookupKey{master: ctx.Master.ID, token: token}
	return p.lookups.GetOrCreate(key, func() bool {
		_, ok := p.svc.ResolveGlyph(ctx.Font, token)
		return ok
	})
}

// Validation is the outcome of Validate.
type Validation struct {
	// Valid is true when no token failed to resolve.
	Valid bool
	// Glyphs are the tokens that resolved, in input order.
	Glyphs []font.GlyphID
	// Invalid are the tokens that did not resolve, in input order.
	Invalid []string
}

// Validate segments input like Parse but reports the tokens that do not
// resolve instead of dropping them. Without a font every token is invalid.
func (p *Parser) Validate(input string) Validation {
	v := Validation{Valid: true}
	if IsBlank(input) {
		return v
	}
	ctx, ok := p.svc.CurrentContext()
	for _, tok := range Segment(Normalize(input)) {
		if ok && p.exists(ctx, tok) {
			v.Glyphs = append(v.Glyphs, font.GlyphID(tok))
			continue
		}
		v.Invalid = append(v.Invalid, tok)
		v.Valid = false
	}
	return v
}

// Stats returns the statistics of the result and lookup caches.
func (p *Parser) Stats() []cache.Stats {
	return []cache.Stats{p.results.Stats(), p.lookups.Stats()}
}
