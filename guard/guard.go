// Package guard detects font and master switches and repairs the
// arrangement layer of a grid.State for the newly active font.
package guard

import (
	"github.com/gogpu/ninebox/arrange"
	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/grid"
	"github.com/gogpu/ninebox/internal/logging"
	"github.com/gogpu/ninebox/session"
	"github.com/gogpu/ninebox/text"
)

// Guard compares the active font context against the one the session's
// caches were filled for.
//
// Guard is not safe for concurrent use.
type Guard struct {
	svc     font.Service
	sess    *session.Session
	parser  *text.Parser
	gen     *arrange.Generator
	checked bool
	invalid []grid.Position
}

// New creates a guard. parser and gen must be registered with sess.
func New(svc font.Service, sess *session.Session, parser *text.Parser, gen *arrange.Generator) *Guard {
	return &Guard{svc: svc, sess: sess, parser: parser, gen: gen}
}

// Key returns the identity the session is bound to for ctx: the font
// identity plus the master, so a master switch counts as a change.
func Key(svc font.Service, ctx font.Context) string {
	return svc.FontIdentity(ctx.Font) + "#" + ctx.Master.ID
}

// Current returns the key of the active font context, if any.
func (g *Guard) Current() (string, bool) {
	ctx, ok := g.svc.CurrentContext()
	if !ok {
		return "", false
	}
	return Key(g.svc, ctx), true
}

// Stale reports whether the session no longer matches the active font
// context.
func (g *Guard) Stale() bool {
	key, ok := g.Current()
	if !ok {
		_, known := g.sess.Identity()
		return known
	}
	return !g.sess.Matches(key)
}

// OnFontContextChanged reports whether the font context changed since the
// last call; the first call always reports a change.
//
// On a change every session cache is cleared, lock inputs that no longer
// resolve are recorded for InvalidLocks (never rewritten), and arrangement
// cells that no longer resolve are refilled from the effective alphabet.
func (g *Guard) OnFontContextChanged(s *grid.State) bool {
	first := !g.checked
	g.checked = true

	ctx, ok := g.svc.CurrentContext()
	if !ok {
		_, known := g.sess.Identity()
		if known {
			g.sess.Forget()
		}
		g.invalid = nil
		if known || first {
			logging.Logger().Debug("guard: no font context")
			return true
		}
		return false
	}

	key := Key(g.svc, ctx)
	if !first && g.sess.Matches(key) {
		return false
	}
	g.sess.Reset(key)
	logging.Logger().Info("guard: font context changed",
		"family", ctx.Font.Family(), "master", ctx.Master.Name)

	g.invalid = g.scanLocks(s)
	g.repairArrangement(s)
	return true
}

// InvalidLocks returns the lock positions whose text did not fully
// resolve at the last change.
func (g *Guard) InvalidLocks() []grid.Position {
	if len(g.invalid) == 0 {
		return nil
	}
	return append([]grid.Position(nil), g.invalid...)
}

// Revalidate recomputes the invalid lock positions against the current
// font without treating it as a change. It is used after a lock edit.
func (g *Guard) Revalidate(s *grid.State) {
	if _, ok := g.svc.CurrentContext(); !ok {
		g.invalid = nil
		return
	}
	g.invalid = g.scanLocks(s)
}

// Forget drops the remembered font so that the next check reports a change.
func (g *Guard) Forget() {
	g.sess.Forget()
	g.invalid = nil
	g.checked = false
}

func (g *Guard) scanLocks(s *grid.State) []grid.Position {
	if !s.HasLockInputs() {
		return nil
	}
	var invalid []grid.Position
	for _, p := range grid.Surrounding {
		raw := s.LockInput(p)
		if text.IsBlank(raw) {
			continue
		}
		if !g.parser.Validate(raw).Valid {
			invalid = append(invalid, p)
		}
	}
	if len(invalid) > 0 {
		logging.Logger().Warn("guard: lock inputs do not resolve", "positions", invalid)
	}
	return invalid
}

func (g *Guard) repairArrangement(s *grid.State) {
	current := s.Arrangement()
	var broken []grid.Position
	for i, id := range current {
		if !id.IsEmpty() && !g.parser.Exists(id) {
			broken = append(broken, grid.Position(i))
		}
	}
	if len(broken) == 0 {
		return
	}

	selection, _ := g.svc.SelectedGlyph()
	alphabet := grid.EffectiveAlphabet(s, selection, g.parser)
	s.SetArrangement(g.gen.Fill(current, broken, alphabet))
	logging.Logger().Debug("guard: repaired arrangement",
		"positions", broken, "alphabet", len(alphabet))
}
