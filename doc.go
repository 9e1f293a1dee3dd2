// Package ninebox composes a live 3×3 preview of glyphs around the glyph
// being edited in a font editor.
//
// # Overview
//
// The preview merges three layers into nine cells:
//
//   - the live selection, mirrored into every cell
//   - the arrangement, filled from the search text or at random
//   - the lock inputs, raw per-cell text that overrides the other layers
//     while lock mode is on
//
// The center cell always shows the selection, or nothing.
//
// # Quick Start
//
//	ws := font.NewWorkspace()
//	ws.Open("MyFont-Regular.ttf")
//
//	c := ninebox.New(ws)
//	c.Handle(ninebox.FontContextChangedEvent{})
//	c.Handle(ninebox.SearchTextChangedEvent{Text: "天 地 abc"})
//
//	cells := c.DisplayArrangement()
//
// # Events and effects
//
// Host notifications are delivered through Controller.Handle, which
// returns the Effects the host must apply: recompose and repaint the grid,
// persist the state, or nothing. Handle is not re-entrant; events sent
// from inside a Handle call are folded into the outer call's effects.
//
// # Fonts
//
// The controller talks to the font editor through font.Service. Results
// that depend on the font (glyph lookups, random batches, advance widths)
// are cached per font session and dropped together whenever the font or
// its master changes. Arrangement cells that no longer resolve are then
// refilled; lock inputs are never rewritten, only reported by
// Controller.InvalidLocks.
//
// # Persistence
//
// Controller.Load and Controller.Save move the search text, lock inputs,
// arrangement and lock mode through a prefs.Store.
package ninebox
