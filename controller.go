package ninebox

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gogpu/ninebox/arrange"
	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/grid"
	"github.com/gogpu/ninebox/guard"
	"github.com/gogpu/ninebox/internal/cache"
	"github.com/gogpu/ninebox/session"
	"github.com/gogpu/ninebox/text"
)

// widthKey identifies a cached advance width.
type widthKey struct {
	master string
	glyph  font.GlyphID
}

// Controller sequences parsing, randomization and font repair in response
// to host events, and composes the nine cells to display.
//
// Controller is not safe for concurrent use. Every method must be called
// from the host's event loop.
type Controller struct {
	svc    font.Service
	sess   *session.Session
	parser *text.Parser
	gen    *arrange.Generator
	guard  *guard.Guard
	state  *grid.State
	widths *cache.Cache[widthKey, float64]
	log    *slog.Logger

	phase   UpdatePhase
	pending bool
	synced  bool

	debounce time.Duration
	clock    func() time.Time
	lastKey  string
	lastAt   time.Time
}

// New creates a controller over svc with an empty grid state.
func New(svc font.Service, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sess := session.New()
	parser := text.NewParser(svc, sess, o.cacheLimit)
	genOpts := []arrange.Option{arrange.WithRand(o.rng)}
	if o.cacheLimit > 0 {
		genOpts = append(genOpts, arrange.WithCacheLimit(o.cacheLimit))
	}
	gen := arrange.NewGenerator(svc, sess, genOpts...)

	c := &Controller{
		svc:      svc,
		sess:     sess,
		parser:   parser,
		gen:      gen,
		guard:    guard.New(svc, sess, parser, gen),
		state:    grid.NewState(),
		widths:   cache.New[widthKey, float64]("layer-width", o.cacheLimit),
		log:      o.logger,
		debounce: o.debounce,
		clock:    o.clock,
	}
	sess.Register(c.widths)
	return c
}

func (c *Controller) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// Handle applies ev and reports what the host has to do next.
//
// An event delivered while another one is being handled (a host callback
// fired from inside Handle) is not applied: it returns EffectNone and the
// outer call reports a recompose instead.
func (c *Controller) Handle(ev Event) Effects {
	if c.phase != PhaseIdle {
		c.pending = true
		c.logger().Debug("ninebox: coalesced re-entrant event",
			"event", eventName(ev), "phase", c.phase)
		return EffectNone
	}
	if c.debounced(ev) {
		c.logger().Debug("ninebox: debounced event", "event", eventName(ev))
		return EffectNone
	}

	c.phase = PhaseUpdating
	if _, ok := ev.(LockInputChangedEvent); ok {
		c.phase = PhaseGranular
	}
	eff := EffectNone
	switch ev.(type) {
	case FontContextChangedEvent, FontClosedEvent:
	default:
		if c.syncFont() {
			eff |= EffectPersist
		}
	}
	eff |= c.dispatch(ev)
	c.phase = PhaseIdle

	if c.pending {
		c.pending = false
		eff |= effectRedraw
	}
	c.logger().Debug("ninebox: handled event", "event", eventName(ev), "effects", eff)
	return eff
}

func (c *Controller) dispatch(ev Event) Effects {
	switch ev := ev.(type) {
	case ShowEvent:
		return c.show()
	case SelectionChangedEvent:
		return c.selectionChanged()
	case SearchTextChangedEvent:
		return c.searchTextChanged(ev.Text)
	case LockInputChangedEvent:
		return c.lockInputChanged(ev.Position, ev.Text)
	case LockPositionToggledEvent:
		return c.lockToggled(ev.Position)
	case LockModeToggledEvent:
		c.state.SetLockMode(!c.state.LockMode())
		return effectAll
	case ClearLocksEvent:
		c.state.ClearAllLocks()
		c.guard.Revalidate(c.state)
		return c.updateAndRedraw(UpdateOptions{Force: true}) | EffectPersist
	case RandomizeEvent:
		return c.updateAndRedraw(UpdateOptions{Force: true}) | EffectPersist
	case FontContextChangedEvent:
		return c.fontContextChanged()
	case FontClosedEvent:
		c.guard.Forget()
		c.synced = false
		c.state.SetCenter(font.Empty)
		return effectRedraw
	default:
		c.logger().Warn("ninebox: unknown event", "event", eventName(ev))
		return EffectNone
	}
}

func (c *Controller) show() Effects {
	eff := EffectNone
	c.refreshSelection()
	if c.ShouldRandomizeOnShow() {
		eff |= EffectPersist
	}
	return eff | c.updateAndRedraw(UpdateOptions{})
}

func (c *Controller) selectionChanged() Effects {
	c.refreshSelection()
	return c.updateAndRedraw(UpdateOptions{})
}

func (c *Controller) searchTextChanged(raw string) Effects {
	if raw == c.state.SearchText() {
		return EffectNone
	}
	c.state.SetSearchText(raw)
	if grid.HasValidSearch(c.state, c.parser) {
		c.randomize(false)
	}
	return c.updateAndRedraw(UpdateOptions{Skip: true}) | EffectPersist
}

func (c *Controller) lockInputChanged(p grid.Position, raw string) Effects {
	if !c.state.SetLockInput(p, raw) {
		c.logger().Debug("ninebox: lock input rejected", "position", p)
		return EffectNone
	}
	c.guard.Revalidate(c.state)
	if !c.state.LockMode() {
		return EffectPersist
	}
	return c.updateAndRedraw(UpdateOptions{Skip: true}) | EffectPersist
}

func (c *Controller) lockToggled(p grid.Position) Effects {
	if !p.Lockable() {
		return EffectNone
	}
	current := c.DisplayArrangement()[p]
	c.state.ToggleLock(p, current)
	c.guard.Revalidate(c.state)
	return effectAll
}

func (c *Controller) fontContextChanged() Effects {
	changed := c.guard.OnFontContextChanged(c.state)
	c.synced = true
	c.refreshSelection()
	if !changed {
		return effectRedraw
	}
	c.logger().Debug("ninebox: font context changed", "caches", c.CacheStats())
	return c.updateAndRedraw(UpdateOptions{FontChangeFill: true}) | EffectPersist
}

// updateAndRedraw applies the randomization policy and reports a redraw.
func (c *Controller) updateAndRedraw(opts UpdateOptions) Effects {
	switch {
	case opts.FontChangeFill, opts.Skip:
	case opts.Force:
		c.randomize(true)
	case !c.hasContent():
		c.randomize(false)
	}
	return effectRedraw
}

// ShouldRandomizeOnShow reports whether showing the preview would fill it
// randomly: true only when there is no saved arrangement, no live selection
// and no valid search text.
func (c *Controller) ShouldRandomizeOnShow() bool {
	return !c.hasContent()
}

func (c *Controller) hasContent() bool {
	if c.state.HasSavedArrangement() {
		return true
	}
	if sel, ok := c.svc.SelectedGlyph(); ok && !sel.IsEmpty() {
		return true
	}
	return grid.HasValidSearch(c.state, c.parser)
}

// randomize fills the unlocked surrounding positions from the effective
// alphabet. fresh draws a new batch instead of reusing a cached one.
func (c *Controller) randomize(fresh bool) {
	selection := c.refreshSelection()
	positions := grid.UnlockedPositions(c.state, c.parser)
	alphabet := grid.EffectiveAlphabet(c.state, selection, c.parser)

	if len(alphabet) == 0 {
		locked := grid.LockedPositions(c.state, c.parser)
		c.state.ClearUnlockedPositions(func(p grid.Position) bool {
			return slices.Contains(locked, p)
		})
		return
	}

	var arr grid.Arrangement
	if fresh {
		arr = c.gen.Reshuffle(c.state.Arrangement(), positions, alphabet)
	} else {
		arr = c.gen.Fill(c.state.Arrangement(), positions, alphabet)
	}
	c.state.SetArrangement(arr)
}

// syncFont runs the font guard when the session no longer matches the
// active font context. It reports whether the arrangement may have been
// repaired.
func (c *Controller) syncFont() bool {
	if c.synced && !c.guard.Stale() {
		return false
	}
	c.synced = true
	return c.guard.OnFontContextChanged(c.state)
}

func (c *Controller) refreshSelection() font.GlyphID {
	sel, ok := c.svc.SelectedGlyph()
	if !ok {
		sel = font.Empty
	}
	c.state.SetCenter(sel)
	return sel
}

// DisplayArrangement composes the nine cells to draw. Without a font
// context every cell is blank.
func (c *Controller) DisplayArrangement() grid.Arrangement {
	if _, ok := c.svc.CurrentContext(); !ok {
		return grid.Arrangement{}
	}
	if c.syncFont() {
		c.logger().Debug("ninebox: font changed between events")
	}
	c.refreshSelection()
	return grid.Compose(c.state, c.parser)
}

// Widths returns the advance width of each displayed glyph in the active
// master. Blank and unresolvable cells are 0.
func (c *Controller) Widths() [grid.Size]float64 {
	var out [grid.Size]float64
	arr := c.DisplayArrangement()
	ctx, ok := c.svc.CurrentContext()
	if !ok {
		return out
	}
	for i, id := range arr {
		if id.IsEmpty() {
			continue
		}
		key := widthKey{master: ctx.Master.ID, glyph: id}
		out[i] = c.widths.GetOrCreate(key, func() float64 {
			g, ok := c.svc.ResolveGlyph(ctx.Font, string(id))
			if !ok {
				return 0
			}
			return c.svc.LayerWidth(g, ctx.Master)
		})
	}
	return out
}

// Validation reports how the lock input at p resolves in the active font.
func (c *Controller) Validation(p grid.Position) text.Validation {
	return c.parser.Validate(c.state.LockInput(p))
}

// InvalidLocks returns the lock positions whose text does not fully
// resolve in the active font.
func (c *Controller) InvalidLocks() []grid.Position {
	return c.guard.InvalidLocks()
}

// Phase returns the current update phase.
func (c *Controller) Phase() UpdatePhase { return c.phase }

// SearchText returns the stored search text.
func (c *Controller) SearchText() string { return c.state.SearchText() }

// LockInput returns the raw lock text at p.
func (c *Controller) LockInput(p grid.Position) string { return c.state.LockInput(p) }

// LockMode reports whether the lock overlay is on.
func (c *Controller) LockMode() bool { return c.state.LockMode() }

// Parser returns the parser bound to the controller's font session.
func (c *Controller) Parser() *text.Parser { return c.parser }

// CacheStats returns the statistics of every per-font cache.
func (c *Controller) CacheStats() []cache.Stats {
	stats := c.parser.Stats()
	return append(stats, c.gen.Stats(), c.widths.Stats())
}

// debounced reports whether ev repeats the previous trigger within the
// debounce window, and records ev otherwise.
func (c *Controller) debounced(ev Event) bool {
	var key string
	switch ev := ev.(type) {
	case RandomizeEvent:
		key = "randomize"
	case ClearLocksEvent:
		key = "clear-locks"
	case SearchTextChangedEvent:
		key = "search\x00" + ev.Text
	default:
		c.lastKey = ""
		return false
	}

	now := c.clock()
	if c.debounce > 0 && key == c.lastKey && now.Sub(c.lastAt) < c.debounce {
		return true
	}
	c.lastKey, c.lastAt = key, now
	return false
}

func eventName(ev Event) string {
	return fmt.Sprintf("%T", ev)
}

// Convenience entry points, one per event.

// OnShow handles ShowEvent.
func (c *Controller) OnShow() Effects { return c.Handle(ShowEvent{}) }

// OnSelectionChanged handles SelectionChangedEvent.
func (c *Controller) OnSelectionChanged() Effects { return c.Handle(SelectionChangedEvent{}) }

// OnSearchTextChanged handles SearchTextChangedEvent.
func (c *Controller) OnSearchTextChanged(text string) Effects {
	return c.Handle(SearchTextChangedEvent{Text: text})
}

// OnLockInputChanged handles LockInputChangedEvent.
func (c *Controller) OnLockInputChanged(p grid.Position, text string) Effects {
	return c.Handle(LockInputChangedEvent{Position: p, Text: text})
}

// OnLockToggled handles LockPositionToggledEvent.
func (c *Controller) OnLockToggled(p grid.Position) Effects {
	return c.Handle(LockPositionToggledEvent{Position: p})
}

// OnLockModeToggled handles LockModeToggledEvent.
func (c *Controller) OnLockModeToggled() Effects { return c.Handle(LockModeToggledEvent{}) }

// OnClearLocksRequested handles ClearLocksEvent.
func (c *Controller) OnClearLocksRequested() Effects { return c.Handle(ClearLocksEvent{}) }

// OnRandomizeRequested handles RandomizeEvent.
func (c *Controller) OnRandomizeRequested() Effects { return c.Handle(RandomizeEvent{}) }

// OnFontContextChanged handles FontContextChangedEvent.
func (c *Controller) OnFontContextChanged() Effects { return c.Handle(FontContextChangedEvent{}) }

// OnFontClosed handles FontClosedEvent.
func (c *Controller) OnFontClosed() Effects { return c.Handle(FontClosedEvent{}) }
