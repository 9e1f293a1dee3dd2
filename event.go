package ninebox

import (
	"strings"

	"github.com/gogpu/ninebox/grid"
)

// Event is a host notification delivered to Controller.Handle.
type Event interface {
	event()
}

// ShowEvent is sent when the preview becomes visible.
type ShowEvent struct{}

// SelectionChangedEvent is sent when the edited glyph changes.
type SelectionChangedEvent struct{}

// SearchTextChangedEvent carries the new search field content.
type SearchTextChangedEvent struct {
	Text string
}

// LockInputChangedEvent carries the new content of one lock field.
type LockInputChangedEvent struct {
	Position grid.Position
	Text     string
}

// LockPositionToggledEvent pins the glyph displayed at Position, or unpins
// the position if it already has a lock input.
type LockPositionToggledEvent struct {
	Position grid.Position
}

// LockModeToggledEvent turns the lock overlay on or off.
type LockModeToggledEvent struct{}

// ClearLocksEvent removes every lock input and reshuffles.
type ClearLocksEvent struct{}

// RandomizeEvent reshuffles the unlocked surrounding positions.
type RandomizeEvent struct{}

// FontContextChangedEvent is sent when a font is opened or activated, or
// when the master changes.
type FontContextChangedEvent struct{}

// FontClosedEvent is sent when the active font is closed.
type FontClosedEvent struct{}

func (ShowEvent) event()                {}
func (SelectionChangedEvent) event()    {}
func (SearchTextChangedEvent) event()   {}
func (LockInputChangedEvent) event()    {}
func (LockPositionToggledEvent) event() {}
func (LockModeToggledEvent) event()     {}
func (ClearLocksEvent) event()          {}
func (RandomizeEvent) event()           {}
func (FontContextChangedEvent) event()  {}
func (FontClosedEvent) event()          {}

// Effects tells the host what to do after Handle returns.
type Effects uint8

const (
	// EffectRecompose: DisplayArrangement has changed.
	EffectRecompose Effects = 1 << iota
	// EffectPersist: state should be saved.
	EffectPersist
	// EffectRepaint: the grid should be redrawn.
	EffectRepaint

	// EffectNone means the event changed nothing.
	EffectNone Effects = 0

	effectRedraw = EffectRecompose | EffectRepaint
	effectAll    = EffectRecompose | EffectPersist | EffectRepaint
)

// Has reports whether e includes every effect in f.
func (e Effects) Has(f Effects) bool { return e&f == f }

func (e Effects) String() string {
	if e == EffectNone {
		return "none"
	}
	var parts []string
	if e.Has(EffectRecompose) {
		parts = append(parts, "recompose")
	}
	if e.Has(EffectPersist) {
		parts = append(parts, "persist")
	}
	if e.Has(EffectRepaint) {
		parts = append(parts, "repaint")
	}
	return strings.Join(parts, "|")
}

// UpdatePhase is the controller's position in an update cycle.
type UpdatePhase uint8

const (
	// PhaseIdle: no event is being handled.
	PhaseIdle UpdatePhase = iota
	// PhaseUpdating: a full update is in progress.
	PhaseUpdating
	// PhaseGranular: a single lock field is being applied.
	PhaseGranular
)

func (p UpdatePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUpdating:
		return "updating"
	case PhaseGranular:
		return "granular"
	default:
		return "unknown"
	}
}

// UpdateOptions selects how an update treats the arrangement layer.
type UpdateOptions struct {
	// Force reshuffles the unlocked surrounding positions.
	Force bool
	// Skip only recomposes.
	Skip bool
	// FontChangeFill recomposes after a font change; the guard already
	// repaired the arrangement.
	FontChangeFill bool
}
