package grid

import (
	"strings"

	"github.com/gogpu/ninebox/font"
)

// State holds the three layers of the nine-box.
//
//   - the live selection layer, derived from the editor on every refresh
//     and never persisted
//   - the arrangement layer, filled by search text or randomization
//   - the lock layer, raw per-cell text entered by the user, parsed only
//     at composition time so edits are never lossy
//
// The center position never carries a lock input.
type State struct {
	base        Arrangement
	arrangement Arrangement
	lockInputs  [Size]string
	lockMode    bool
	searchText  string
}

// NewState returns an empty state with lock mode off.
func NewState() *State {
	return &State{}
}

// SetCenter refreshes the live selection layer from id.
func (s *State) SetCenter(id font.GlyphID) {
	s.base = Mirror(id)
}

// Base returns the live selection layer.
func (s *State) Base() Arrangement { return s.base }

// Selection returns the glyph stored by the last SetCenter.
func (s *State) Selection() font.GlyphID { return s.base[Center] }

// Arrangement returns the arrangement layer.
func (s *State) Arrangement() Arrangement { return s.arrangement }

// SetArrangement replaces the arrangement layer.
func (s *State) SetArrangement(a Arrangement) { s.arrangement = a }

// HasSavedArrangement reports whether any arrangement cell is filled.
func (s *State) HasSavedArrangement() bool { return !s.arrangement.IsBlank() }

// SearchText returns the last search text.
func (s *State) SearchText() string { return s.searchText }

// SetSearchText stores the raw search text.
func (s *State) SetSearchText(text string) { s.searchText = text }

// LockMode reports whether lock inputs override the other layers.
func (s *State) LockMode() bool { return s.lockMode }

// SetLockMode turns the lock overlay on or off. Lock inputs are kept
// either way.
func (s *State) SetLockMode(on bool) { s.lockMode = on }

// LockInput returns the raw lock text at p ("" for the center).
func (s *State) LockInput(p Position) string {
	if !p.Lockable() {
		return ""
	}
	return s.lockInputs[p]
}

// LockInputs returns a copy of all raw lock texts.
func (s *State) LockInputs() [Size]string { return s.lockInputs }

// SetLockInput stores raw at p. It reports false and does nothing for the
// center or an invalid position.
func (s *State) SetLockInput(p Position, raw string) bool {
	if !p.Lockable() {
		return false
	}
	s.lockInputs[p] = raw
	return true
}

// ToggleLock pins current at p, or unpins p if it already has a lock input.
// It reports whether p is locked afterwards.
func (s *State) ToggleLock(p Position, current font.GlyphID) bool {
	if !p.Lockable() {
		return false
	}
	if strings.TrimSpace(s.lockInputs[p]) != "" {
		s.lockInputs[p] = ""
		return false
	}
	if current.IsEmpty() {
		return false
	}
	s.lockInputs[p] = string(current)
	return true
}

// HasLockInputs reports whether any position has non-blank lock text.
func (s *State) HasLockInputs() bool {
	for _, raw := range s.lockInputs {
		if strings.TrimSpace(raw) != "" {
			return true
		}
	}
	return false
}

// ClearUnlockedPositions blanks every arrangement cell for which locked
// returns false. A nil locked clears all cells.
func (s *State) ClearUnlockedPositions(locked func(Position) bool) {
	for i := range s.arrangement {
		p := Position(i)
		if locked != nil && locked(p) {
			continue
		}
		s.arrangement[p] = font.Empty
	}
}

// ClearAllLocks removes every lock input.
func (s *State) ClearAllLocks() {
	s.lockInputs = [Size]string{}
}
