package grid

import "github.com/gogpu/ninebox/font"

// Persistence keys.
const (
	KeySearchText  = "lastSearchText"
	KeyLockInputs  = "lockInputs"
	KeyArrangement = "baseArrangement"
	KeyLockMode    = "lockModeActive"
)

// Dict is the persisted form of a State. Lists always have Size elements
// when produced by ToStateDict. The live selection layer is not part of it.
type Dict struct {
	LastSearchText  string
	LockInputs      []string
	BaseArrangement []string
	LockModeActive  bool
}

// ToStateDict snapshots the persisted layers of s.
func (s *State) ToStateDict() Dict {
	d := Dict{
		LastSearchText:  s.searchText,
		LockInputs:      make([]string, Size),
		BaseArrangement: make([]string, Size),
		LockModeActive:  s.lockMode,
	}
	for i := range Size {
		if Position(i).Lockable() {
			d.LockInputs[i] = s.lockInputs[i]
		}
		d.BaseArrangement[i] = string(s.arrangement[i])
	}
	return d
}

// LoadFromPersistence replaces the persisted layers of s with d. Short
// lists leave the remaining cells blank, extra elements are ignored, and a
// lock input stored for the center is dropped.
func (s *State) LoadFromPersistence(d Dict) {
	s.searchText = d.LastSearchText
	s.lockMode = d.LockModeActive
	s.lockInputs = [Size]string{}
	s.arrangement = Arrangement{}
	for i := 0; i < Size && i < len(d.LockInputs); i++ {
		if Position(i).Lockable() {
			s.lockInputs[i] = d.LockInputs[i]
		}
	}
	for i := 0; i < Size && i < len(d.BaseArrangement); i++ {
		s.arrangement[i] = font.GlyphID(d.BaseArrangement[i])
	}
}
