package ninebox

import (
	"fmt"

	"github.com/gogpu/ninebox/grid"
	"github.com/gogpu/ninebox/prefs"
)

// saver is implemented by stores that write through to a backing file,
// such as *prefs.FileStore.
type saver interface {
	Save() error
}

// Load replaces the persisted layers of the grid state with the values in
// store. Missing keys load as empty. The loaded arrangement is checked
// against the active font on the next update.
func (c *Controller) Load(store prefs.Store) error {
	if store == nil {
		return ErrNilStore
	}
	var d grid.Dict
	d.LastSearchText, _ = store.String(grid.KeySearchText)
	d.LockInputs, _ = store.Strings(grid.KeyLockInputs)
	d.BaseArrangement, _ = store.Strings(grid.KeyArrangement)
	d.LockModeActive, _ = store.Bool(grid.KeyLockMode)
	c.state.LoadFromPersistence(d)

	// Loaded glyphs were saved against some earlier font.
	c.guard.Forget()
	c.synced = false
	c.lastKey = ""
	c.logger().Debug("ninebox: state loaded",
		"search", d.LastSearchText, "lockMode", d.LockModeActive)
	return nil
}

// Save writes the persisted layers of the grid state to store. Stores with
// a Save method are flushed.
func (c *Controller) Save(store prefs.Store) error {
	if store == nil {
		return ErrNilStore
	}
	d := c.state.ToStateDict()
	store.SetString(grid.KeySearchText, d.LastSearchText)
	store.SetStrings(grid.KeyLockInputs, d.LockInputs)
	store.SetStrings(grid.KeyArrangement, d.BaseArrangement)
	store.SetBool(grid.KeyLockMode, d.LockModeActive)

	if s, ok := store.(saver); ok {
		if err := s.Save(); err != nil {
			c.logger().Warn("ninebox: saving state failed", "err", err)
			return fmt.Errorf("ninebox: save state: %w", err)
		}
	}
	return nil
}
