package font

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strconv"
	"time"
)

// Identity derives the identity of a font saved at path.
// Saving the file changes modTime and therefore the identity.
func Identity(path string, modTime time.Time) string {
	return "file:" + path + "@" + strconv.FormatInt(modTime.UnixNano(), 10)
}

// HashIdentity derives a stable identity for fonts without a file.
// masterIDs may be given in any order.
func HashIdentity(family string, glyphCount int, masterIDs []string) string {
	ids := slices.Clone(masterIDs)
	slices.Sort(ids)

	h := fnv.New64a()
	_, _ = h.Write([]byte(family)) // fnv.Write never returns an error
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(glyphCount)))
	for _, id := range ids {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(id))
	}
	return fmt.Sprintf("hash:%016x", h.Sum64())
}

// IdentityOf picks the identity scheme for f: file-based when the font has
// a path and a known modification time, hash-based otherwise.
func IdentityOf(f Font, modTime time.Time) string {
	if f == nil {
		return ""
	}
	if f.Path() != "" && !modTime.IsZero() {
		return Identity(f.Path(), modTime)
	}
	masters := f.Masters()
	ids := make([]string, len(masters))
	for i, m := range masters {
		ids[i] = m.ID
	}
	return HashIdentity(f.Family(), f.GlyphCount(), ids)
}
