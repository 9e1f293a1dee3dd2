package arrange

import (
	"math/rand/v2"

	"github.com/gogpu/ninebox/font"
)

// CreateNonRepeatingBatch draws n glyphs from alphabet, repeating as little
// as possible.
//
// With at least n distinct glyphs available the result is a uniform sample
// without repeats. With fewer, every glyph appears at least once, the
// remaining slots are uniform draws with repetition, and the whole batch is
// shuffled so repeats are not clustered at the end.
//
// Duplicates in alphabet are ignored. An empty alphabet or n <= 0 yields
// nil. A nil rng uses the global source.
func CreateNonRepeatingBatch(alphabet []font.GlyphID, n int, rng *rand.Rand) []font.GlyphID {
	pool := Dedupe(alphabet)
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	r := source{rng}

	if len(pool) >= n {
		out := make([]font.GlyphID, n)
		for i, j := range r.perm(len(pool))[:n] {
			out[i] = pool[j]
		}
		return out
	}

	out := make([]font.GlyphID, 0, n)
	out = append(out, pool...)
	for len(out) < n {
		out = append(out, pool[r.intN(len(pool))])
	}
	r.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Dedupe returns the distinct non-empty glyphs of ids in first-seen order.
func Dedupe(ids []font.GlyphID) []font.GlyphID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[font.GlyphID]struct{}, len(ids))
	out := make([]font.GlyphID, 0, len(ids))
	for _, id := range ids {
		if id.IsEmpty() {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// source falls back to the global generator when no *rand.Rand is set.
type source struct {
	rng *rand.Rand
}

func (s source) perm(n int) []int {
	if s.rng == nil {
		return rand.Perm(n)
	}
	return s.rng.Perm(n)
}

func (s source) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

func (s source) shuffle(n int, swap func(i, j int)) {
	if s.rng == nil {
		rand.Shuffle(n, swap)
		return
	}
	s.rng.Shuffle(n, swap)
}
