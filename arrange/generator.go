package arrange

import (
	"math/rand/v2"
	"slices"

	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/grid"
	"github.com/gogpu/ninebox/internal/cache"
	"github.com/gogpu/ninebox/internal/logging"
	"github.com/gogpu/ninebox/session"
)

// DefaultCacheLimit is the soft limit of the batch cache.
const DefaultCacheLimit = 256

// Option configures a Generator.
type Option func(*options)

type options struct {
	rng        *rand.Rand
	cacheLimit int
}

// WithRand sets the random source. Tests pass a seeded generator; the
// default is the global math/rand/v2 source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithCacheLimit sets the soft limit of the batch cache.
func WithCacheLimit(n int) Option {
	return func(o *options) {
		o.cacheLimit = n
	}
}

// batchKey identifies a cached batch: the same alphabet drawn for the same
// number of positions in the same master reuses the batch.
type batchKey struct {
	master   string
	alphabet uint64
	count    int
}

// Generator fills grid positions with random glyphs.
//
// Generator is not safe for concurrent use.
type Generator struct {
	svc     font.Service
	rng     *rand.Rand
	batches *cache.Cache[batchKey, []font.GlyphID]
}

// NewGenerator creates a generator whose batch cache is registered with
// sess, so batches never outlive the font they were drawn for.
func NewGenerator(svc font.Service, sess *session.Session, opts ...Option) *Generator {
	o := options{cacheLimit: DefaultCacheLimit}
	for _, opt := range opts {
		opt(&o)
	}
	g := &Generator{
		svc:     svc,
		rng:     o.rng,
		batches: cache.New[batchKey, []font.GlyphID]("random-batch", o.cacheLimit),
	}
	if sess != nil {
		sess.Register(g.batches)
	}
	return g
}

// Fill returns a copy of current with a batch drawn from alphabet written
// into exactly the given positions. Repeated calls with the same alphabet
// and position count reuse the cached batch. An empty alphabet blanks the
// positions.
func (g *Generator) Fill(current grid.Arrangement, positions []grid.Position, alphabet []font.GlyphID) grid.Arrangement {
	return g.fill(current, positions, alphabet, false)
}

// Reshuffle is Fill with a freshly drawn batch. The new batch replaces the
// cached one.
func (g *Generator) Reshuffle(current grid.Arrangement, positions []grid.Position, alphabet []font.GlyphID) grid.Arrangement {
	return g.fill(current, positions, alphabet, true)
}

func (g *Generator) fill(current grid.Arrangement, positions []grid.Position, alphabet []font.GlyphID, fresh bool) grid.Arrangement {
	out := current
	targets := validPositions(positions)
	if len(targets) == 0 {
		return out
	}

	pool := Dedupe(alphabet)
	if len(pool) == 0 {
		for _, p := range targets {
			out[p] = font.Empty
		}
		return out
	}

	key := g.key(pool, len(targets))
	var batch []font.GlyphID
	if fresh {
		batch = CreateNonRepeatingBatch(pool, len(targets), g.rng)
		g.batches.Set(key, batch)
	} else {
		batch = g.batches.GetOrCreate(key, func() []font.GlyphID {
			return CreateNonRepeatingBatch(pool, len(targets), g.rng)
		})
	}

	for i, p := range targets {
		out[p] = batch[i]
	}
	logging.Logger().Debug("arrange: filled positions",
		"count", len(targets), "alphabet", len(pool), "fresh", fresh)
	return out
}

func (g *Generator) key(pool []font.GlyphID, count int) batchKey {
	sorted := make([]string, len(pool))
	for i, id := range pool {
		sorted[i] = string(id)
	}
	slices.Sort(sorted)

	var master string
	if g.svc != nil {
		if ctx, ok := g.svc.CurrentContext(); ok {
			master = ctx.Master.ID
		}
	}
	return batchKey{master: master, alphabet: cache.HashStrings(sorted...), count: count}
}

// Stats returns the batch cache statistics.
func (g *Generator) Stats() cache.Stats {
	return g.batches.Stats()
}

// validPositions drops out-of-range and repeated positions, keeping order.
func validPositions(positions []grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(positions))
	for _, p := range positions {
		if p.Valid() && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
