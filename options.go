package ninebox

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

// DefaultDebounce is the window in which duplicate triggers are ignored.
const DefaultDebounce = 250 * time.Millisecond

// Option configures a Controller during creation.
//
// Example:
//
//	c := ninebox.New(svc,
//	    ninebox.WithDebounce(100*time.Millisecond),
//	    ninebox.WithRand(rand.New(rand.NewPCG(1, 2))))
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	debounce   time.Duration
	clock      func() time.Time
	rng        *rand.Rand
	cacheLimit int
	logger     *slog.Logger
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		debounce: DefaultDebounce,
		clock:    time.Now,
	}
}

// WithDebounce sets the window in which a repeated randomize, clear-locks
// or identical search trigger is ignored. Zero disables debouncing.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.debounce = d
		}
	}
}

// WithClock sets the time source used for debouncing. The default is
// time.Now, whose monotonic reading makes comparisons immune to wall clock
// changes.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithRand sets the random source for arrangement fills.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithCacheLimit sets the soft limit of every per-font cache. Non-positive
// values keep each cache's default.
func WithCacheLimit(n int) Option {
	return func(o *options) {
		o.cacheLimit = n
	}
}

// WithLogger sets the logger for controller events. Sub-packages keep
// using the logger installed with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
