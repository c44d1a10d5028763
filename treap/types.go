// Package treap defines configuration options for treap construction.
package treap

import "math/rand"

// options carries the resolved construction configuration.
type options struct {
	rng *rand.Rand
}

// Option configures a Treap at construction time. All Option functions
// modify the pointed options.
type Option func(*options)

// WithRand returns an Option that injects an explicit random source for
// priority generation. Panics if r is nil (validation panics are
// confined to option constructors; runtime operations never panic).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("treap: WithRand requires a non-nil *rand.Rand")
	}

	return func(o *options) {
		o.rng = r
	}
}

// WithSeed returns an Option that derives a deterministic random source
// from seed. Seed 0 selects a fixed default stream, so the zero value
// is still reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rngFromSeed(seed)
	}
}

// defaultOptions returns the configuration used when no Option is
// given: the deterministic default priority stream (seed-0 policy).
func defaultOptions() options {
	return options{rng: rngFromSeed(0)}
}
