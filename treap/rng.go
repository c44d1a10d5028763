// Package treap - RNG utilities for priority generation.
//
// This file centralizes deterministic random generation for treap
// priorities.
//
// Goals:
//   - Determinism: same seed ⇒ identical tree shapes across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: priorities are balance tie-breakers only, never a
//     cryptographic surface.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     (or a Treap holding one) across goroutines without external
//     synchronization.
package treap

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for priority draws.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise mix the provided seed
// through a SplitMix64-style finalizer so that adjacent seeds yield
// decorrelated priority streams.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(mixSeed(s)))
}

// mixSeed applies the canonical SplitMix64 avalanche to a seed.
// Constants are the standard SplitMix64 multipliers/finalizer (Vigna
// 2014); small input changes produce large, well-distributed output
// changes.
//
// Complexity: O(1).
func mixSeed(seed int64) int64 {
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
