package unionfind_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dskit/unionfind"
)

// TestNew_Errors verifies constructor validation: negative sizes are
// rejected, zero and positive sizes are accepted.
func TestNew_Errors(t *testing.T) {
	_, err := unionfind.New(-1)
	assert.ErrorIs(t, err, unionfind.ErrInvalidSize)

	uf, err := unionfind.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, uf.Count())
	assert.Empty(t, uf.Parents())
}

// TestNew_Singletons verifies that a fresh structure holds n singleton
// sets, each element its own root.
func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)

	assert.Equal(t, 5, uf.Count())
	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, uf.Parents())

	for i := 0; i < 5; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root)
	}
}

// TestUnion_CountBookkeeping replays the canonical sequence: each
// structurally-changing union decrements Count by exactly one, and a
// union of already-connected elements returns false with no change.
func TestUnion_CountBookkeeping(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)
	assert.Equal(t, 10, uf.Count())

	changed, err := uf.Union(1, 2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 9, uf.Count())

	conn, err := uf.Connected(1, 2)
	require.NoError(t, err)
	assert.True(t, conn)

	conn, err = uf.Connected(1, 3)
	require.NoError(t, err)
	assert.False(t, conn)

	changed, err = uf.Union(2, 3)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 8, uf.Count())

	conn, err = uf.Connected(1, 3)
	require.NoError(t, err)
	assert.True(t, conn)

	// Already connected: no-op union.
	changed, err = uf.Union(1, 3)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 8, uf.Count())
}

// TestConnected_Self verifies that Connected(p, p) holds for every
// valid p without requiring distinct arguments.
func TestConnected_Self(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		conn, err := uf.Connected(i, i)
		require.NoError(t, err)
		assert.True(t, conn)
	}
}

// TestBounds_AllOperations verifies that every indexed operation
// rejects indices outside [0, n) with ErrIndexOutOfBounds.
func TestBounds_AllOperations(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	cases := []struct {
		name string
		call func() error
	}{
		{"FindNegative", func() error { _, e := uf.Find(-1); return e }},
		{"FindTooLarge", func() error { _, e := uf.Find(4); return e }},
		{"UnionFirstBad", func() error { _, e := uf.Union(9, 0); return e }},
		{"UnionSecondBad", func() error { _, e := uf.Union(0, 9); return e }},
		{"ConnectedFirstBad", func() error { _, e := uf.Connected(-2, 1); return e }},
		{"ConnectedSecondBad", func() error { _, e := uf.Connected(1, 7); return e }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, unionfind.ErrIndexOutOfBounds) {
				t.Errorf("error = %v; want ErrIndexOutOfBounds", err)
			}
		})
	}
}

// TestUnion_NoPartialMutation verifies that a union failing the bounds
// check on q leaves p's path untouched: the parent array is identical
// before and after the failed call.
func TestUnion_NoPartialMutation(t *testing.T) {
	uf, err := unionfind.New(6)
	require.NoError(t, err)

	// Build a small chain so there is a path to (not) compress.
	_, err = uf.Union(0, 1)
	require.NoError(t, err)
	_, err = uf.Union(1, 2)
	require.NoError(t, err)

	before := uf.Parents()
	_, err = uf.Union(2, 42)
	assert.ErrorIs(t, err, unionfind.ErrIndexOutOfBounds)
	assert.Equal(t, before, uf.Parents())
	assert.Equal(t, 4, uf.Count())
}

// TestUnion_TieBreak pins the tie-break direction: merging two
// singletons keeps p's root as the surviving root.
func TestUnion_TieBreak(t *testing.T) {
	uf, err := unionfind.New(2)
	require.NoError(t, err)

	changed, err := uf.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	root, err := uf.Find(1)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	assert.Equal(t, []int{0, 0}, uf.Parents())
}

// TestUnion_BySize verifies that the smaller tree is attached under
// the larger tree's root.
func TestUnion_BySize(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)

	// {0,1,2} rooted at 0; {3,4} rooted at 3.
	_, err = uf.Union(0, 1)
	require.NoError(t, err)
	_, err = uf.Union(0, 2)
	require.NoError(t, err)
	_, err = uf.Union(3, 4)
	require.NoError(t, err)

	// Smaller set {3,4} goes under root 0 even though p=3 here.
	changed, err := uf.Union(3, 0)
	require.NoError(t, err)
	assert.True(t, changed)

	root, err := uf.Find(4)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
}

// TestPathCompression verifies that Find re-points every visited node
// directly at the root.
func TestPathCompression(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	// Two equal-size pairs merged together produce the chain 3→2→0,
	// so 3 sits two hops from its root before any Find.
	_, err = uf.Union(0, 1)
	require.NoError(t, err)
	_, err = uf.Union(2, 3)
	require.NoError(t, err)
	_, err = uf.Union(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 2}, uf.Parents())

	root, err := uf.Find(3)
	require.NoError(t, err)
	assert.Equal(t, 0, root)

	// Find must have re-pointed 3 directly at the root.
	assert.Equal(t, []int{0, 0, 0, 0}, uf.Parents())
}

// TestRoundTrip_RandomUnions checks the invariant Count == n - (number
// of unions that returned true) over a long random operation sequence,
// cross-checking Connected against Find along the way.
func TestRoundTrip_RandomUnions(t *testing.T) {
	const n = 200
	uf, err := unionfind.New(n)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	merged := 0
	for i := 0; i < 1000; i++ {
		p, q := r.Intn(n), r.Intn(n)
		changed, err := uf.Union(p, q)
		require.NoError(t, err)
		if changed {
			merged++
		}

		conn, err := uf.Connected(p, q)
		require.NoError(t, err)
		assert.True(t, conn)
	}
	assert.Equal(t, n-merged, uf.Count())

	// Connected(p,q) iff Find(p) == Find(q), spot-checked across pairs.
	for i := 0; i < 100; i++ {
		p, q := r.Intn(n), r.Intn(n)
		rootP, err := uf.Find(p)
		require.NoError(t, err)
		rootQ, err := uf.Find(q)
		require.NoError(t, err)
		conn, err := uf.Connected(p, q)
		require.NoError(t, err)
		assert.Equal(t, rootP == rootQ, conn)
	}
}
