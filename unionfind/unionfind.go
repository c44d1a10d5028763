package unionfind

import "fmt"

// UnionFind partitions the indices 0..n-1 into disjoint sets.
// It uses path compression and union by size for near-constant
// amortized Find/Union. Not safe for unsynchronized concurrent use.
type UnionFind struct {
	parent []int // parent[i] = parent of i; roots satisfy parent[i] == i
	size   []int // size[r] = elements in the set rooted at r (valid for roots)
	count  int   // number of disjoint sets
}

// New creates a UnionFind over the universe 0..n-1, each element in its
// own singleton set. n may be zero (an empty universe); negative n
// returns ErrInvalidSize.
//
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	parent := make([]int, n)
	size := make([]int, n)
	for i := 0; i < n; i++ {
		parent[i] = i
		size[i] = 1
	}

	return &UnionFind{parent: parent, size: size, count: n}, nil
}

// checkIndex validates p against [0, n) and reports the offending index.
func (u *UnionFind) checkIndex(p int) error {
	if p < 0 || p >= len(u.parent) {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfBounds, p, len(u.parent))
	}

	return nil
}

// Find returns the root of p's set, compressing the path as a side
// effect: every node visited on the way up is re-pointed directly to
// the discovered root.
//
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Find(p int) (int, error) {
	if err := u.checkIndex(p); err != nil {
		return 0, err
	}

	return u.find(p), nil
}

// find is the unchecked two-pass find: walk up to the root, then
// re-point every node on the path directly at it.
func (u *UnionFind) find(p int) int {
	root := p
	for root != u.parent[root] {
		root = u.parent[root]
	}
	for p != root {
		next := u.parent[p]
		u.parent[p] = root
		p = next
	}

	return root
}

// Union merges the sets containing p and q. It returns true when the
// two sets were distinct and have been merged (Count decreases by one),
// and false when p and q were already connected (no mutation).
//
// Both indices are validated before any lookup, so a bounds failure on
// q cannot leave p's path compressed.
//
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Union(p, q int) (bool, error) {
	if err := u.checkIndex(p); err != nil {
		return false, err
	}
	if err := u.checkIndex(q); err != nil {
		return false, err
	}

	rootP := u.find(p)
	rootQ := u.find(q)
	if rootP == rootQ {
		return false, nil
	}

	// Union by size: attach the smaller tree under the larger root.
	// On ties, q's root goes under p's root.
	if u.size[rootP] < u.size[rootQ] {
		u.parent[rootP] = rootQ
		u.size[rootQ] += u.size[rootP]
	} else {
		u.parent[rootQ] = rootP
		u.size[rootP] += u.size[rootQ]
	}
	u.count--

	return true, nil
}

// Connected reports whether p and q belong to the same set.
// Connected(p, p) is always true for any valid p.
//
// Complexity: O(α(n)) amortized.
func (u *UnionFind) Connected(p, q int) (bool, error) {
	if err := u.checkIndex(p); err != nil {
		return false, err
	}
	if err := u.checkIndex(q); err != nil {
		return false, err
	}

	return u.find(p) == u.find(q), nil
}

// Count returns the current number of disjoint sets. It starts at n and
// decreases by exactly one for each Union call that returns true.
func (u *UnionFind) Count() int {
	return u.count
}

// Len returns the size n of the universe.
func (u *UnionFind) Len() int {
	return len(u.parent)
}

// Parents returns a snapshot copy of the raw parent array: parent[i] is
// the parent of i, and roots point at themselves. Intended for
// rendering and inspection; mutating the returned slice has no effect
// on the structure.
func (u *UnionFind) Parents() []int {
	out := make([]int, len(u.parent))
	copy(out, u.parent)

	return out
}
