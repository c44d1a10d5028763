package fenwick

import "fmt"

// Tree is a Fenwick (binary indexed) tree over int64 values.
// Not safe for unsynchronized concurrent use while mutating.
type Tree struct {
	// tree is the 1-indexed internal array of length n+1; slot i
	// accumulates the dyadic range of length lsb(i) ending at i.
	// tree[0] is unused and always zero.
	tree []int64
}

// New builds a Tree from a tagged Input (see ByCount, ByValues).
// ByCount(n) with n >= 0 yields a zero-initialized tree of n elements;
// ByValues(vs) bulk-builds from vs in O(n). Any other Input returns
// ErrInvalidInput.
func New(in Input) (*Tree, error) {
	switch in.kind {
	case kindCount:
		if in.count < 0 {
			return nil, fmt.Errorf("%w: count %d", ErrInvalidInput, in.count)
		}

		return &Tree{tree: make([]int64, in.count+1)}, nil

	case kindValues:
		return fromValues(in.values), nil

	default:
		return nil, ErrInvalidInput
	}
}

// fromValues builds the internal array in O(n): seed each slot with its
// raw value, then push the accumulated partial sum up to the slot's
// parent in the implicit tree (parent of i is i + lsb(i)).
func fromValues(values []int64) *Tree {
	tree := make([]int64, len(values)+1)
	for i, v := range values {
		idx := i + 1
		tree[idx] += v
		if parent := idx + lsb(idx); parent < len(tree) {
			tree[parent] += tree[idx]
		}
	}

	return &Tree{tree: tree}
}

// lsb returns the least significant set bit of x (x & -x).
func lsb(x int) int {
	return x & -x
}

// checkIndex validates idx against [0, n) and reports the offending index.
func (t *Tree) checkIndex(idx int) error {
	if idx < 0 || idx >= t.Len() {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, idx, t.Len())
	}

	return nil
}

// Add adds delta to the element at 0-based index idx, updating every
// internal slot on idx's upward chain.
//
// Complexity: O(log n).
func (t *Tree) Add(idx int, delta int64) error {
	if err := t.checkIndex(idx); err != nil {
		return err
	}

	for i := idx + 1; i < len(t.tree); i += lsb(i) {
		t.tree[i] += delta
	}

	return nil
}

// Query returns the prefix sum over values[0..idx] inclusive, by
// descending the internal chain from idx+1 toward zero.
//
// Complexity: O(log n).
func (t *Tree) Query(idx int) (int64, error) {
	if err := t.checkIndex(idx); err != nil {
		return 0, err
	}

	var sum int64
	for i := idx + 1; i > 0; i -= lsb(i) {
		sum += t.tree[i]
	}

	return sum, nil
}

// RangeSum returns the sum of values[start..end] inclusive.
//
// An inverted range (start > end) is a defined empty query: it returns
// 0 with no error and without validating either endpoint. Otherwise
// both endpoints must be valid indices.
//
// Complexity: O(log n).
func (t *Tree) RangeSum(start, end int) (int64, error) {
	if start > end {
		return 0, nil
	}
	if err := t.checkIndex(start); err != nil {
		return 0, err
	}
	if err := t.checkIndex(end); err != nil {
		return 0, err
	}

	high, err := t.Query(end)
	if err != nil {
		return 0, err
	}
	if start == 0 {
		return high, nil
	}
	low, err := t.Query(start - 1)
	if err != nil {
		return 0, err
	}

	return high - low, nil
}

// Len returns the number n of represented elements.
func (t *Tree) Len() int {
	return len(t.tree) - 1
}

// Internal returns a snapshot copy of the raw 1-indexed internal array
// (length n+1, slot 0 unused). Intended for rendering and inspection;
// mutating the returned slice has no effect on the tree.
func (t *Tree) Internal() []int64 {
	out := make([]int64, len(t.tree))
	copy(out, t.tree)

	return out
}
