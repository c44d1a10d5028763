// Package fenwick provides a Fenwick tree (binary indexed tree) over a
// fixed-size sequence of int64 values, supporting point updates and
// prefix-sum queries in O(log n).
//
// What
//
//   - Conceptually the tree represents values[0..n); callers address it
//     with plain 0-based indices.
//   - Add(idx, delta) adjusts one element; Query(idx) returns the sum of
//     values[0..idx] inclusive; RangeSum(start, end) the sum of a closed
//     range.
//   - Internally a 1-indexed array of length n+1 stores dyadic partial
//     sums (slot i covers the range of length lsb(i) ending at i, where
//     lsb(x) = x & -x). Internal() exposes a snapshot of that raw array
//     for rendering and inspection.
//
// Construction
//
//	New accepts a tagged Input built with ByCount (zero-initialized tree
//	of n elements) or ByValues (O(n) bulk build from an initial
//	sequence). Any other Input — the zero value, or a negative count —
//	is rejected with ErrInvalidInput.
//
// Boundary contract
//
//	Add and Query fail with ErrIndexOutOfBounds for indices outside
//	[0, n). RangeSum with start > end is NOT an error: it returns 0
//	without validating either endpoint (the inverted-range sentinel
//	bypasses bounds checks). For start <= end both endpoints must be
//	valid indices.
//
// Complexity (n = sequence length)
//
//   - Add / Query / RangeSum: O(log n)
//   - ByValues build: O(n); ByCount build: O(n) zeroing
//   - Memory: O(n), allocated once at construction
//
// See example_test.go for usage.
package fenwick
