// Package sparsetable provides an immutable range-minimum table over an
// int64 array: O(n log n) construction, O(1) queries.
//
// What
//
//   - New(arr) precomputes, for every power-of-two window length 2^k,
//     the minimum of the window starting at each index.
//   - Query(l, r) answers min(arr[l..r]) inclusive by combining the two
//     (possibly overlapping) windows of length 2^floor(log2(r-l+1))
//     anchored at l and at r-2^k+1. Minimum is idempotent, so the
//     overlap is harmless.
//   - Values() returns a snapshot of the original input for display.
//
// Sentinel, not error
//
//	Query returns (0, false) — a "no value" sentinel — when the table is
//	empty, when l > r, or when r exceeds the last valid index. Invalid
//	ranges are a defined empty answer here, never an error.
//
// Concurrency
//
//	The table is immutable after construction and safe for
//	unsynchronized concurrent reads.
//
// Complexity (n = input length)
//
//   - Build: O(n log n) time and memory
//   - Query: O(1)
//
// See example_test.go for usage.
package sparsetable
