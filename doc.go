// Package dskit is your in-memory playground for classic, exactly-specified
// data-structure engines — union-find, Fenwick trees, sparse tables, treaps
// and KMP string matching — each with a small, introspectable API.
//
// 🚀 What is dskit?
//
//	A modern, zero-dependency library that brings together:
//		• unionfind   — disjoint sets with path compression & union by size
//		• fenwick     — point updates + prefix sums in O(log n)
//		• sparsetable — O(1) range-minimum queries after O(n log n) build
//		• treap       — randomized balanced multiset with duplicate counts
//		• kmp         — linear-time prefix function & substring search
//
// ✨ Why choose dskit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exactly pinned – every boundary case is documented and tested
//   - Pure Go – no cgo, no hidden deps
//   - Introspectable – raw parent arrays, raw Fenwick slots, treap nodes,
//     all readable so callers can render or explain internal state
//
// Every engine is an independent leaf package; none imports another.
// Engines are synchronous and single-threaded by contract: mutating
// operations are not safe for unsynchronized concurrent use on one
// instance. The sparse table is immutable after construction and safe
// for concurrent reads.
//
// Under the hood, everything is organized under five subpackages:
//
//	unionfind/   — disjoint-set-union over a fixed universe of indices
//	fenwick/     — binary indexed tree over a fixed-size int64 sequence
//	sparsetable/ — static range-minimum table
//	treap/       — randomized BST multiset with per-node counts
//	kmp/         — stateless prefix-function & find-all matchers
//
//	go get github.com/katalvlaran/dskit
package dskit
