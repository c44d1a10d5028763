// Package unionfind provides a disjoint-set-union (DSU) over a fixed
// universe of integer indices, with path compression and union by size.
//
// What
//
//   - Partition the indices 0..n-1 into disjoint sets, starting from n
//     singletons.
//   - Find(p) returns the representative (root) of p's set, compressing
//     the visited path so later finds are near O(1).
//   - Union(p, q) merges two sets, attaching the smaller tree under the
//     larger; it reports whether the structure actually changed.
//   - Connected(p, q) answers reachability in the partition.
//   - Count() tracks the number of disjoint sets; Parents() exposes a
//     snapshot of the raw parent array for rendering and inspection.
//
// Why
//
//   - Connectivity queries on incrementally linked elements: network
//     joins, Kruskal-style edge processing, image components, grouping.
//
// Determinism
//
//	Union by size with a fixed tie-break: when both sets have equal size,
//	q's root is attached under p's root, so p's root survives. The parent
//	array after any operation sequence is fully reproducible.
//
// Errors
//
//	Every indexed operation validates its arguments against [0, n) and
//	returns ErrIndexOutOfBounds (wrapped with the offending index) before
//	touching any state — a failed call never leaves a partial mutation.
//
// Complexity (n = universe size, α = inverse Ackermann)
//
//   - Find / Union / Connected: O(α(n)) amortized
//   - Count: O(1); Parents: O(n) (defensive copy)
//   - Memory: O(n), allocated once at construction
//
// See example_test.go for usage.
package unionfind
