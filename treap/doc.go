// Package treap provides a randomized balanced search tree over int64
// keys that behaves as an ordered multiset: duplicate insertions bump a
// per-node count instead of allocating equal-key nodes.
//
// What
//
//   - Insert / Remove / Contains with expected O(log n) cost.
//   - Len reports total multiset cardinality (duplicates included);
//     InorderVec yields the non-decreasing key sequence with each key
//     repeated per its count.
//   - Root exposes the node structure (Key, Priority, Count, Size,
//     Left, Right) so callers can render or explain the tree shape.
//
// How balance works
//
//	Each node carries a random priority drawn at creation time. The
//	tree keeps two invariants at once: in-order keys are non-decreasing
//	(BST on Key) and priorities are non-increasing along any
//	root-to-leaf path (max-heap on Priority). Together they make the
//	shape a random function of the key set, independent of insertion
//	order, giving expected O(log n) height.
//
// Determinism
//
//	Priorities come from an explicit, injectable *rand.Rand (WithRand)
//	or a deterministic seed (WithSeed; seed 0 maps to a fixed default).
//	Same seed and operation sequence ⇒ identical tree shape across
//	runs, which keeps visualizations and tests reproducible. The
//	randomness is a tie-breaker for balance, not a security boundary.
//
// Concurrency
//
//	Not safe for unsynchronized concurrent use while mutating; a
//	*rand.Rand is not goroutine-safe either. Serialize externally if
//	shared.
//
// Complexity (n = distinct keys)
//
//   - Insert / Remove / Contains: expected O(log n)
//   - InorderVec: O(n + total count), iterative (no recursion-depth
//     limits on adversarial shapes)
//   - Len / IsEmpty / Root: O(1)
//
// See example_test.go for usage.
package treap
