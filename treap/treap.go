package treap

// Node is one treap node. Fields are exported for rendering and
// inspection; treat them as read-only — mutating them from outside the
// package breaks the tree invariants.
//
// Invariants:
//   - in-order Key sequence is strictly increasing (duplicates live in
//     Count, never in separate nodes);
//   - Priority is non-increasing along any root-to-leaf path;
//   - Size == Count + Left.Size + Right.Size (absent children count 0).
type Node struct {
	Key      int64  // search key
	Priority uint64 // random heap key, drawn once at creation
	Count    int    // multiplicity of Key in the multiset
	Size     int    // total multiset cardinality of this subtree
	Left     *Node  // keys < Key, or nil
	Right    *Node  // keys > Key, or nil
}

// recalc restores n.Size from Count and the children's sizes.
func (n *Node) recalc() {
	n.Size = n.Count
	if n.Left != nil {
		n.Size += n.Left.Size
	}
	if n.Right != nil {
		n.Size += n.Right.Size
	}
}

// Treap is an ordered int64 multiset balanced by random priorities.
// Not safe for unsynchronized concurrent use while mutating.
type Treap struct {
	root *Node
	opts options
}

// New creates an empty treap. Without options, priorities come from a
// fixed deterministic stream; use WithSeed or WithRand to control the
// source explicitly.
func New(opts ...Option) *Treap {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Treap{opts: o}
}

// Insert adds one occurrence of key. An existing key has its count
// bumped in place; a new key gets a fresh random priority and is
// attached by descending while node priorities exceed it, then
// splitting the stopped subtree by key. Always succeeds.
//
// Complexity: expected O(log n).
func (t *Treap) Insert(key int64) {
	if t.bumpExisting(key) {
		return
	}

	n := &Node{
		Key:      key,
		Priority: t.opts.rng.Uint64(),
		Count:    1,
	}

	// Descend while the current node outranks the new priority; the new
	// node must sit above the first node with priority <= its own.
	link := &t.root
	var path []*Node
	for *link != nil && (*link).Priority > n.Priority {
		path = append(path, *link)
		if key < (*link).Key {
			link = &(*link).Left
		} else {
			link = &(*link).Right
		}
	}

	// Split the remaining subtree around key and adopt the halves.
	n.Left, n.Right = split(*link, key)
	n.recalc()
	*link = n

	// One occurrence was added below every node on the descent path.
	for _, anc := range path {
		anc.Size++
	}
}

// bumpExisting increments the count of key if it is already present,
// fixing sizes along the access path. Reports whether key was found.
func (t *Treap) bumpExisting(key int64) bool {
	var path []*Node
	cur := t.root
	for cur != nil {
		path = append(path, cur)
		switch {
		case key < cur.Key:
			cur = cur.Left
		case key > cur.Key:
			cur = cur.Right
		default:
			cur.Count++
			for _, n := range path {
				n.Size++
			}

			return true
		}
	}

	return false
}

// split partitions n's subtree into keys < key and keys > key.
// Precondition: key is not present in the subtree (callers insert only
// absent keys), so no equal-key case arises.
func split(n *Node, key int64) (left, right *Node) {
	if n == nil {
		return nil, nil
	}
	if n.Key < key {
		n.Right, right = split(n.Right, key)
		n.recalc()

		return n, right
	}
	left, n.Left = split(n.Left, key)
	n.recalc()

	return left, n
}

// Remove deletes one occurrence of key. Absent keys are a no-op. A node
// with count > 1 only has its count decremented; the last occurrence
// removes the node by merging its children.
//
// Complexity: expected O(log n).
func (t *Treap) Remove(key int64) {
	t.root = remove(t.root, key)
}

func remove(n *Node, key int64) *Node {
	if n == nil {
		return nil
	}
	switch {
	case key < n.Key:
		n.Left = remove(n.Left, key)
	case key > n.Key:
		n.Right = remove(n.Right, key)
	default:
		if n.Count > 1 {
			n.Count--
			n.recalc()

			return n
		}

		return merge(n.Left, n.Right)
	}
	n.recalc()

	return n
}

// merge joins two subtrees where every key in a precedes every key in
// b, keeping the max-heap order: the higher-priority root wins and the
// other subtree recurses into its facing child.
func merge(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Priority > b.Priority {
		a.Right = merge(a.Right, b)
		a.recalc()

		return a
	}
	b.Left = merge(a, b.Left)
	b.recalc()

	return b
}

// Contains reports whether key has at least one occurrence.
//
// Complexity: expected O(log n).
func (t *Treap) Contains(key int64) bool {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.Key:
			cur = cur.Left
		case key > cur.Key:
			cur = cur.Right
		default:
			return true
		}
	}

	return false
}

// Len returns the total multiset cardinality: the sum of all node
// counts, i.e. the root's Size.
func (t *Treap) Len() int {
	if t.root == nil {
		return 0
	}

	return t.root.Size
}

// IsEmpty reports whether the multiset holds no occurrences.
func (t *Treap) IsEmpty() bool {
	return t.Len() == 0
}

// Root returns the root node, or nil for an empty treap. Exposed for
// rendering and inspection; see the Node read-only contract.
func (t *Treap) Root() *Node {
	return t.root
}

// InorderVec returns the non-decreasing key sequence with each key
// repeated per its count. The traversal is iterative with an explicit
// stack, so deep or degenerate shapes cannot exhaust the call stack.
//
// Complexity: O(n + total count).
func (t *Treap) InorderVec() []int64 {
	out := make([]int64, 0, t.Len())

	var stack []*Node
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < cur.Count; i++ {
			out = append(out, cur.Key)
		}
		cur = cur.Right
	}

	return out
}
