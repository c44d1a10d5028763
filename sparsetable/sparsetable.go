package sparsetable

// Table answers range-minimum queries over a fixed int64 array.
// Immutable after New; safe for concurrent reads.
type Table struct {
	// levels[k][i] = min of the window of length 2^k starting at i;
	// levels[0] is a copy of the input array.
	levels [][]int64
	// log[w] = floor(log2(w)) for window widths 1..n (log[0] unused).
	log []int
}

// New builds the table from arr in O(n log n). arr may be nil or empty;
// the input is copied, so later mutation of arr does not affect the
// table.
func New(arr []int64) *Table {
	n := len(arr)

	// Floor-log lookup: log[i] = log[i/2] + 1.
	log := make([]int, n+1)
	for i := 2; i <= n; i++ {
		log[i] = log[i/2] + 1
	}

	if n == 0 {
		return &Table{log: log}
	}

	maxK := log[n] + 1
	levels := make([][]int64, maxK)
	levels[0] = make([]int64, n)
	copy(levels[0], arr)

	for k := 1; k < maxK; k++ {
		width := 1 << k
		prev := levels[k-1]
		row := make([]int64, n-width+1)
		for i := range row {
			row[i] = min64(prev[i], prev[i+width/2])
		}
		levels[k] = row
	}

	return &Table{levels: levels, log: log}
}

// Query returns the minimum of the input over [l, r] inclusive.
// The second result is false — a "no value" sentinel, not an error —
// when the table is empty, l > r, l is negative, or r is past the last
// valid index.
//
// Complexity: O(1).
func (t *Table) Query(l, r int) (int64, bool) {
	if len(t.levels) == 0 {
		return 0, false
	}
	if l < 0 || l > r || r >= len(t.levels[0]) {
		return 0, false
	}

	k := t.log[r-l+1]

	return min64(t.levels[k][l], t.levels[k][r+1-(1<<k)]), true
}

// Len returns the length of the underlying input array.
func (t *Table) Len() int {
	if len(t.levels) == 0 {
		return 0
	}

	return len(t.levels[0])
}

// Values returns a snapshot copy of the original input array, intended
// for display alongside query results.
func (t *Table) Values() []int64 {
	if len(t.levels) == 0 {
		return nil
	}
	out := make([]int64, len(t.levels[0]))
	copy(out, t.levels[0])

	return out
}

// min64 returns the smaller of two int64 values.
func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
