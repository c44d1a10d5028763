// Package fenwick defines the tagged constructor input and sentinel
// errors for the Fenwick tree.
package fenwick

import "errors"

var (
	// ErrInvalidInput indicates a constructor Input that is neither a
	// valid element count nor an initial value sequence (the zero Input,
	// or ByCount with a negative n).
	ErrInvalidInput = errors.New("fenwick: input must be an element count or a value sequence")
	// ErrIndexOutOfBounds indicates an element index outside [0, n).
	// Callers should branch with errors.Is; the offending index is
	// attached to the returned error via %w wrapping.
	ErrIndexOutOfBounds = errors.New("fenwick: index out of bounds")
)

// inputKind tags the two accepted constructor shapes.
type inputKind int

const (
	kindNone   inputKind = iota // zero Input: rejected by New
	kindCount                   // ByCount: zero-initialized tree of n elements
	kindValues                  // ByValues: bulk build from an initial sequence
)

// Input is the tagged constructor argument for New: build it with
// ByCount or ByValues. The zero Input is invalid and makes New return
// ErrInvalidInput.
type Input struct {
	kind   inputKind
	count  int
	values []int64
}

// ByCount describes a zero-initialized tree representing n elements.
// Validation of n happens in New.
func ByCount(n int) Input {
	return Input{kind: kindCount, count: n}
}

// ByValues describes a tree seeded from vs in O(n). The slice is copied
// during construction; vs may be nil or empty for an empty tree.
func ByValues(vs []int64) Input {
	return Input{kind: kindValues, values: vs}
}
