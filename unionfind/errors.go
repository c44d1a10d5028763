package unionfind

import "errors"

var (
	// ErrInvalidSize indicates a negative universe size passed to New.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")
	// ErrIndexOutOfBounds indicates an element index outside [0, n).
	// Callers should branch with errors.Is; the offending index is
	// attached to the returned error via %w wrapping.
	ErrIndexOutOfBounds = errors.New("unionfind: index out of bounds")
)
