package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrDuplicateIdentifier = errors.New("duplicate player identifier")
	ErrInvalidMinCount     = errors.New("minimum entry count must not be negative")
	ErrNilPlayer           = errors.New("nil player stats")
)
