package model

import "errors"

// Sentinel kinds for player statistics errors.
var (
	ErrInvalidScore       = errors.New("score must be a positive integer")
	ErrIdentifierMismatch = errors.New("player identifiers do not match")
)
