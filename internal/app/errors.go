package service

import "errors"

// Sentinel kinds for run errors.
var (
	ErrOpenLog     = errors.New("open play log")
	ErrWriteReport = errors.New("write ranking report")
)
