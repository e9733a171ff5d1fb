package assetgen

import "errors"

var (
	// ErrInvalidArgument is returned when a generator is called with
	// parameters outside its domain, before any computation or I/O happens.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO is returned when an output sink cannot be opened or written.
	ErrIO = errors.New("i/o failure")
)
