package fid

import "errors"

var (
	// ErrCorrupted is returned when decoding a FID from malformed input.
	ErrCorrupted = errors.New("fid: corrupted encoding")
)
