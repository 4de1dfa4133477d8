package watrix

import "errors"

var (
	// ErrLayerNotMarshalable is returned by MarshalBinary when a layer
	// cannot encode itself, e.g. a fid.Mapped layer.
	ErrLayerNotMarshalable = errors.New("watrix: layer does not implement encoding.BinaryMarshaler")

	// ErrCorrupted is returned by UnmarshalBinary on malformed input.
	ErrCorrupted = errors.New("watrix: corrupted encoding")
)
