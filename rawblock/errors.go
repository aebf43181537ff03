package rawblock

import "errors"

var (
	ErrOutOfMemory  = errors.New("rawblock: allocation request cannot be satisfied")
	ErrSizeOverflow = errors.New("rawblock: size computation overflow")
)
