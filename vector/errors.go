package vector

import "errors"

var (
	ErrNotCopyable = errors.New("vector: element type cannot be copied")
	ErrDecode      = errors.New("vector: cannot decode elements")
)
