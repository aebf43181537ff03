package rawblock

import (
	"math"
	"reflect"
)

// MaxBlockBytes bounds the size of a single allocation. Requests above it fail
// with ErrOutOfMemory rather than taking the process down in the runtime.
var MaxBlockBytes uint64 = 1 << 46

// SlotBytes returns the size of one slot for element type T.
func SlotBytes[T any]() uint64 {
	return uint64(reflect.TypeFor[T]().Size())
}

// BlockBytes returns capacity * SlotBytes[T](), or ErrSizeOverflow if that
// does not fit in a uint64.
//
// The caller is responsible for ensuring capacity >= 0.
func BlockBytes[T any](capacity int) (uint64, error) {
	slot := SlotBytes[T]()
	if slot == 0 || capacity == 0 {
		return 0, nil
	}
	if uint64(capacity) > math.MaxUint64/slot {
		return 0, ErrSizeOverflow
	}
	return uint64(capacity) * slot, nil
}

// CheckCapacity reports whether a block of the given capacity may be allocated.
func CheckCapacity[T any](capacity int) error {
	n, err := BlockBytes[T](capacity)
	if err != nil {
		return err
	}
	if n > MaxBlockBytes {
		return ErrOutOfMemory
	}
	return nil
}
