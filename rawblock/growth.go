package rawblock

import (
	"math"
	"math/bits"
)

// NextCapacity returns the capacity a block holding size live values grows to
// when one more slot is needed: 1 from empty, otherwise double.
func NextCapacity(size int) int {
	if size == 0 {
		return 1
	}
	// saturate, CheckCapacity rejects it long before it matters
	if size > math.MaxInt/2 {
		return math.MaxInt
	}
	return size * 2
}

// CapacityAfter returns the capacity reached by n sequential appends to an
// empty block, growing with NextCapacity. This is the smallest power of two
// >= n, and 0 for n == 0. It saturates at math.MaxInt.
func CapacityAfter(n int) int {
	if n <= 0 {
		return 0
	}
	if IsPow2(uint(n)) {
		return n
	}
	e := Log2(uint(n)) + 1
	if e >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1 << e
}

// IsPow2 determines if the unsigned value size is a perfect power of 2.
func IsPow2(size uint) bool {
	if size == 0 {
		return false
	}
	return size&(size-1) == 0
}

// Log2 efficiently computes log base 2 of num. num must be > 0.
func Log2(num uint) int {
	return bits.Len(num) - 1
}
