package rawblock

import (
	"errors"
	"fmt"
)

// noCopy lets go vet flag Block values being copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Block owns storage for a fixed number of T slots. The zero value is the null
// block: no storage and capacity 0.
type Block[T any] struct {
	_     noCopy
	slots []T
}

// New allocates a block with room for capacity values. A capacity of 0 yields
// the null block without allocating.
//
// Fails with ErrOutOfMemory (and returns no block) if the request exceeds
// MaxBlockBytes or its byte size overflows.
func New[T any](capacity int) (*Block[T], error) {
	if capacity < 0 {
		panic(fmt.Sprintf("rawblock: negative capacity %d", capacity))
	}
	if capacity == 0 {
		return &Block[T]{}, nil
	}
	if err := CheckCapacity[T](capacity); err != nil {
		if errors.Is(err, ErrSizeOverflow) {
			err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return nil, fmt.Errorf("%w: %d slots of %d bytes", err, capacity, SlotBytes[T]())
	}
	return &Block[T]{slots: make([]T, capacity)}, nil
}

// Take moves the storage into a new block. b becomes the null block.
func (b *Block[T]) Take() *Block[T] {
	nb := &Block[T]{slots: b.slots}
	b.slots = nil
	return nb
}

// Assign releases the storage of b and moves the storage of src into it. src
// becomes the null block.
func (b *Block[T]) Assign(src *Block[T]) {
	if b == src {
		return
	}
	b.Release()
	b.slots = src.slots
	src.slots = nil
}

// Swap exchanges the storage of two blocks.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release returns the storage. Live values must already have been destroyed by
// the owner. Safe on the null block and on a nil receiver.
func (b *Block[T]) Release() {
	if b == nil {
		return
	}
	b.slots = nil
}

// Cap returns the number of slots.
func (b *Block[T]) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.slots)
}

// IsNull reports whether the block holds no storage.
func (b *Block[T]) IsNull() bool {
	return b.Cap() == 0
}

// At returns the address of slot i, i < Cap().
func (b *Block[T]) At(i int) *T {
	if i < 0 || i >= b.Cap() {
		panic(fmt.Sprintf("rawblock: index %d out of range [0:%d]", i, b.Cap()))
	}
	return &b.slots[i]
}

// Offset returns the slots from off to the end. off == Cap() is the one past
// the end position and yields an empty view.
func (b *Block[T]) Offset(off int) []T {
	if off < 0 || off > b.Cap() {
		panic(fmt.Sprintf("rawblock: offset %d out of range [0:%d]", off, b.Cap()))
	}
	return b.slots[off:]
}

// Slots returns the view [from, to).
func (b *Block[T]) Slots(from, to int) []T {
	if from < 0 || from > to || to > b.Cap() {
		panic(fmt.Sprintf("rawblock: slots [%d:%d] out of range [0:%d]", from, to, b.Cap()))
	}
	return b.slots[from:to:to]
}

// Relocate moves n slot values starting at src to start at dst. The regions
// may overlap. The source slots are left holding stale copies; the caller
// decides which of them to Reset.
func (b *Block[T]) Relocate(dst, src, n int) {
	if n == 0 {
		return
	}
	copy(b.Slots(dst, dst+n), b.Slots(src, src+n))
}

// Reset returns the slots [from, to) to the zero value.
func (b *Block[T]) Reset(from, to int) {
	clear(b.Slots(from, to))
}
