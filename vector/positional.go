package vector

import (
	"fmt"

	"github.com/forestrie/go-vector/rawblock"
)

// Emplace inserts an element built by build (Element.Init if nil) at pos,
// shifting [pos, Len()) one slot toward the end, and returns pos. pos must be
// in [0, Len()].
//
// Any failure leaves the vector unchanged. When the block is full the new
// element is built in the new block and the prefix and suffix are transferred
// around it. Otherwise the new value is built in a temporary first; the shift
// that follows is an in-block relocation and cannot fail.
func (v *Vector[T]) Emplace(pos int, build func(*T) error) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0:%d]", pos, v.size))
	}
	if build == nil {
		build = v.elem.init
	}

	if v.size == v.Cap() {
		if err := v.reallocate(rawblock.NextCapacity(v.size), pos, build); err != nil {
			return 0, err
		}
		v.size++
		return pos, nil
	}
	if pos == v.size {
		if _, err := v.EmplaceBack(build); err != nil {
			return 0, err
		}
		return pos, nil
	}

	var tmp T
	if err := build(&tmp); err != nil {
		return 0, fmt.Errorf("vector: construct element %d: %w", pos, err)
	}
	v.block.Relocate(pos+1, pos, v.size-pos)
	*v.block.At(pos) = tmp
	v.size++
	return pos, nil
}

// Insert inserts a copy of value at pos. Fails with ErrNotCopyable if T
// cannot be copied.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if v.elem.NoCopy {
		return 0, ErrNotCopyable
	}
	return v.Emplace(pos, func(p *T) error {
		return v.elem.copy(p, &value)
	})
}

// InsertMove inserts *value at pos by moving it.
func (v *Vector[T]) InsertMove(pos int, value *T) (int, error) {
	return v.Emplace(pos, func(p *T) error {
		return v.elem.move(p, value)
	})
}

// Erase destroys the element at pos and shifts the following elements one slot
// earlier. Returns pos, which now addresses the element that followed the
// erased one (or Len()). pos must be < Len().
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0:%d)", pos, v.size))
	}
	v.elem.destroy(v.block.At(pos))
	v.block.Relocate(pos, pos+1, v.size-pos-1)
	// the old last slot now duplicates its neighbour
	v.block.Reset(v.size-1, v.size)
	v.size--
	return pos
}
