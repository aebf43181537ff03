package vector

import (
	"fmt"

	"github.com/forestrie/go-vector/rawblock"
)

// PushBack appends a copy of value. Fails with ErrNotCopyable if T cannot be
// copied; use PushBackMove or EmplaceBack instead.
func (v *Vector[T]) PushBack(value T) error {
	if v.elem.NoCopy {
		return ErrNotCopyable
	}
	_, err := v.EmplaceBack(func(p *T) error {
		return v.elem.copy(p, &value)
	})
	return err
}

// PushBackMove appends *value by moving it. *value is left as Element.Move
// leaves a moved from value (zeroed by default).
func (v *Vector[T]) PushBackMove(value *T) error {
	_, err := v.EmplaceBack(func(p *T) error {
		return v.elem.move(p, value)
	})
	return err
}

// EmplaceBack appends an element built in place by build, or by Element.Init
// if build is nil, and returns its address.
//
// When the block is full it grows to rawblock.NextCapacity(Len()). The new
// element is built in the new block before the existing elements are
// transferred; any failure leaves the vector unchanged.
func (v *Vector[T]) EmplaceBack(build func(*T) error) (*T, error) {
	if build == nil {
		build = v.elem.init
	}
	if v.size == v.Cap() {
		if err := v.reallocate(rawblock.NextCapacity(v.size), v.size, build); err != nil {
			return nil, err
		}
	} else {
		p := v.block.At(v.size)
		if err := build(p); err != nil {
			v.elem.discard(p)
			return nil, fmt.Errorf("vector: construct element %d: %w", v.size, err)
		}
	}
	v.size++
	return v.block.At(v.size - 1), nil
}

// PopBack destroys the last element. The capacity is unchanged. Panics on an
// empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.elem.destroy(v.block.At(v.size - 1))
	v.size--
}
