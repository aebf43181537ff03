package vector

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-vector/rawblock"
)

// Vector is a growable sequence of T built on a rawblock.Block. Slots [0, Len())
// of the block are live, the rest are uninitialized.
//
// The zero Vector is empty, uses the zero Element and is ready to use.
type Vector[T any] struct {
	block *rawblock.Block[T]
	size  int
	elem  Element[T]
	log   logger.Logger
}

// New returns an empty vector with capacity 0.
func New[T any](opts ...Option[T]) *Vector[T] {
	o := Options[T]{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Vector[T]{
		block: &rawblock.Block[T]{},
		elem:  o.Element,
		log:   o.Log,
	}
}

// NewSized returns a vector of n value-constructed elements and capacity n. If
// an element fails to construct, the ones already built are destroyed and the
// error is returned.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	if n == 0 {
		return v, nil
	}
	block, err := rawblock.New[T](n)
	if err != nil {
		return nil, err
	}
	err = v.constructRange(block, 0, n, func(_ int, p *T) error {
		return v.elem.init(p)
	})
	if err != nil {
		block.Release()
		return nil, err
	}
	v.block.Assign(block)
	v.size = n
	return v, nil
}

// Clone returns an element-wise copy with capacity exactly Len().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith(v.elem, v.log)
}

func (v *Vector[T]) cloneWith(elem Element[T], log logger.Logger) (*Vector[T], error) {
	if elem.NoCopy {
		return nil, ErrNotCopyable
	}
	c := &Vector[T]{block: &rawblock.Block[T]{}, elem: elem, log: log}
	if v.size == 0 {
		return c, nil
	}
	block, err := rawblock.New[T](v.size)
	if err != nil {
		return nil, err
	}
	src := v.data()
	err = c.constructRange(block, 0, v.size, func(i int, p *T) error {
		return elem.copy(p, src.At(i))
	})
	if err != nil {
		block.Release()
		return nil, err
	}
	c.block.Assign(block)
	c.size = v.size
	return c, nil
}

// Take moves the contents, hooks and storage into a new vector. v is left empty
// with capacity 0.
func (v *Vector[T]) Take() *Vector[T] {
	nv := &Vector[T]{
		block: v.data().Take(),
		size:  v.size,
		elem:  v.elem,
		log:   v.log,
	}
	v.size = 0
	return nv
}

// CopyFrom makes v an element-wise copy of rhs.
//
// If rhs does not fit in the current capacity a full copy is built first and
// swapped in, so a failed copy leaves v untouched. Otherwise no allocation is
// made: the common prefix is assigned in place, then surplus elements are
// destroyed or missing ones copy-constructed. A failure in this branch leaves
// v with every element live but only part of rhs assigned.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if v.elem.NoCopy {
		return ErrNotCopyable
	}
	if rhs.size > v.Cap() {
		c, err := rhs.cloneWith(v.elem, v.log)
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}

	dst, src := v.data(), rhs.data()
	common := min(v.size, rhs.size)
	for i := range common {
		if err := v.elem.assign(dst.At(i), src.At(i)); err != nil {
			return fmt.Errorf("vector: assign element %d: %w", i, err)
		}
	}
	if rhs.size < v.size {
		v.destroyRange(rhs.size, v.size)
		v.size = rhs.size
		return nil
	}
	err := v.constructRange(dst, v.size, rhs.size, func(i int, p *T) error {
		return v.elem.copy(p, src.At(i))
	})
	if err != nil {
		return err
	}
	v.size = rhs.size
	return nil
}

// MoveFrom exchanges contents with rhs. rhs is left holding what v held.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Swap(rhs)
}

// Swap exchanges storage, size and element hooks with other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data().Swap(other.data())
	v.size, other.size = other.size, v.size
	v.elem, other.elem = other.elem, v.elem
	v.log, other.log = other.log, v.log
}

// Release destroys every element and returns the storage. The vector is empty
// with capacity 0 afterwards and may be reused.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data().Release()
}

// Clear destroys every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the block.
func (v *Vector[T]) Cap() int { return v.block.Cap() }

// At returns the address of element i. i must be < Len(); the address is
// invalidated by any operation that reallocates or shifts elements.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d]", i, v.size))
	}
	return v.block.At(i)
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

func (v *Vector[T]) data() *rawblock.Block[T] {
	if v.block == nil {
		v.block = &rawblock.Block[T]{}
	}
	return v.block
}

// constructRange builds slots [from, to) of block with build. On failure the
// slots already built are destroyed and the error is returned wrapped.
func (v *Vector[T]) constructRange(
	block *rawblock.Block[T], from, to int, build func(i int, p *T) error,
) error {
	for i := from; i < to; i++ {
		p := block.At(i)
		if err := build(i, p); err != nil {
			v.elem.discard(p)
			for j := from; j < i; j++ {
				v.elem.destroy(block.At(j))
			}
			return fmt.Errorf("vector: construct element %d: %w", i, err)
		}
	}
	return nil
}

func (v *Vector[T]) destroyRange(from, to int) {
	for i := from; i < to; i++ {
		v.elem.destroy(v.block.At(i))
	}
}
