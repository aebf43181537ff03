package vector

import "iter"

// All yields the index and address of each element, front to back. Mutating
// the vector during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block.At(i)) {
				return
			}
		}
	}
}

// Backward is All in reverse.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.block.At(i)) {
				return
			}
		}
	}
}

// Slice returns the live elements as a slice aliasing the vector's storage.
// It is invalidated by reallocation and does not track later changes to Len().
func (v *Vector[T]) Slice() []T {
	if v.size == 0 {
		return nil
	}
	return v.block.Slots(0, v.size)
}
