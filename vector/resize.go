package vector

import "fmt"

// Reserve ensures Cap() >= newCap, reallocating to exactly newCap if it is
// not. Len() never changes. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(newCap int) error {
	if newCap <= v.Cap() {
		return nil
	}
	return v.reallocate(newCap, v.size, nil)
}

// Resize sets Len() to n. Shrinking destroys the trailing elements and keeps
// the capacity. Growing reserves n slots and value-constructs the new
// elements; if one fails, those built so far are destroyed and Len() is
// unchanged, though the capacity may have grown.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	if n < v.size {
		v.destroyRange(n, v.size)
		v.size = n
		return nil
	}
	if n == v.size {
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	err := v.constructRange(v.block, v.size, n, func(_ int, p *T) error {
		return v.elem.init(p)
	})
	if err != nil {
		return err
	}
	v.size = n
	return nil
}
