package vector

import (
	"fmt"

	"github.com/forestrie/go-vector/rawblock"
)

// reallocate moves the live elements into a new block of capacity newCap.
//
// When build is non nil a new element is first built by it at position gap in
// the new block, and the elements at [gap, size) land one slot later. The
// caller accounts for the extra element in size. With build nil, gap must be
// size.
//
// Either everything succeeds and the new block is swapped in, or the new block
// is unwound and released and v is exactly as it was.
func (v *Vector[T]) reallocate(newCap, gap int, build func(*T) error) error {
	nb, err := rawblock.New[T](newCap)
	if err != nil {
		return err
	}

	built := 0
	if build != nil {
		p := nb.At(gap)
		if err := build(p); err != nil {
			v.elem.discard(p)
			nb.Release()
			return fmt.Errorf("vector: construct element %d: %w", gap, err)
		}
		built = 1
	}

	// the prefix and suffix are transferred independently
	if err := v.transferRange(nb, 0, 0, gap); err != nil {
		if built == 1 {
			v.elem.destroy(nb.At(gap))
		}
		nb.Release()
		v.rolledBack(newCap, err)
		return err
	}
	if err := v.transferRange(nb, gap+built, gap, v.size-gap); err != nil {
		v.unwind(nb, 0, gap+built)
		nb.Release()
		v.rolledBack(newCap, err)
		return err
	}

	if v.log != nil {
		v.log.Debugf("vector: reallocate %d -> %d slots, size=%d, moved=%t",
			v.Cap(), newCap, v.size, v.elem.movable())
	}

	v.destroyRange(0, v.size)
	v.data().Swap(nb)
	nb.Release()
	return nil
}

// transferRange moves or copies n live elements starting at srcOff into the
// uninitialized slots of dst starting at dstOff. On failure the elements it
// constructed in dst are destroyed.
func (v *Vector[T]) transferRange(dst *rawblock.Block[T], dstOff, srcOff, n int) error {
	for i := range n {
		p := dst.At(dstOff + i)
		if err := v.elem.transfer(p, v.block.At(srcOff+i)); err != nil {
			v.elem.discard(p)
			v.unwind(dst, dstOff, dstOff+i)
			return fmt.Errorf("vector: transfer element %d: %w", srcOff+i, err)
		}
	}
	return nil
}

// unwind destroys the elements built in slots [from, to) of a block that was
// never committed.
func (v *Vector[T]) unwind(b *rawblock.Block[T], from, to int) {
	for i := from; i < to; i++ {
		v.elem.destroy(b.At(i))
	}
}

func (v *Vector[T]) rolledBack(newCap int, err error) {
	if v.log == nil {
		return
	}
	v.log.Infof("vector: reallocation to %d slots rolled back, size=%d: %v", newCap, v.size, err)
}
