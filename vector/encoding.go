package vector

import (
	"fmt"

	"github.com/forestrie/go-vector/rawblock"
	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
)

var cborEncMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// MarshalCBOR encodes the live elements as a CBOR array using deterministic
// core encoding.
func (v *Vector[T]) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(v.values())
}

// UnmarshalCBOR replaces the contents with the decoded array. The element
// hooks are kept; on failure v is unchanged.
func (v *Vector[T]) UnmarshalCBOR(data []byte) error {
	var values []T
	if err := cbor.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: cbor: %w", ErrDecode, err)
	}
	return v.adopt(values)
}

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.values())
}

// UnmarshalJSON is UnmarshalCBOR for a JSON array.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("%w: json: %w", ErrDecode, err)
	}
	return v.adopt(values)
}

// values never returns nil so an empty vector encodes as an empty array.
func (v *Vector[T]) values() []T {
	if v.size == 0 {
		return []T{}
	}
	return v.Slice()
}

// adopt makes freshly decoded values the contents of v, in an exact fit block.
// Each value is moved in with the move hook, so its lifetime begins in v.
func (v *Vector[T]) adopt(values []T) error {
	nb, err := rawblock.New[T](len(values))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	err = v.constructRange(nb, 0, len(values), func(i int, p *T) error {
		return v.elem.move(p, &values[i])
	})
	if err != nil {
		nb.Release()
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	v.destroyRange(0, v.size)
	v.data().Swap(nb)
	nb.Release()
	v.size = len(values)
	return nil
}
