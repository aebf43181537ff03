package vector_test

import (
	"testing"

	"github.com/forestrie/go-vector/vector"
	"github.com/forestrie/go-vector/vectortesting"
	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCBOR(t *testing.T) {
	v := ints(t, 1, 2, 3)
	data, err := v.MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, []byte{0x83, 0x01, 0x02, 0x03}, data)

	data, err = vector.New[int]().MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, data, "empty vectors encode as an empty array")

	// the library picks up the marshaler
	data, err = cbor.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x83, 0x01, 0x02, 0x03}, data)
}

func TestUnmarshalCBOR(t *testing.T) {
	v := ints(t, 10, 20, 30, 40, 50)
	data, err := v.MarshalCBOR()
	require.NoError(t, err)

	got := ints(t, 9)
	require.NoError(t, cbor.Unmarshal(data, got))
	require.Equal(t, v.Slice(), got.Slice())
	require.Equal(t, 5, got.Cap(), "decoding builds an exact fit block")
}

func TestUnmarshalCBORFailureLeavesVectorUnchanged(t *testing.T) {
	v := ints(t, 1, 2)
	err := v.UnmarshalCBOR([]byte{0x83, 0x01})
	require.ErrorIs(t, err, vector.ErrDecode)
	require.Equal(t, []int{1, 2}, v.Slice())
}

func TestJSON(t *testing.T) {
	v := vector.New[string]()
	require.NoError(t, v.PushBack("a"))
	require.NoError(t, v.PushBack("b"))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `["a","b"]`, string(data))

	data, err = vector.New[string]().MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	got := vector.New[string]()
	require.NoError(t, json.Unmarshal([]byte(`["x","y","z"]`), got))
	require.Equal(t, []string{"x", "y", "z"}, got.Slice())

	err = got.UnmarshalJSON([]byte(`{"not":"an array"}`))
	require.ErrorIs(t, err, vector.ErrDecode)
	require.Equal(t, []string{"x", "y", "z"}, got.Slice())
}

func TestUnmarshalBalancesLifetimes(t *testing.T) {
	tr := &vectortesting.Tracker{}
	v, err := vectortesting.NewTracked(tr, false, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Live)
	tr.Reset()

	require.NoError(t, v.UnmarshalJSON([]byte(`[{"Value":7},{"Value":8}]`)))
	assert.Equal(t, []int{7, 8}, vectortesting.Values(v))
	assert.Equal(t, 3, tr.Destroys)
	assert.Equal(t, 2, tr.Moves, "decoded values are moved in")
	assert.Equal(t, 2, tr.Live)

	// hooks survive decoding
	v.PopBack()
	assert.Equal(t, 4, tr.Destroys)
	assert.Equal(t, 1, tr.Live)

	data, err := v.MarshalCBOR()
	require.NoError(t, err)
	require.NoError(t, v.UnmarshalCBOR(data))
	assert.Equal(t, []int{7}, vectortesting.Values(v))
	assert.Equal(t, 1, tr.Live)

	v.Release()
	assert.Equal(t, 0, tr.Live)
}

func TestUnmarshalMoveFailureLeavesVectorUnchanged(t *testing.T) {
	tr := &vectortesting.Tracker{}
	v, err := vectortesting.NewTracked(tr, false, 1, 2, 3)
	require.NoError(t, err)
	tr.Reset()
	tr.FailMoveAt = 2

	err = v.UnmarshalJSON([]byte(`[{"Value":7},{"Value":8}]`))
	require.ErrorIs(t, err, vector.ErrDecode)
	require.ErrorIs(t, err, vectortesting.ErrInjected)
	assert.Equal(t, []int{1, 2, 3}, vectortesting.Values(v))
	assert.Equal(t, 4, v.Cap())
	// the value moved in before the failure was destroyed again
	assert.Equal(t, 1, tr.Destroys)
	assert.Equal(t, 3, tr.Live)

	v.Release()
	assert.Equal(t, 0, tr.Live)
}
