package vectortesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerCountsLifetimes(t *testing.T) {
	tr := &Tracker{}
	v, err := NewTracked(tr, false, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, Values(v))
	require.Equal(t, 3, tr.Live)
	require.Equal(t, 3, tr.Copies)
	// 1 -> 2 moves one element, 2 -> 4 moves two
	require.Equal(t, 3, tr.Moves)
	require.Equal(t, 3, tr.Destroys)

	v.Release()
	require.Equal(t, 0, tr.Live)
}

func TestTrackerInjectsFailures(t *testing.T) {
	tr := &Tracker{FailCopyAt: 2}
	_, err := NewTracked(tr, false, 1, 2, 3)
	require.ErrorIs(t, err, ErrInjected)

	tr.Reset()
	require.Zero(t, tr.FailCopyAt)
	require.Zero(t, tr.Copies)
}

func TestNewTestContext(t *testing.T) {
	tc := NewTestContext(t, TestConfig{TestLabelPrefix: "vectortesting"})
	require.NotNil(t, tc.GetLog())
	require.Same(t, t, tc.T)
}
