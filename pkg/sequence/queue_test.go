package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingFIFOOrder(t *testing.T) {
	r := NewRing[int](4)
	for i := 1; i <= 3; i++ {
		_, evicted := r.Push(i)
		require.False(t, evicted)
	}
	require.Equal(t, 3, r.Len())
	require.Equal(t, []int{1, 2, 3}, r.Drain())
	require.True(t, r.IsEmpty())
	require.Nil(t, r.Drain())
}

func TestRingEvictsOldestWhenFull(t *testing.T) {
	r := NewRing[string](2)
	r.Push("a")
	r.Push("b")
	evicted, ok := r.Push("c")
	require.True(t, ok)
	require.Equal(t, "a", evicted)
	require.Equal(t, []string{"b", "c"}, r.Drain())
}

func TestRingPopEmpty(t *testing.T) {
	r := NewRing[int](1)
	_, ok := r.Pop()
	require.False(t, ok)
}

func TestRingWrapAround(t *testing.T) {
	r := NewRing[int](3)
	r.Push(1)
	r.Push(2)
	v, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)

	r.Push(3)
	r.Push(4) // wraps into the slot freed by Pop
	require.Equal(t, 3, r.Len())
	require.Equal(t, []int{2, 3, 4}, r.Drain())
}

func TestRingMinimumCapacity(t *testing.T) {
	r := NewRing[int](0)
	require.Equal(t, 1, r.Cap())
	r.Push(7)
	evicted, ok := r.Push(8)
	require.True(t, ok)
	require.Equal(t, 7, evicted)
}
