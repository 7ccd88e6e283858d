package scrollingbuffer

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestBuffer_PushBelowCapacity(t *testing.T) {
	b := New(4)
	b.Push(1, 10)
	b.Push(2, 20)

	require.Equal(t, 4, b.Cap())
	require.Equal(t, 2, b.Len())
	require.False(t, b.Full())
	require.Equal(t, []Point{{1, 10}, {2, 20}}, b.Points())
}

func TestBuffer_Wraparound(t *testing.T) {
	for _, extra := range []int{1, 2, 3, 5, 9} {
		b := New(4)
		for i := 0; i < b.Cap()+extra; i++ {
			b.Push(float32(i), float32(-i))
		}
		require.Equal(t, b.Cap(), b.Len())
		require.True(t, b.Full())

		points := b.Points()
		for idx, p := range points {
			expected := float32(idx + extra)
			require.Equal(t, expected, p.X, spew.Sdump(points))
			require.Equal(t, -expected, p.Y, spew.Sdump(points))
			require.Equal(t, p, b.At(idx))
		}
	}
}

func TestBuffer_RawKeepsInsertionOrder(t *testing.T) {
	b := New(3)
	for i := 0; i < 4; i++ {
		b.Push(float32(i), 0)
	}
	raw, offset := b.Raw()
	require.Equal(t, 1, offset)
	require.Equal(t, []Point{{3, 0}, {1, 0}, {2, 0}}, raw)
	require.Equal(t, []float64{1, 2, 3}, b.Xs())
	require.Equal(t, []float64{0, 0, 0}, b.Ys())
}

func TestBuffer_Erase(t *testing.T) {
	b := New(2)
	b.Push(1, 1)
	b.Push(2, 2)
	b.Push(3, 3)
	b.Erase()
	require.Zero(t, b.Len())
	require.Zero(t, b.Offset())
	require.Empty(t, b.Points())

	b.Push(4, 4)
	require.Equal(t, []Point{{4, 4}}, b.Points())
}

func TestBuffer_RangeStops(t *testing.T) {
	b := New(5)
	for i := 0; i < 5; i++ {
		b.PushFloat64(float64(i), 0)
	}
	var visited []int
	b.Range(func(idx int, _ Point) bool {
		visited = append(visited, idx)
		return idx < 2
	})
	require.Equal(t, []int{0, 1, 2}, visited)
}

func TestBuffer_InvalidUse(t *testing.T) {
	require.Panics(t, func() { New(0) })
	b := New(1)
	require.Panics(t, func() { b.At(0) })
}

func TestBuffer_Written(t *testing.T) {
	b := New(1)
	require.Zero(t, b.Written())
	b.Push(1, 1)
	b.Push(2, 2)
	// a full buffer of one point keeps Len and Offset on overwrite
	require.Equal(t, 1, b.Len())
	require.Zero(t, b.Offset())
	require.Equal(t, uint64(2), b.Written())

	b.Erase()
	require.Equal(t, uint64(2), b.Written())
}
