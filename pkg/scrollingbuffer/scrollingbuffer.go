// Package scrollingbuffer implements a fixed-capacity ring of 2D points
// which overwrites its oldest entry once full.
package scrollingbuffer

import (
	"fmt"
)

type Point struct {
	X float32
	Y float32
}

// Buffer keeps the last Cap() appended points. It has a single writer;
// readers must not run concurrently with Push or Erase.
type Buffer struct {
	capacity int
	points   []Point
	offset   int
	written  uint64
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		panic(fmt.Errorf("capacity must be greater than 0: got %d", capacity))
	}
	return &Buffer{
		capacity: capacity,
		points:   make([]Point, 0, capacity),
	}
}

func (b *Buffer) Cap() int {
	return b.capacity
}

func (b *Buffer) Len() int {
	return len(b.points)
}

func (b *Buffer) Full() bool {
	return len(b.points) == b.capacity
}

// Push appends a point; once the buffer is full the oldest point is
// overwritten.
func (b *Buffer) Push(x, y float32) {
	b.written++
	if len(b.points) < b.capacity {
		b.points = append(b.points, Point{X: x, Y: y})
		return
	}
	b.points[b.offset] = Point{X: x, Y: y}
	b.offset = (b.offset + 1) % b.capacity
}

// Written is the amount of points pushed since New; Erase does not
// reset it.
func (b *Buffer) Written() uint64 {
	return b.written
}

func (b *Buffer) PushFloat64(x, y float64) {
	b.Push(float32(x), float32(y))
}

func (b *Buffer) Erase() {
	b.points = b.points[:0]
	b.offset = 0
}

// Raw returns the underlying storage together with the index of the
// oldest point, which is the layout plotting libraries expect for
// ring buffers. The slice must not be modified.
func (b *Buffer) Raw() ([]Point, int) {
	return b.points, b.offset
}

func (b *Buffer) Offset() int {
	return b.offset
}

// At returns the idx-th oldest point.
func (b *Buffer) At(idx int) Point {
	if idx < 0 || idx >= len(b.points) {
		panic(fmt.Errorf("index %d is out of range [0, %d)", idx, len(b.points)))
	}
	return b.points[(b.offset+idx)%len(b.points)]
}

// Points returns a copy of the stored points, oldest first.
func (b *Buffer) Points() []Point {
	result := make([]Point, 0, len(b.points))
	result = append(result, b.points[b.offset:]...)
	result = append(result, b.points[:b.offset]...)
	return result
}

// Range calls fn for every point, oldest first, until fn returns false.
func (b *Buffer) Range(fn func(idx int, p Point) bool) {
	n := len(b.points)
	for idx := 0; idx < n; idx++ {
		if !fn(idx, b.points[(b.offset+idx)%n]) {
			return
		}
	}
}

func (b *Buffer) Xs() []float64 {
	result := make([]float64, 0, len(b.points))
	b.Range(func(_ int, p Point) bool {
		result = append(result, float64(p.X))
		return true
	})
	return result
}

func (b *Buffer) Ys() []float64 {
	result := make([]float64, 0, len(b.points))
	b.Range(func(_ int, p Point) bool {
		result = append(result, float64(p.Y))
		return true
	})
	return result
}
