package trail

import "github.com/san-kum/gravtoy/internal/dynamo"

const DefaultCapacity = 100

// Buffer is a bounded history of points, oldest first.
type Buffer struct {
	points   []dynamo.Vec2
	capacity int
}

func New(capacity int) *Buffer {
	return &Buffer{
		points:   make([]dynamo.Vec2, 0, capacity+1),
		capacity: capacity,
	}
}

// Append records p as the newest point. Once the buffer is over capacity
// the single oldest point is dropped.
func (b *Buffer) Append(p dynamo.Vec2) {
	b.points = append(b.points, p)
	if len(b.points) > b.capacity {
		copy(b.points, b.points[1:])
		b.points = b.points[:len(b.points)-1]
	}
}

func (b *Buffer) Len() int      { return len(b.points) }
func (b *Buffer) Capacity() int { return b.capacity }

// Points returns a copy of the history, oldest first.
func (b *Buffer) Points() []dynamo.Vec2 {
	out := make([]dynamo.Vec2, len(b.points))
	copy(out, b.points)
	return out
}

func (b *Buffer) Reset() {
	b.points = b.points[:0]
}

// Render draws a connected path from the oldest point to the newest.
func (b *Buffer) Render(r dynamo.Renderer) {
	for i := 1; i < len(b.points); i++ {
		r.DrawLine(b.points[i-1], b.points[i])
	}
}
