package sequence

// Ring is a bounded FIFO queue over a fixed circular buffer.
// When full, Push evicts the oldest element instead of blocking or failing.
// Ring is not safe for concurrent use; callers own synchronization.
type Ring[T any] struct {
	buf  []T
	head int
	size int
}

// NewRing creates a Ring with the given capacity. Capacity must be positive.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends a value. If the ring is full the oldest value is evicted;
// the second return reports whether an eviction happened.
func (r *Ring[T]) Push(value T) (evicted T, ok bool) {
	tail := (r.head + r.size) % len(r.buf)
	if r.size == len(r.buf) {
		evicted = r.buf[r.head]
		r.buf[tail] = value
		r.head = (r.head + 1) % len(r.buf)
		return evicted, true
	}
	r.buf[tail] = value
	r.size++
	return evicted, false
}

// Pop removes and returns the oldest value.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	value := r.buf[r.head]
	r.buf[r.head] = zero // avoid retaining popped values
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return value, true
}

// Drain removes all values in FIFO order. Returns nil when empty.
func (r *Ring[T]) Drain() []T {
	if r.size == 0 {
		return nil
	}
	out := make([]T, 0, r.size)
	for {
		v, ok := r.Pop()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Len returns the number of queued values.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the ring holds no values.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}
