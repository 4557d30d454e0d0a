package deque

// ArrayDeque is a double-ended queue with fixed capacity that owns its
// backing storage. The storage is allocated once at construction and never
// grows or shrinks.
//
// The zero value is a usable deque of capacity zero. Use [New] for any other
// capacity.
type ArrayDeque[T any] struct {
	base[T]
}

// New creates an empty ArrayDeque with the given capacity. Capacity zero is
// valid: the resulting deque is simultaneously empty and full, and every
// push on it fails.
func New[T any](capacity uint) *ArrayDeque[T] {
	return &ArrayDeque[T]{base[T]{
		meta:  emptyMeta(int(capacity)),
		slots: make([]T, capacity),
	}}
}
