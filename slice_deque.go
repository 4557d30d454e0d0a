package deque

// SliceDeque is a double-ended queue operating in place over a
// caller-supplied buffer. The deque's capacity is the length of the buffer
// and its elements live in the buffer itself, so mutations are visible to
// anyone holding the original slice. The caller keeps ownership of the
// allocation and must not read or write it through other references while
// the deque is in use.
type SliceDeque[T any] struct {
	base[T]
}

// NewIn creates an empty SliceDeque over buf. Any previous contents of buf
// are reset to the zero value; the buffer's length (not its extra capacity)
// becomes the deque's fixed capacity.
func NewIn[T any](buf []T) *SliceDeque[T] {
	clear(buf)
	return &SliceDeque[T]{base[T]{
		meta:  emptyMeta(len(buf)),
		slots: buf,
	}}
}
