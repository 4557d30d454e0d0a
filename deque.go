// Package deque provides fixed-capacity double-ended queues backed by
// contiguous storage.
//
// Two backings are available: [ArrayDeque] owns its storage, while
// [SliceDeque] operates in place over a caller-supplied buffer. Both share
// the same algorithm and API: O(1) push/pop at either end, direct front/back
// access, two-slice views of the occupied region, double-ended iteration and
// bulk draining. Capacity is fixed at construction; a push onto a full deque
// fails with a [CapacityError] carrying the rejected element and leaves the
// deque untouched.
//
// Removed slots are always reset to the zero value of the element type, so
// the backing storage never retains references to elements that were popped,
// drained or cleared.
//
// Deques are not safe for concurrent use.
package deque

import "errors"

// ErrLengthExceeded is returned (wrapped) when decoding a sequence that does
// not fit in a deque's free capacity.
var ErrLengthExceeded = errors.New("sequence length exceeds free capacity")

// CapacityError is returned by PushFront and PushBack when the deque is
// already full. Item carries the rejected element back to the caller
// unchanged; the deque is guaranteed unmodified by the failed push.
type CapacityError[T any] struct {
	Item T
}

func (e *CapacityError[T]) Error() string {
	return "deque: capacity exceeded"
}

// base implements the deque algorithm over any fixed-capacity indexable
// storage. The two exported deque types embed it and differ only in how the
// storage is constructed and owned.
type base[T any] struct {
	meta  meta
	slots []T
}

// Cap returns the fixed capacity of the deque.
func (b *base[T]) Cap() int {
	return b.meta.capacity
}

// Len returns the number of elements currently in the deque.
func (b *base[T]) Len() int {
	return b.meta.len()
}

// IsEmpty returns true if the deque contains no elements.
func (b *base[T]) IsEmpty() bool {
	return b.meta.kind == layoutEmpty
}

// IsFull returns true if the deque contains as many elements as its capacity.
// A zero-capacity deque is both empty and full.
func (b *base[T]) IsFull() bool {
	return b.Len() == b.Cap()
}

// Front returns the first element of the deque. It returns false if the
// deque is empty.
func (b *base[T]) Front() (T, bool) {
	index, ok := b.meta.frontIndex()
	if !ok {
		var zero T
		return zero, false
	}
	return b.slots[index], true
}

// Back returns the last element of the deque. It returns false if the deque
// is empty.
func (b *base[T]) Back() (T, bool) {
	index, ok := b.meta.backIndex()
	if !ok {
		var zero T
		return zero, false
	}
	return b.slots[index], true
}

// FrontPtr returns a pointer to the first element for in-place mutation, or
// nil if the deque is empty. The pointer is invalidated by any subsequent
// mutation of the deque.
func (b *base[T]) FrontPtr() *T {
	index, ok := b.meta.frontIndex()
	if !ok {
		return nil
	}
	return &b.slots[index]
}

// BackPtr returns a pointer to the last element for in-place mutation, or
// nil if the deque is empty. The pointer is invalidated by any subsequent
// mutation of the deque.
func (b *base[T]) BackPtr() *T {
	index, ok := b.meta.backIndex()
	if !ok {
		return nil
	}
	return &b.slots[index]
}

// AsSlices returns the deque's elements as two subslices of the backing
// storage in front-to-back order: the concatenation front+wrap is the logical
// contents of the deque. Either or both slices may be empty. The slices never
// alias each other; writes through them mutate the deque's elements in place.
func (b *base[T]) AsSlices() (front, wrap []T) {
	frontRange, wrapRange := b.meta.asRanges()
	return b.slots[frontRange.start:frontRange.end], b.slots[wrapRange.start:wrapRange.end]
}

// PushFront prepends item to the deque. If the deque is full it returns a
// *CapacityError carrying the rejected item, and the deque is unchanged.
func (b *base[T]) PushFront(item T) error {
	index, ok := b.meta.reserveFront()
	if !ok {
		return &CapacityError[T]{Item: item}
	}
	b.slots[index] = item
	return nil
}

// PushBack appends item to the deque. If the deque is full it returns a
// *CapacityError carrying the rejected item, and the deque is unchanged.
func (b *base[T]) PushBack(item T) error {
	index, ok := b.meta.reserveBack()
	if !ok {
		return &CapacityError[T]{Item: item}
	}
	b.slots[index] = item
	return nil
}

// PopFront removes and returns the first element of the deque, resetting its
// slot to the zero value. It returns false if the deque is empty.
func (b *base[T]) PopFront() (T, bool) {
	var zero T
	index, ok := b.meta.freeFront()
	if !ok {
		return zero, false
	}
	item := b.slots[index]
	b.slots[index] = zero
	return item, true
}

// PopBack removes and returns the last element of the deque, resetting its
// slot to the zero value. It returns false if the deque is empty.
func (b *base[T]) PopBack() (T, bool) {
	var zero T
	index, ok := b.meta.freeBack()
	if !ok {
		return zero, false
	}
	item := b.slots[index]
	b.slots[index] = zero
	return item, true
}

// Clear removes all elements, resetting every occupied slot to the zero
// value. Capacity is retained.
func (b *base[T]) Clear() {
	var zero T
	drain := b.meta.clear()
	for index, ok := drain.next(); ok; index, ok = drain.next() {
		b.slots[index] = zero
	}
}

// Truncate removes elements from the back until at most length elements
// remain, resetting the vacated slots to the zero value. It is a no-op if
// the deque already holds at most length elements.
func (b *base[T]) Truncate(length int) {
	n := b.Len() - max(length, 0)
	if n <= 0 {
		return
	}
	drain, _ := b.meta.drainBack(n)
	var zero T
	for index, ok := drain.next(); ok; index, ok = drain.next() {
		b.slots[index] = zero
	}
}

// Iter returns a non-consuming double-ended cursor over the deque's elements.
// The cursor walks a snapshot of the occupancy state, so it remains valid as
// long as the deque is not mutated.
func (b *base[T]) Iter() *Iterator[T] {
	return &Iterator[T]{meta: b.meta, slots: b.slots}
}

// DrainFront removes the first n elements, returning a cursor that yields
// them in front-to-back order. The elements are excluded from the deque's
// length and front/back immediately; see [Drain] for the eviction contract.
// It returns false, leaving the deque unchanged, if n is negative or exceeds
// the current length.
func (b *base[T]) DrainFront(n int) (*Drain[T], bool) {
	drain, ok := b.meta.drainFront(n)
	if !ok {
		return nil, false
	}
	return &Drain[T]{drain: drain, slots: b.slots}, true
}

// DrainBack removes the last n elements, returning a cursor that yields them
// in back-to-front order. The elements are excluded from the deque's length
// and front/back immediately; see [Drain] for the eviction contract. It
// returns false, leaving the deque unchanged, if n is negative or exceeds the
// current length.
func (b *base[T]) DrainBack(n int) (*Drain[T], bool) {
	drain, ok := b.meta.drainBack(n)
	if !ok {
		return nil, false
	}
	return &Drain[T]{drain: drain, slots: b.slots}, true
}
