package deque

import "iter"

// Iterator is a non-consuming double-ended cursor over a deque's elements.
//
// It holds a snapshot of the occupancy state taken at creation and walks it
// down: Next consumes the snapshot's front, NextBack its back, and the two
// ends may be interleaved in any order until they meet. The deque itself is
// not modified; elements yielded are still logically present in the deque.
// Mutating the deque while an Iterator is live invalidates the Iterator.
type Iterator[T any] struct {
	meta  meta
	slots []T
}

// Next returns the next element from the front. It returns false once the
// iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	index, ok := it.meta.freeFront()
	if !ok {
		var zero T
		return zero, false
	}
	return it.slots[index], true
}

// NextBack returns the next element from the back. It returns false once the
// iterator is exhausted.
func (it *Iterator[T]) NextBack() (T, bool) {
	index, ok := it.meta.freeBack()
	if !ok {
		var zero T
		return zero, false
	}
	return it.slots[index], true
}

// Len returns the number of elements not yet yielded.
func (it *Iterator[T]) Len() int {
	return it.meta.len()
}

// All returns an iterator over the deque's elements in front-to-back order.
func (b *base[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := b.Iter()
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over the deque's elements in back-to-front
// order.
func (b *base[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := b.Iter()
		for item, ok := it.NextBack(); ok; item, ok = it.NextBack() {
			if !yield(item) {
				return
			}
		}
	}
}

// Drain is a consuming cursor returned by DrainFront and DrainBack.
//
// The drained region is excluded from the deque the moment the cursor is
// created: Len, Front, Back and iteration no longer see it. The element
// values themselves are evicted from storage lazily, as the cursor yields
// them; Close evicts whatever was not yielded. A Drain that is abandoned
// without Close leaves the old values physically in the already-excluded
// slots until a later push overwrites them — they are unreachable through
// the deque, but storage keeps them alive for the garbage collector.
type Drain[T any] struct {
	drain metaDrain
	slots []T
}

// Next removes and returns the next drained element, resetting its slot to
// the zero value. It returns false once the drained region is exhausted.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	index, ok := d.drain.next()
	if !ok {
		return zero, false
	}
	item := d.slots[index]
	d.slots[index] = zero
	return item, true
}

// Remaining returns the number of drained elements not yet yielded.
func (d *Drain[T]) Remaining() int {
	return d.drain.remaining
}

// Close evicts all drained elements that were not yielded, resetting their
// slots to the zero value. It is safe to call Close multiple times, or after
// the cursor is exhausted.
func (d *Drain[T]) Close() {
	var zero T
	for index, ok := d.drain.next(); ok; index, ok = d.drain.next() {
		d.slots[index] = zero
	}
}

// All returns an iterator over the remaining drained elements in removal
// order. Breaking out of the loop early leaves the rest in storage; call
// Close to evict them.
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item, ok := d.Next(); ok; item, ok = d.Next() {
			if !yield(item) {
				return
			}
		}
	}
}
