package deque

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the deque's elements as a JSON array in front-to-back
// order.
func (b base[T]) MarshalJSON() ([]byte, error) {
	items := make([]T, 0, b.Len())
	for item := range b.All() {
		items = append(items, item)
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes a JSON array and appends its elements to the back of
// the deque, preserving any elements already present. If the decoded sequence
// does not fit in the deque's free capacity, an error wrapping
// [ErrLengthExceeded] is returned and the deque is left unchanged.
func (b *base[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("deque: could not decode sequence: %w", err)
	}

	free := b.Cap() - b.Len()
	if len(items) > free {
		return fmt.Errorf("deque: cannot hold sequence of %d elements with %d free slots: %w",
			len(items), free, ErrLengthExceeded)
	}

	for _, item := range items {
		_ = b.PushBack(item)
	}
	return nil
}
