package deque_test

import (
	"errors"
	"fmt"

	"github.com/hedisam/deque"
)

// A bounded task queue: urgent tasks jump the line by going to the front,
// and the queue rejects work beyond its fixed capacity instead of growing.
func Example() {
	tasks := deque.New[string](3)

	_ = tasks.PushBack("take hike")
	_ = tasks.PushFront("call mom")
	_ = tasks.PushBack("eat pizza")

	err := tasks.PushBack("one too many")
	var capErr *deque.CapacityError[string]
	if errors.As(err, &capErr) {
		fmt.Printf("rejected: %s\n", capErr.Item)
	}

	for task, ok := tasks.PopFront(); ok; task, ok = tasks.PopFront() {
		fmt.Println(task)
	}

	// Output:
	// rejected: one too many
	// call mom
	// take hike
	// eat pizza
}

// A sliding window over the last few observations, kept in a caller-owned
// buffer: once the window is full, the oldest observation is popped to make
// room for the newest.
func ExampleNewIn() {
	window := deque.NewIn(make([]int, 3))

	for _, sample := range []int{10, 20, 30, 40, 50} {
		if window.IsFull() {
			_, _ = window.PopFront()
		}
		_ = window.PushBack(sample)
	}

	front, wrap := window.AsSlices()
	fmt.Println(front, wrap)

	// Output:
	// [30] [40 50]
}
