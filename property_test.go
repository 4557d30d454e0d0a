package deque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hedisam/deque"
)

// Model-based test: a SliceDeque over an observable buffer is driven through
// random operation sequences against a plain-slice reference model. Elements
// are always non-zero so the filler discipline is checkable by looking at the
// raw buffer: a slot is non-zero exactly when it is logically occupied.
func TestDequeMatchesSliceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(0, 8).Draw(t, "capacity")
		buf := make([]int, capacity)
		d := deque.NewIn(buf)
		model := []int{}

		element := rapid.IntRange(1, 1_000_000)

		t.Repeat(map[string]func(*rapid.T){
			"push_front": func(t *rapid.T) {
				item := element.Draw(t, "item")
				err := d.PushFront(item)
				if len(model) == capacity {
					var capErr *deque.CapacityError[int]
					require.ErrorAs(t, err, &capErr)
					require.Equal(t, item, capErr.Item)
					return
				}
				require.NoError(t, err)
				model = append([]int{item}, model...)
			},
			"push_back": func(t *rapid.T) {
				item := element.Draw(t, "item")
				err := d.PushBack(item)
				if len(model) == capacity {
					var capErr *deque.CapacityError[int]
					require.ErrorAs(t, err, &capErr)
					require.Equal(t, item, capErr.Item)
					return
				}
				require.NoError(t, err)
				model = append(model, item)
			},
			"pop_front": func(t *rapid.T) {
				item, ok := d.PopFront()
				if len(model) == 0 {
					require.False(t, ok)
					return
				}
				require.True(t, ok)
				require.Equal(t, model[0], item)
				model = model[1:]
			},
			"pop_back": func(t *rapid.T) {
				item, ok := d.PopBack()
				if len(model) == 0 {
					require.False(t, ok)
					return
				}
				require.True(t, ok)
				require.Equal(t, model[len(model)-1], item)
				model = model[:len(model)-1]
			},
			"clear": func(t *rapid.T) {
				d.Clear()
				model = []int{}
			},
			"truncate": func(t *rapid.T) {
				length := rapid.IntRange(0, capacity+1).Draw(t, "length")
				d.Truncate(length)
				if length < len(model) {
					model = model[:length]
				}
			},
			"drain_front": func(t *rapid.T) {
				n := rapid.IntRange(0, len(model)).Draw(t, "n")
				drain, ok := d.DrainFront(n)
				require.True(t, ok)
				yield := rapid.IntRange(0, n).Draw(t, "yield")
				for i := range yield {
					item, ok := drain.Next()
					require.True(t, ok)
					require.Equal(t, model[i], item)
				}
				// Close must evict whatever was not yielded.
				drain.Close()
				model = model[n:]
			},
			"drain_back": func(t *rapid.T) {
				n := rapid.IntRange(0, len(model)).Draw(t, "n")
				drain, ok := d.DrainBack(n)
				require.True(t, ok)
				yield := rapid.IntRange(0, n).Draw(t, "yield")
				for i := range yield {
					item, ok := drain.Next()
					require.True(t, ok)
					require.Equal(t, model[len(model)-1-i], item)
				}
				drain.Close()
				model = model[:len(model)-n]
			},
			"": func(t *rapid.T) {
				assert.Equal(t, len(model), d.Len())
				assert.LessOrEqual(t, d.Len(), capacity)
				assert.Equal(t, len(model) == 0, d.IsEmpty())
				assert.Equal(t, len(model) == capacity, d.IsFull())

				front, wrap := d.AsSlices()
				assert.Equal(t, model, append(append([]int{}, front...), wrap...),
					"concatenated slices must equal the logical contents")

				assert.Equal(t, model, collect[int](d))

				if len(model) > 0 {
					gotFront, ok := d.Front()
					require.True(t, ok)
					assert.Equal(t, model[0], gotFront)
					gotBack, ok := d.Back()
					require.True(t, ok)
					assert.Equal(t, model[len(model)-1], gotBack)
				}

				// Filler discipline: unoccupied slots hold the zero value,
				// so the non-zero buffer entries are exactly the live
				// elements.
				var occupied []int
				for _, slot := range buf {
					if slot != 0 {
						occupied = append(occupied, slot)
					}
				}
				assert.ElementsMatch(t, model, occupied)
			},
		})
	})
}
