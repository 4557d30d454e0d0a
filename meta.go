package deque

// layoutKind discriminates the three occupancy shapes of a deque's backing
// storage. Exactly one shape holds at any time.
type layoutKind uint8

const (
	// layoutEmpty means no slot is occupied.
	layoutEmpty layoutKind = iota

	// layoutLinear means the occupied slots form a single contiguous run
	// [first, first+length).
	layoutLinear

	// layoutWrapped means the occupied slots form two runs: [0, wrapLen),
	// which is logically the back portion, and [wrapLen+gapLen, capacity),
	// which is logically the front portion. The single unused run
	// [wrapLen, wrapLen+gapLen) is the gap.
	layoutWrapped
)

// meta tracks which slots of a fixed-capacity backing store are occupied and
// in what shape, and computes the next index to read or write for every
// operation. It knows nothing about element values.
//
// Only the payload fields guarded by the current kind are meaningful; the
// setters below zero the rest so two metas describing the same occupancy
// compare equal.
type meta struct {
	capacity int
	kind     layoutKind

	// first and length are the layoutLinear payload. length >= 1 and
	// first+length <= capacity whenever kind == layoutLinear.
	first  int
	length int

	// wrapLen and gapLen are the layoutWrapped payload. wrapLen >= 1
	// whenever kind == layoutWrapped.
	wrapLen int
	gapLen  int
}

// emptyMeta returns the occupancy state of a freshly constructed deque over
// storage of the given capacity.
func emptyMeta(capacity int) meta {
	return meta{capacity: capacity, kind: layoutEmpty}
}

func (m *meta) setEmpty() {
	m.kind = layoutEmpty
	m.first, m.length, m.wrapLen, m.gapLen = 0, 0, 0, 0
}

func (m *meta) setLinear(first, length int) {
	m.kind = layoutLinear
	m.first, m.length = first, length
	m.wrapLen, m.gapLen = 0, 0
}

func (m *meta) setWrapped(wrapLen, gapLen int) {
	m.kind = layoutWrapped
	m.wrapLen, m.gapLen = wrapLen, gapLen
	m.first, m.length = 0, 0
}

// len returns the number of occupied slots.
func (m *meta) len() int {
	switch m.kind {
	case layoutLinear:
		return m.length
	case layoutWrapped:
		return m.capacity - m.gapLen
	default:
		return 0
	}
}

// frontIndex returns the index of the logically first occupied slot.
// It returns false if the deque is empty.
func (m *meta) frontIndex() (int, bool) {
	switch m.kind {
	case layoutLinear:
		return m.first, true
	case layoutWrapped:
		return m.wrapLen + m.gapLen, true
	default:
		return 0, false
	}
}

// backIndex returns the index of the logically last occupied slot.
// It returns false if the deque is empty.
func (m *meta) backIndex() (int, bool) {
	switch m.kind {
	case layoutLinear:
		return m.first + m.length - 1, true
	case layoutWrapped:
		return m.wrapLen - 1, true
	default:
		return 0, false
	}
}

// indexRange is a half-open run [start, end) of slot indices.
type indexRange struct {
	start, end int
}

func (r indexRange) empty() bool { return r.start >= r.end }

// asRanges returns the one or two contiguous index runs holding elements, in
// logical front-to-back order. The two runs partition disjoint slots, so
// subslices built from them never alias. For the empty and linear shapes the
// second run is empty.
func (m *meta) asRanges() (front, wrap indexRange) {
	switch m.kind {
	case layoutLinear:
		return indexRange{m.first, m.first + m.length}, indexRange{}
	case layoutWrapped:
		return indexRange{m.wrapLen + m.gapLen, m.capacity}, indexRange{0, m.wrapLen}
	default:
		return indexRange{}, indexRange{}
	}
}

// reserveFront claims one additional slot at the front, returning its index.
// It returns false if the deque is full, which is always the case at
// capacity zero.
func (m *meta) reserveFront() (int, bool) {
	if m.capacity == 0 {
		return 0, false
	}

	switch m.kind {
	case layoutEmpty:
		m.setLinear(m.capacity-1, 1)
		return m.capacity - 1, true

	case layoutLinear:
		if m.length == m.capacity {
			return 0, false
		}
		if m.first == 0 {
			// The run abuts the bottom of storage; claim the top slot and
			// wrap, with the run we had becoming the wrap portion.
			m.setWrapped(m.length, m.capacity-(m.length+1))
			return m.capacity - 1, true
		}
		m.first--
		m.length++
		return m.first, true

	default: // layoutWrapped
		if m.gapLen == 0 {
			return 0, false
		}
		m.gapLen--
		return m.wrapLen + m.gapLen, true
	}
}

// reserveBack claims one additional slot at the back, returning its index.
// It returns false if the deque is full.
func (m *meta) reserveBack() (int, bool) {
	if m.capacity == 0 {
		return 0, false
	}

	switch m.kind {
	case layoutEmpty:
		m.setLinear(0, 1)
		return 0, true

	case layoutLinear:
		if m.length == m.capacity {
			return 0, false
		}
		if m.first+m.length == m.capacity {
			// The run abuts the top of storage; claim slot 0 and wrap.
			m.setWrapped(1, m.capacity-(m.length+1))
			return 0, true
		}
		reserved := m.first + m.length
		m.length++
		return reserved, true

	default: // layoutWrapped
		if m.gapLen == 0 {
			return 0, false
		}
		reserved := m.wrapLen
		m.wrapLen++
		m.gapLen--
		return reserved, true
	}
}

// freeFront releases the logically first occupied slot, returning its index.
// It returns false if the deque is empty.
func (m *meta) freeFront() (int, bool) {
	switch m.kind {
	case layoutLinear:
		freed := m.first
		if m.length == 1 {
			m.setEmpty()
		} else {
			m.first++
			m.length--
		}
		return freed, true

	case layoutWrapped:
		freed := m.wrapLen + m.gapLen
		if freed == m.capacity-1 {
			// The freed slot was the whole front portion; only the wrap
			// portion remains and it is contiguous from slot 0.
			m.setLinear(0, m.wrapLen)
		} else {
			m.gapLen++
		}
		return freed, true

	default:
		return 0, false
	}
}

// freeBack releases the logically last occupied slot, returning its index.
// It returns false if the deque is empty.
func (m *meta) freeBack() (int, bool) {
	switch m.kind {
	case layoutLinear:
		freed := m.first + m.length - 1
		if m.length == 1 {
			m.setEmpty()
		} else {
			m.length--
		}
		return freed, true

	case layoutWrapped:
		freed := m.wrapLen - 1
		if m.wrapLen == 1 {
			// The wrap portion is exhausted; the remaining front portion is
			// contiguous up to the top of storage.
			m.setLinear(m.gapLen+1, m.capacity-(m.gapLen+1))
		} else {
			m.wrapLen--
			m.gapLen++
		}
		return freed, true

	default:
		return 0, false
	}
}

// drainFront atomically removes n slots from the front, returning a cursor
// that yields the removed indices in removal order. It returns false if n is
// negative or exceeds the current length, in which case the state is
// unchanged.
func (m *meta) drainFront(n int) (metaDrain, bool) {
	if n < 0 || n > m.len() {
		return metaDrain{}, false
	}
	drain := metaDrain{meta: *m, remaining: n}

	switch m.kind {
	case layoutEmpty:
		// n must be zero; nothing to do.

	case layoutLinear:
		if n == m.length {
			m.setEmpty()
		} else {
			m.setLinear(m.first+n, m.length-n)
		}

	case layoutWrapped:
		frontLen := m.capacity - (m.wrapLen + m.gapLen)
		if n >= frontLen {
			// The whole front portion goes; what survives of the wrap
			// portion is contiguous from slot n-frontLen.
			first := n - frontLen
			if first == m.wrapLen {
				m.setEmpty()
			} else {
				m.setLinear(first, m.wrapLen-first)
			}
		} else {
			m.setWrapped(m.wrapLen, m.gapLen+n)
		}
	}

	return drain, true
}

// drainBack atomically removes n slots from the back, returning a cursor that
// yields the removed indices in removal order. It returns false if n is
// negative or exceeds the current length, in which case the state is
// unchanged.
func (m *meta) drainBack(n int) (metaDrain, bool) {
	if n < 0 || n > m.len() {
		return metaDrain{}, false
	}
	drain := metaDrain{meta: *m, remaining: n, fromBack: true}

	switch m.kind {
	case layoutEmpty:

	case layoutLinear:
		if n == m.length {
			m.setEmpty()
		} else {
			m.setLinear(m.first, m.length-n)
		}

	case layoutWrapped:
		if n >= m.wrapLen {
			// The whole wrap portion goes; what survives of the front
			// portion is contiguous.
			total := m.capacity - m.gapLen
			if n == total {
				m.setEmpty()
			} else {
				m.setLinear(m.wrapLen+m.gapLen, total-n)
			}
		} else {
			m.setWrapped(m.wrapLen-n, m.gapLen+n)
		}
	}

	return drain, true
}

// clear removes all occupied slots at once, resetting the state to empty
// immediately and returning a cursor over the removed indices in front-to-back
// order.
func (m *meta) clear() metaDrain {
	drain := metaDrain{meta: *m, remaining: m.len()}
	m.setEmpty()
	return drain
}

// metaDrain yields the indices of a removed region on demand by walking down
// a private copy of the occupancy state taken before the removal.
type metaDrain struct {
	meta      meta
	remaining int
	fromBack  bool
}

// next returns the next removed index, or false once the region is exhausted.
func (d *metaDrain) next() (int, bool) {
	if d.remaining == 0 {
		return 0, false
	}
	d.remaining--
	if d.fromBack {
		index, _ := d.meta.freeBack()
		return index, true
	}
	index, _ := d.meta.freeFront()
	return index, true
}
