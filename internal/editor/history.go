package editor

// UndoCapacity bounds the undo history; the oldest snapshot is evicted first.
const UndoCapacity = 20

type History struct {
	items    []Snapshot
	capacity int
}

func NewHistory() *History {
	return &History{capacity: UndoCapacity}
}

func (h *History) Push(s Snapshot) {
	if len(h.items) == h.capacity {
		copy(h.items, h.items[1:])
		h.items = h.items[:len(h.items)-1]
	}
	h.items = append(h.items, s)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.items) == 0 {
		return Snapshot{}, false
	}
	last := h.items[len(h.items)-1]
	h.items[len(h.items)-1] = Snapshot{}
	h.items = h.items[:len(h.items)-1]
	return last, true
}

func (h *History) Len() int {
	return len(h.items)
}

func (h *History) Clear() {
	h.items = nil
}
