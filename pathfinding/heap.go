package pathfinding

// openHeap is the binary-heap-backed open set. It stores arena indices and
// orders them by ascending f, breaking ties by higher g (prefer deeper,
// more-explored candidates) and then by discovery order, so search results
// are deterministic.
type openHeap struct {
	arena *[]searchNode
	items []int32
}

func (h *openHeap) Len() int { return len(h.items) }

func (h *openHeap) Less(i, j int) bool {
	a := &(*h.arena)[h.items[i]]
	b := &(*h.arena)[h.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

func (h *openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	(*h.arena)[h.items[i]].heapIdx = int32(i)
	(*h.arena)[h.items[j]].heapIdx = int32(j)
}

func (h *openHeap) Push(x any) {
	idx := x.(int32)
	(*h.arena)[idx].heapIdx = int32(len(h.items))
	h.items = append(h.items, idx)
}

func (h *openHeap) Pop() any {
	n := len(h.items)
	idx := h.items[n-1]
	h.items = h.items[:n-1]
	(*h.arena)[idx].heapIdx = -1
	return idx
}
