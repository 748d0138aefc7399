package pathfinding

import (
	"sync"

	"elbow/grid"
)

// scratch bundles the per-call buffers of one search: the arena of search
// records, the node-to-arena index, and the open-set heap storage. Pooling
// them keeps allocation churn out of the per-frame routing loop. A scratch
// is fully reset before reuse; no blocked flags or scores survive between
// calls.
type scratch struct {
	nodes     []searchNode
	index     map[grid.NodeID]int32
	heapItems []int32
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{
			nodes:     make([]searchNode, 0, 64),
			index:     make(map[grid.NodeID]int32, 64),
			heapItems: make([]int32, 0, 64),
		}
	},
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func putScratch(sc *scratch) {
	sc.nodes = sc.nodes[:0]
	sc.heapItems = sc.heapItems[:0]
	clear(sc.index)
	scratchPool.Put(sc)
}
