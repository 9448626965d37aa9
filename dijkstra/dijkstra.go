// Package dijkstra implements a uniform-cost (Dijkstra) search on the
// battlefield graph, where every step costs 1.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V ≤ 567 nodes, E ≤ 4V directed links.
//   - Space: O(V) heap entries under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Search state (Dist, Prev) lives on the gridgraph nodes; the graph is
//     Reset before every search.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring entries whose distance is worse than the node's recorded one.
//   - The search stops as soon as the target is settled.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/battlegrid/gridgraph"
)

// ShortestPath returns a minimum-length path from src to dst in g, inclusive of
// both ends, or nil when no path exists.
//
// "No path" is a normal result, not an error: it covers src or dst not being a
// node of g (occupied or off the field), dst being disconnected from src, and
// dst lying beyond MaxDistance. The only error is ErrNilGraph.
//
// When several shortest paths exist, which one is returned is unspecified.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPath(g *gridgraph.Graph, src, dst gridgraph.Cell, opts ...Option) ([]gridgraph.Cell, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(src) || !g.Has(dst) {
		return nil, nil
	}

	g.Reset()
	r := &runner{
		g:       g,
		options: cfg,
		target:  dst.Index(),
		pq:      make(nodePQ, 0, g.Len()),
	}
	r.init(src)
	if !r.process() {
		return nil, nil
	}

	return g.PathTo(dst), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.Graph // graph whose nodes carry Dist/Prev
	options Options          // MaxDistance and hooks
	target  int              // index of the destination node
	pq      nodePQ           // min-heap of *nodeItem
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner) init(src gridgraph.Cell) {
	n := r.g.At(src.Index())
	n.Dist = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src.Index(), dist: 0})
}

// process repeatedly settles the closest node until the target is settled
// (returns true) or the heap runs dry (returns false).
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		n := r.g.At(item.idx)

		// Stale heap entry: a shorter distance was recorded after this push.
		if item.dist > n.Dist {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return false
		}

		r.options.OnExpand(n.Cell, n.Dist)
		if item.idx == r.target {
			return true
		}
		r.relax(item.idx, n)
	}

	return false
}

// relax tries to improve every neighbour of u through u. Improvements are
// strict: equal distances keep the first recorded predecessor.
func (r *runner) relax(u int, n *gridgraph.Node) {
	newDist := n.Dist + 1 // all edges weigh 1
	if newDist > r.options.MaxDistance {
		return
	}
	for _, v := range n.Neighbors {
		nb := r.g.At(v)
		if newDist >= nb.Dist {
			continue
		}
		nb.Dist = newDist
		nb.Prev = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a node index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop after it moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
