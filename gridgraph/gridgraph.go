package gridgraph

// NewGraph builds the traversal graph of every free cell in mask.
//
// For each free cell a node is created (or reused when an earlier cell already
// created it as a neighbour) and linked to its in-bounds, free orthogonal
// neighbours. Each cell computes its own links from the same mask, so the
// resulting adjacency is symmetric. A nil mask is treated as an empty field.
//
// Complexity: O(W×H×4) time, O(W×H) memory.
func NewGraph(mask *Mask) *Graph {
	if mask == nil {
		mask = &Mask{}
	}
	g := &Graph{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := Cell{X: x, Y: y}
			if mask.Blocked(c) {
				continue
			}
			n := g.ensure(c)
			for _, d := range offsets {
				nc := Cell{X: x + d[0], Y: y + d[1]}
				if mask.Blocked(nc) {
					continue
				}
				g.ensure(nc)
				n.Neighbors = append(n.Neighbors, nc.Index())
			}
		}
	}

	return g
}

// ensure returns the node for c, creating it on first use.
func (g *Graph) ensure(c Cell) *Node {
	i := c.Index()
	if !g.present[i] {
		g.present[i] = true
		g.nodes[i] = Node{Cell: c, Dist: Unreached, Prev: noPrev, Neighbors: make([]int, 0, len(offsets))}
		g.count++
	}
	return &g.nodes[i]
}

// Has reports whether c is a traversable node of g.
// Complexity: O(1).
func (g *Graph) Has(c Cell) bool {
	return c.InBounds() && g.present[c.Index()]
}

// Node returns the node at c, or (nil, false) if c is occupied or off the field.
func (g *Graph) Node(c Cell) (*Node, bool) {
	if !g.Has(c) {
		return nil, false
	}
	return &g.nodes[c.Index()], true
}

// At returns the node stored at row-major index idx. The caller must only pass
// indices obtained from the graph itself (Cell.Index of a present node or an
// entry of Node.Neighbors).
func (g *Graph) At(idx int) *Node {
	return &g.nodes[idx]
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.count }

// Reset clears the search state of every node (Dist=Unreached, no predecessor)
// so another search can run on the same graph.
// Complexity: O(W×H).
func (g *Graph) Reset() {
	for i := range g.nodes {
		if g.present[i] {
			g.nodes[i].Dist = Unreached
			g.nodes[i].Prev = noPrev
		}
	}
}
