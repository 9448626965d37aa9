package gridgraph

// ConnectedComponents finds all regions of mutually reachable free cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in discovery order. Use CellAt to convert an index back to a Cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]int {
	seen := make([]bool, Size)
	var comps [][]int

	for i0 := 0; i0 < Size; i0++ {
		if !g.present[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.nodes[queue[qi]].Neighbors {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentLabels returns, for every cell index, the number of the component
// containing it (as ordered by ConnectedComponents), or -1 for occupied cells.
func (g *Graph) ComponentLabels() []int {
	labels := make([]int, Size)
	for i := range labels {
		labels[i] = -1
	}
	for ci, comp := range g.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = ci
		}
	}

	return labels
}

// Connected reports whether a and b are nodes of the same component.
func (g *Graph) Connected(a, b Cell) bool {
	if !g.Has(a) || !g.Has(b) {
		return false
	}
	labels := g.ComponentLabels()
	return labels[a.Index()] == labels[b.Index()]
}
