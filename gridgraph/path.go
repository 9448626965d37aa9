package gridgraph

// PathTo reconstructs the path ending at target by walking predecessor links
// back to the search source, then reversing the collected cells so the result
// runs source→target inclusive. The source, whose predecessor is absent, is
// always included.
//
// PathTo returns nil if target is not a node of g or was never reached.
// Complexity: O(d), d = path length.
func (g *Graph) PathTo(target Cell) []Cell {
	n, ok := g.Node(target)
	if !ok || n.Dist == Unreached {
		return nil
	}
	path := make([]Cell, 0, n.Dist+1)
	for {
		path = append(path, n.Cell)
		if !n.HasPrev() {
			break
		}
		n = g.At(n.Prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
