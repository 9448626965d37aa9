// Package gridgraph defines the battlefield dimensions, the Cell key, the
// occupancy Mask and the Node/Graph types used by the path searches.
package gridgraph

import "math"

// Battlefield dimensions. Cells are 0-indexed: x∈[0,Width), y∈[0,Height).
const (
	Width  = 27
	Height = 21

	// Size is the number of cells on the battlefield.
	Size = Width * Height
)

// Unreached is the distance of a node no search has touched yet.
const Unreached = math.MaxInt

// noPrev marks a node without predecessor.
const noPrev = -1

// offsets lists the orthogonal neighbour steps: left, right, up, down.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Cell is a battlefield coordinate. It is comparable and is used directly
// as a lookup key.
type Cell struct {
	X, Y int
}

// InBounds reports whether c lies on the battlefield.
// Complexity: O(1).
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Index maps c to its row-major index y*Width + x.
// The result is meaningful only when c.InBounds().
func (c Cell) Index() int {
	return c.Y*Width + c.X
}

// CellAt converts a row-major index back to a Cell.
func CellAt(idx int) Cell {
	return Cell{X: idx % Width, Y: idx / Width}
}

// Mask is the occupancy snapshot of the battlefield: true means blocked.
// The zero value is an empty field.
type Mask struct {
	cells [Size]bool
}

// Block marks c as occupied. Cells outside the battlefield are ignored.
func (m *Mask) Block(c Cell) {
	if c.InBounds() {
		m.cells[c.Index()] = true
	}
}

// Clear marks c as free. Cells outside the battlefield are ignored.
func (m *Mask) Clear(c Cell) {
	if c.InBounds() {
		m.cells[c.Index()] = false
	}
}

// Blocked reports whether c is occupied. Out-of-bounds cells count as blocked.
func (m *Mask) Blocked(c Cell) bool {
	if !c.InBounds() {
		return true
	}
	return m.cells[c.Index()]
}

// Count returns the number of occupied cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.cells {
		if b {
			n++
		}
	}
	return n
}

// Node is one traversable cell together with its search state.
//
// Dist is the best known number of steps from the search source (Unreached
// until touched), Prev the index of the predecessor on that path (-1 when
// absent) and Neighbors the indices of adjacent traversable nodes.
type Node struct {
	Cell      Cell
	Dist      int
	Prev      int
	Neighbors []int
}

// HasPrev reports whether the node has a recorded predecessor.
func (n *Node) HasPrev() bool { return n.Prev != noPrev }

// Graph maps every free cell of a Mask to a Node. Nodes live in a flat array
// indexed by Cell.Index; occupied cells have no node and cannot be reached.
// A Graph is built for one search call and is not safe for concurrent searches.
type Graph struct {
	nodes   [Size]Node
	present [Size]bool
	count   int
}
