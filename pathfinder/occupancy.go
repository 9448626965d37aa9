package pathfinder

import (
	"reflect"

	"github.com/katalvlaran/battlegrid/gridgraph"
)

// OccupancyMask marks every cell holding a living roster entry other than
// mover and target. Dead units never block; nil entries (including nil
// pointers) and entries off the battlefield are ignored.
//
// The cells of mover and target are cleared afterwards, so a stale entry that
// shares one of them cannot cut the path at its ends.
//
// Complexity: O(k) for k roster entries, plus O(W×H) to allocate the mask.
func OccupancyMask(roster []Occupant, mover, target Occupant) *gridgraph.Mask {
	m := &gridgraph.Mask{}
	for _, o := range roster {
		if isNil(o) || same(o, mover) || same(o, target) || !o.IsAlive() {
			continue
		}
		m.Block(cellOf(o))
	}
	if !isNil(mover) {
		m.Clear(cellOf(mover))
	}
	if !isNil(target) {
		m.Clear(cellOf(target))
	}

	return m
}

// isNil reports whether o is nil or wraps a nil pointer.
func isNil(o Occupant) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// same reports whether a and b are the same occupant. Occupants of an
// uncomparable dynamic type are never the same as anything; their cells are
// still freed when they are the mover or the target.
func same(a, b Occupant) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
