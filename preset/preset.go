// Package preset generates a computer army from a unit catalogue and a point
// budget.
//
// Selection is greedy: catalogue entries are ranked by effectiveness
// (attack/cost + health/cost, best first) and as many copies of each are
// taken as the per-type cap and the remaining budget allow. Units are then
// spread over random, distinct cells of the army's three deployment columns.
//
// Complexity: O(n log n) for the ranking of n catalogue entries, O(u) for the
// u selected units.
package preset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/battlegrid/gridgraph"
	"github.com/katalvlaran/battlegrid/unit"
)

// Generate builds an army worth at most maxPoints from catalog.
// The catalogue itself is not modified; every selected unit is a Clone named
// "<type> <n>".
func Generate(catalog []*unit.Unit, maxPoints int, opts ...Option) (*unit.Army, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if maxPoints < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, maxPoints)
	}
	for _, u := range catalog {
		if u.Cost <= 0 {
			return nil, fmt.Errorf("%w: %q costs %d", ErrBadCost, u.Type, u.Cost)
		}
	}

	ranked := Rank(catalog)
	perType := make(map[string]int)
	var (
		selected []*unit.Unit
		points   int
	)
	for _, tmpl := range ranked {
		count := perType[tmpl.Type]
		toAdd := min(o.MaxPerType-count, (maxPoints-points)/tmpl.Cost)
		for i := 0; i < toAdd; i++ {
			count++
			selected = append(selected, tmpl.Clone(fmt.Sprintf("%s %d", tmpl.Type, count)))
			points += tmpl.Cost
		}
		perType[tmpl.Type] = count
	}

	if err := place(selected, o); err != nil {
		return nil, err
	}

	return &unit.Army{Units: selected, Points: points}, nil
}

// Rank returns a copy of catalog ordered by effectiveness, best first.
// Ties keep catalogue order.
func Rank(catalog []*unit.Unit) []*unit.Unit {
	ranked := make([]*unit.Unit, len(catalog))
	copy(ranked, catalog)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Effectiveness(ranked[i]) > Effectiveness(ranked[j])
	})
	return ranked
}

// Effectiveness is attack per point plus health per point.
func Effectiveness(u *unit.Unit) float64 {
	if u.Cost <= 0 {
		return 0
	}
	return float64(u.BaseAttack)/float64(u.Cost) + float64(u.Health)/float64(u.Cost)
}

// place assigns distinct random cells in the side's columns.
func place(units []*unit.Unit, o Options) error {
	capacity := Columns * gridgraph.Height
	if len(units) > capacity {
		return fmt.Errorf("%w: %d units, %d cells", ErrFieldFull, len(units), capacity)
	}
	x0 := 0
	if o.Side == Right {
		x0 = gridgraph.Width - Columns
	}
	cells := o.Rand.Perm(capacity)
	for i, u := range units {
		u.MoveTo(x0+cells[i]%Columns, cells[i]/Columns)
	}
	return nil
}
