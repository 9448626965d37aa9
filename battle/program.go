package battle

import (
	"context"
	"math"

	"github.com/katalvlaran/battlegrid/gridgraph"
	"github.com/katalvlaran/battlegrid/pathfinder"
	"github.com/katalvlaran/battlegrid/target"
	"github.com/katalvlaran/battlegrid/unit"
)

// Field is the shared battlefield both armies stand on.
type Field struct {
	Player   *unit.Army
	Computer *unit.Army
	finder   *pathfinder.Finder
}

// NewField binds two armies to a path finder. A nil finder selects the default.
func NewField(player, computer *unit.Army, finder *pathfinder.Finder) *Field {
	if finder == nil {
		finder = DefaultOptions().Finder
	}
	return &Field{Player: player, Computer: computer, finder: finder}
}

// Roster returns every unit of both armies, dead ones included.
func (f *Field) Roster() []pathfinder.Occupant {
	all := make([]*unit.Unit, 0, len(f.Player.Units)+len(f.Computer.Units))
	all = append(all, f.Player.Units...)
	all = append(all, f.Computer.Units...)
	return pathfinder.Roster(all)
}

// Enemies returns the army opposing u and whether it is the left army.
func (f *Field) Enemies(u *unit.Unit) (*unit.Army, bool) {
	for _, p := range f.Player.Units {
		if p == u {
			return f.Computer, true
		}
	}
	return f.Player, false
}

// DefaultProgram is the behaviour given to units without their own Program:
// pick an open enemy (see package target), walk next to it if the unit fights
// in melee, and strike.
type DefaultProgram struct {
	self  *unit.Unit
	field *Field
}

// NewDefaultProgram binds the default behaviour to u on f.
func NewDefaultProgram(u *unit.Unit, f *Field) *DefaultProgram {
	return &DefaultProgram{self: u, field: f}
}

// Attack implements unit.Program. It returns nil without error when no open
// enemy can be reached, and ctx.Err() without acting once ctx is done.
func (p *DefaultProgram) Attack(ctx context.Context) (*unit.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.self.IsAlive() {
		return nil, unit.ErrDead
	}
	enemies, left := p.field.Enemies(p.self)
	candidates := target.Suitable(enemies, left)
	if len(candidates) == 0 {
		return nil, nil
	}

	var victim *unit.Unit
	if p.self.AttackType == unit.Ranged {
		victim = p.closest(candidates)
	} else {
		victim = p.approach(candidates)
	}
	if victim == nil {
		return nil, nil
	}
	victim.TakeDamage(Damage(p.self, victim))

	return victim, nil
}

// closest picks the candidate with the smallest Manhattan distance; ties keep
// row order.
func (p *DefaultProgram) closest(candidates []*unit.Unit) *unit.Unit {
	var best *unit.Unit
	bestDist := math.MaxInt
	for _, c := range candidates {
		d := abs(c.X-p.self.X) + abs(c.Y-p.self.Y)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// approach picks the candidate with the shortest path and moves next to it.
func (p *DefaultProgram) approach(candidates []*unit.Unit) *unit.Unit {
	roster := p.field.Roster()
	var (
		best     *unit.Unit
		bestPath []gridgraph.Cell
	)
	for _, c := range candidates {
		path := p.field.finder.FindPath(p.self, c, roster)
		if len(path) == 0 {
			continue
		}
		if best == nil || len(path) < len(bestPath) {
			best, bestPath = c, path
		}
	}
	if best == nil {
		return nil
	}
	// Stop on the last cell before the target; a one-cell path means the two
	// units already share a cell.
	if len(bestPath) >= 2 {
		stop := bestPath[len(bestPath)-2]
		p.self.MoveTo(stop.X, stop.Y)
	}
	return best
}

// Damage is the attacker's base attack scaled by its bonus against the
// defender's type and divided by the defender's bonus against the attacker's
// type. Missing or non-positive bonuses count as 1.
func Damage(attacker, defender *unit.Unit) int {
	atk := bonus(attacker.AttackBonuses, defender.Type)
	def := bonus(defender.DefenceBonuses, attacker.Type)
	return int(math.Round(float64(attacker.BaseAttack) * atk / def))
}

func bonus(m map[string]float64, key string) float64 {
	if v, ok := m[key]; ok && v > 0 {
		return v
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
