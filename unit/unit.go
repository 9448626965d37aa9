// Package unit defines the combat unit and army types shared by the
// pathfinder, the target finder, the preset generator and the battle loop.
package unit

import (
	"context"
	"errors"
)

// AttackType tells whether a unit must stand next to its target.
type AttackType string

const (
	// Melee units walk up to the target before striking.
	Melee AttackType = "MELEE"
	// Ranged units strike from where they stand.
	Ranged AttackType = "RANGE"
)

// ErrDead is returned when a dead unit is asked to act.
var ErrDead = errors.New("unit: unit is dead")

// Program decides and performs one unit's action during its turn.
// It returns the unit that was attacked, or nil when the unit had nothing to do.
// ctx is the battle's context; a cancelled ctx should end the action early
// with ctx.Err().
type Program interface {
	Attack(ctx context.Context) (*Unit, error)
}

// Unit is one combatant placed on the battlefield.
//
// A unit is alive while Health > 0. Units are always handled by pointer: the
// pathfinder tells the mover and the target apart from the rest of the roster
// by identity.
type Unit struct {
	Name           string
	Type           string
	Health         int
	BaseAttack     int
	Cost           int
	AttackType     AttackType
	AttackBonuses  map[string]float64 // multiplier per defender type
	DefenceBonuses map[string]float64 // divisor per attacker type
	X, Y           int
	Program        Program
}

// Position returns the unit's cell coordinates.
func (u *Unit) Position() (x, y int) { return u.X, u.Y }

// IsAlive reports whether the unit still has health left.
func (u *Unit) IsAlive() bool { return u.Health > 0 }

// MoveTo places the unit on (x, y).
func (u *Unit) MoveTo(x, y int) {
	u.X, u.Y = x, y
}

// TakeDamage subtracts dmg from Health, never going below zero.
// It reports whether the hit killed the unit.
func (u *Unit) TakeDamage(dmg int) bool {
	if dmg < 0 {
		dmg = 0
	}
	u.Health -= dmg
	if u.Health < 0 {
		u.Health = 0
	}
	return u.Health == 0
}

// Clone returns a fresh copy of the template u named name, at (0,0) and
// without a program. Bonus maps are copied.
func (u *Unit) Clone(name string) *Unit {
	c := *u
	c.Name = name
	c.X, c.Y = 0, 0
	c.Program = nil
	c.AttackBonuses = copyBonuses(u.AttackBonuses)
	c.DefenceBonuses = copyBonuses(u.DefenceBonuses)
	return &c
}

func copyBonuses(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Army is one side of the battle.
type Army struct {
	Units  []*Unit
	Points int
}

// Alive returns the living units in roster order.
func (a *Army) Alive() []*Unit {
	if a == nil {
		return nil
	}
	out := make([]*Unit, 0, len(a.Units))
	for _, u := range a.Units {
		if u.IsAlive() {
			out = append(out, u)
		}
	}
	return out
}

// Defeated reports whether the army has no living unit left.
func (a *Army) Defeated() bool {
	return len(a.Alive()) == 0
}
