package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/battlegrid/unit"
)

func TestTakeDamage(t *testing.T) {
	u := &unit.Unit{Health: 50}

	assert.False(t, u.TakeDamage(20))
	assert.Equal(t, 30, u.Health)
	assert.True(t, u.IsAlive())

	assert.False(t, u.TakeDamage(-5), "negative damage heals nothing")
	assert.Equal(t, 30, u.Health)

	assert.True(t, u.TakeDamage(100))
	assert.Equal(t, 0, u.Health)
	assert.False(t, u.IsAlive())
}

func TestClone(t *testing.T) {
	tmpl := &unit.Unit{
		Name: "Knight", Type: "Knight", Health: 100, BaseAttack: 30, Cost: 25,
		AttackType:    unit.Melee,
		AttackBonuses: map[string]float64{"Archer": 1.5},
		X:             4, Y: 7,
	}

	c := tmpl.Clone("Knight 1")
	require.NotSame(t, tmpl, c)
	assert.Equal(t, "Knight 1", c.Name)
	assert.Equal(t, tmpl.Health, c.Health)
	assert.Zero(t, c.X)
	assert.Zero(t, c.Y)
	assert.Nil(t, c.DefenceBonuses)

	c.AttackBonuses["Archer"] = 9
	assert.Equal(t, 1.5, tmpl.AttackBonuses["Archer"], "bonus maps are not shared")
}

func TestArmy(t *testing.T) {
	a, b := &unit.Unit{Name: "a", Health: 1}, &unit.Unit{Name: "b"}
	army := &unit.Army{Units: []*unit.Unit{b, a}}

	assert.Equal(t, []*unit.Unit{a}, army.Alive())
	assert.False(t, army.Defeated())

	a.TakeDamage(1)
	assert.True(t, army.Defeated())

	var none *unit.Army
	assert.Nil(t, none.Alive())
	assert.True(t, none.Defeated())
	assert.True(t, (&unit.Army{}).Defeated())
}

func TestPosition(t *testing.T) {
	u := &unit.Unit{}
	u.MoveTo(3, 9)
	x, y := u.Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, 9, y)
}
