package preset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/battlegrid/gridgraph"
	"github.com/katalvlaran/battlegrid/internal/rng"
	"github.com/katalvlaran/battlegrid/preset"
	"github.com/katalvlaran/battlegrid/unit"
)

// catalog mirrors the four classic unit types.
func catalog() []*unit.Unit {
	return []*unit.Unit{
		{Type: "Archer", Health: 50, BaseAttack: 20, Cost: 10, AttackType: unit.Ranged},   // 7.0
		{Type: "Knight", Health: 100, BaseAttack: 30, Cost: 25, AttackType: unit.Melee},   // 5.2
		{Type: "Pikeman", Health: 75, BaseAttack: 30, Cost: 15, AttackType: unit.Melee},   // 7.0
		{Type: "Swordsman", Health: 60, BaseAttack: 25, Cost: 20, AttackType: unit.Melee}, // 4.25
	}
}

func TestRank(t *testing.T) {
	ranked := preset.Rank(catalog())
	var types []string
	for _, u := range ranked {
		types = append(types, u.Type)
	}
	assert.Equal(t, []string{"Archer", "Pikeman", "Knight", "Swordsman"}, types, "stable on ties")
}

func TestGenerate_Budget(t *testing.T) {
	cat := catalog()
	army, err := preset.Generate(cat, 1500, preset.WithRand(rng.New(7)))
	require.NoError(t, err)

	perType := map[string]int{}
	sum := 0
	for _, u := range army.Units {
		perType[u.Type]++
		sum += u.Cost
	}
	assert.Equal(t, sum, army.Points)
	assert.LessOrEqual(t, army.Points, 1500)
	for typ, n := range perType {
		assert.LessOrEqual(t, n, preset.DefaultMaxPerType, typ)
	}
	// 11 archers (110) + 11 pikemen (165) + 11 knights (275) + 11 swordsmen (220)
	assert.Equal(t, 770, army.Points)
	assert.Len(t, army.Units, 44)

	// the catalogue is untouched
	assert.Equal(t, "Archer", cat[0].Type)
	assert.Empty(t, cat[0].Name)
}

func TestGenerate_GreedyOrder(t *testing.T) {
	army, err := preset.Generate(catalog(), 150)
	require.NoError(t, err)

	// 11 archers cost 110; the remaining 40 buy two pikemen.
	require.Len(t, army.Units, 13)
	assert.Equal(t, "Archer 1", army.Units[0].Name)
	assert.Equal(t, "Archer 11", army.Units[10].Name)
	assert.Equal(t, "Pikeman 2", army.Units[12].Name)
	assert.Equal(t, 140, army.Points)
}

func TestGenerate_Placement(t *testing.T) {
	for _, side := range []preset.Side{preset.Left, preset.Right} {
		army, err := preset.Generate(catalog(), 1500, preset.WithSide(side), preset.WithRand(rng.New(3)))
		require.NoError(t, err)

		seen := map[gridgraph.Cell]bool{}
		for _, u := range army.Units {
			c := gridgraph.Cell{X: u.X, Y: u.Y}
			require.True(t, c.InBounds())
			require.False(t, seen[c], "cell %v used twice", c)
			seen[c] = true
			if side == preset.Left {
				assert.Less(t, u.X, preset.Columns)
			} else {
				assert.GreaterOrEqual(t, u.X, gridgraph.Width-preset.Columns)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := preset.Generate(catalog(), 500, preset.WithRand(rng.New(11)))
	require.NoError(t, err)
	b, err := preset.Generate(catalog(), 500, preset.WithRand(rng.New(11)))
	require.NoError(t, err)
	require.Equal(t, len(a.Units), len(b.Units))
	for i := range a.Units {
		assert.Equal(t, a.Units[i].X, b.Units[i].X)
		assert.Equal(t, a.Units[i].Y, b.Units[i].Y)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := preset.Generate(catalog(), -1)
	assert.ErrorIs(t, err, preset.ErrNegativeBudget)

	_, err = preset.Generate([]*unit.Unit{{Type: "Free", Cost: 0}}, 10)
	assert.ErrorIs(t, err, preset.ErrBadCost)

	_, err = preset.Generate(catalog(), 10, preset.WithMaxPerType(0))
	assert.ErrorIs(t, err, preset.ErrOptionViolation)

	cheap := []*unit.Unit{{Type: "Militia", Health: 1, BaseAttack: 1, Cost: 1}}
	_, err = preset.Generate(cheap, 100, preset.WithMaxPerType(100))
	assert.ErrorIs(t, err, preset.ErrFieldFull)
}

func TestGenerate_EmptyBudget(t *testing.T) {
	army, err := preset.Generate(catalog(), 0)
	require.NoError(t, err)
	assert.Empty(t, army.Units)
	assert.Zero(t, army.Points)
}
