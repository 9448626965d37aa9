package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/battlegrid/gridgraph"
	"github.com/katalvlaran/battlegrid/unit"
)

var (
	// ErrOffField is returned for a placement outside the battlefield.
	ErrOffField = errors.New("config: unit placed outside the field")
	// ErrDuplicateName is returned when two placed units share a name.
	ErrDuplicateName = errors.New("config: duplicate unit name")
	// ErrCellTaken is returned when two living units share a cell.
	ErrCellTaken = errors.New("config: cell already occupied")
)

// ScenarioConfig describes a battle setup. An empty Computer list means the
// computer army is generated from MaxPoints.
type ScenarioConfig struct {
	Name      string         `yaml:"name"`
	MaxPoints int            `yaml:"max_points"`
	Player    []PlacementDef `yaml:"player"`
	Computer  []PlacementDef `yaml:"computer"`
}

// PlacementDef puts one catalogue unit on the field. Health, when set,
// overrides the catalogue value.
type PlacementDef struct {
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Health *int   `yaml:"health"`
}

// Armies builds both armies from the catalogue. The computer army is empty
// when the scenario does not place it.
func (sc *ScenarioConfig) Armies(cc *CatalogConfig) (player, computer *unit.Army, err error) {
	names := make(map[string]bool)
	cells := make(map[gridgraph.Cell]string)

	player, err = sc.army(cc, sc.Player, names, cells)
	if err != nil {
		return nil, nil, fmt.Errorf("player: %w", err)
	}
	computer, err = sc.army(cc, sc.Computer, names, cells)
	if err != nil {
		return nil, nil, fmt.Errorf("computer: %w", err)
	}
	return player, computer, nil
}

func (sc *ScenarioConfig) army(cc *CatalogConfig, defs []PlacementDef, names map[string]bool, cells map[gridgraph.Cell]string) (*unit.Army, error) {
	army := &unit.Army{Units: make([]*unit.Unit, 0, len(defs))}
	perType := make(map[string]int)
	for _, d := range defs {
		tmpl, err := cc.Template(d.Type)
		if err != nil {
			return nil, err
		}
		perType[d.Type]++
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("%s %d", d.Type, perType[d.Type])
		}
		if names[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		c := gridgraph.Cell{X: d.X, Y: d.Y}
		if !c.InBounds() {
			return nil, fmt.Errorf("%w: %s at (%d,%d)", ErrOffField, name, d.X, d.Y)
		}

		u := tmpl.Clone(name)
		u.MoveTo(d.X, d.Y)
		if d.Health != nil {
			u.Health = *d.Health
		}
		if u.IsAlive() {
			if other, ok := cells[c]; ok {
				return nil, fmt.Errorf("%w: %s and %s at (%d,%d)", ErrCellTaken, other, name, d.X, d.Y)
			}
			cells[c] = name
		}
		names[name] = true
		army.Units = append(army.Units, u)
		army.Points += u.Cost
	}
	return army, nil
}

// Find returns the placed unit called name from either army.
func Find(name string, armies ...*unit.Army) (*unit.Unit, bool) {
	for _, a := range armies {
		if a == nil {
			continue
		}
		for _, u := range a.Units {
			if u.Name == name {
				return u, true
			}
		}
	}
	return nil, false
}
