package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/battlegrid/unit"
)

var (
	// ErrEmptyCatalog is returned when the catalogue lists no unit type.
	ErrEmptyCatalog = errors.New("config: catalogue has no units")
	// ErrBadUnit is returned for a catalogue entry with missing or invalid fields.
	ErrBadUnit = errors.New("config: invalid unit definition")
	// ErrUnknownType is returned when a scenario names a type missing from the catalogue.
	ErrUnknownType = errors.New("config: unknown unit type")
)

type CatalogConfig struct {
	Units []UnitDef `yaml:"units"`
}

type UnitDef struct {
	Type           string             `yaml:"type"`
	Health         int                `yaml:"health"`
	Attack         int                `yaml:"attack"`
	Cost           int                `yaml:"cost"`
	AttackType     string             `yaml:"attack_type"`
	AttackBonuses  map[string]float64 `yaml:"attack_bonuses"`
	DefenceBonuses map[string]float64 `yaml:"defence_bonuses"`
}

// Validate checks every definition and rejects duplicate types.
func (cc *CatalogConfig) Validate() error {
	if len(cc.Units) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(cc.Units))
	for i, d := range cc.Units {
		switch {
		case d.Type == "":
			return fmt.Errorf("%w: entry %d has no type", ErrBadUnit, i)
		case seen[d.Type]:
			return fmt.Errorf("%w: duplicate type %q", ErrBadUnit, d.Type)
		case d.Health <= 0 || d.Cost <= 0 || d.Attack < 0:
			return fmt.Errorf("%w: %s needs positive health and cost", ErrBadUnit, d.Type)
		}
		if _, err := parseAttackType(d.AttackType); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadUnit, d.Type, err)
		}
		seen[d.Type] = true
	}
	return nil
}

// Templates converts the catalogue into unit templates, in file order.
func (cc *CatalogConfig) Templates() []*unit.Unit {
	out := make([]*unit.Unit, 0, len(cc.Units))
	for _, d := range cc.Units {
		at, _ := parseAttackType(d.AttackType)
		out = append(out, &unit.Unit{
			Name:           d.Type,
			Type:           d.Type,
			Health:         d.Health,
			BaseAttack:     d.Attack,
			Cost:           d.Cost,
			AttackType:     at,
			AttackBonuses:  d.AttackBonuses,
			DefenceBonuses: d.DefenceBonuses,
		})
	}
	return out
}

// Template returns the template for typ.
func (cc *CatalogConfig) Template(typ string) (*unit.Unit, error) {
	for _, t := range cc.Templates() {
		if t.Type == typ {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
}

// parseAttackType accepts MELEE and RANGE; empty means melee.
func parseAttackType(s string) (unit.AttackType, error) {
	switch unit.AttackType(s) {
	case "", unit.Melee:
		return unit.Melee, nil
	case unit.Ranged:
		return unit.Ranged, nil
	default:
		return "", fmt.Errorf("unknown attack type %q", s)
	}
}
