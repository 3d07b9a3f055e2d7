// internal/defs/units.go
package defs

import "hex-tactics/internal/component"

// UnitDefinition holds the static data for a specific type of unit.
type UnitDefinition struct {
	ID        component.UnitKind `json:"id"`
	Name      string             `json:"name"`
	MaxHealth int                `json:"max_health"`
	Attack    int                `json:"attack"`
	Defense   int                `json:"defense"`
	Movement  int                `json:"movement"`
	Range     int                `json:"range"`
}

// Stats converts the definition into the component attached to a unit.
func (d UnitDefinition) Stats() component.UnitStats {
	return component.UnitStats{
		Kind:      d.ID,
		MaxHealth: d.MaxHealth,
		Attack:    d.Attack,
		Defense:   d.Defense,
		Movement:  d.Movement,
		Range:     d.Range,
	}
}

// UnitLibrary maps unit kinds to their definitions.
type UnitLibrary map[component.UnitKind]UnitDefinition

// DefaultUnits is the built-in library used when no definitions file is given.
func DefaultUnits() UnitLibrary {
	return UnitLibrary{
		component.Infantry: {ID: component.Infantry, Name: "Infantry", MaxHealth: 10, Attack: 3, Defense: 2, Movement: 2, Range: 1},
		component.Archer:   {ID: component.Archer, Name: "Archer", MaxHealth: 8, Attack: 4, Defense: 1, Movement: 2, Range: 2},
		component.Cavalry:  {ID: component.Cavalry, Name: "Cavalry", MaxHealth: 12, Attack: 5, Defense: 1, Movement: 4, Range: 1},
	}
}
