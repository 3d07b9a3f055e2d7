// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// Upper bounds for definition files. Both comfortably exceed anything a board can use.
const (
	MaxMovement = 256
	MaxRange    = 64
)

// LoadUnitDefinitions reads a unit definitions file. Kinds missing from the file keep
// their built-in definitions.
func LoadUnitDefinitions(path string) (UnitLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	return ParseUnitDefinitions(file)
}

// ParseUnitDefinitions decodes a JSON array of unit definitions on top of DefaultUnits.
func ParseUnitDefinitions(data []byte) (UnitLibrary, error) {
	var unitDefs []UnitDefinition
	if err := json.Unmarshal(data, &unitDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	library := DefaultUnits()
	for _, def := range unitDefs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		library[def.ID] = def
	}
	return library, nil
}

func (d UnitDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("unit definition without id")
	case d.MaxHealth <= 0:
		return fmt.Errorf("unit %s: max_health must be positive, got %d", d.ID, d.MaxHealth)
	case d.Movement < 0 || d.Range < 0:
		return fmt.Errorf("unit %s: movement and range must not be negative", d.ID)
	case d.Movement > MaxMovement:
		return fmt.Errorf("unit %s: movement %d exceeds %d", d.ID, d.Movement, MaxMovement)
	case d.Range > MaxRange:
		return fmt.Errorf("unit %s: range %d exceeds %d", d.ID, d.Range, MaxRange)
	}
	return nil
}
