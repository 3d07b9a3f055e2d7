package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hex-tactics/internal/component"
)

func TestDefaultUnits(t *testing.T) {
	units := DefaultUnits()
	require.Len(t, units, 3)

	inf := units[component.Infantry].Stats()
	assert.Equal(t, component.UnitStats{Kind: component.Infantry, MaxHealth: 10, Attack: 3, Defense: 2, Movement: 2, Range: 1}, inf)
	assert.Equal(t, 2, units[component.Archer].Range)
	assert.Equal(t, 4, units[component.Cavalry].Movement)
}

func TestParseUnitDefinitionsOverrides(t *testing.T) {
	data := []byte(`[{"id":"ARCHER","name":"Longbow","max_health":6,"attack":5,"defense":0,"movement":1,"range":3}]`)
	units, err := ParseUnitDefinitions(data)
	require.NoError(t, err)

	assert.Equal(t, "Longbow", units[component.Archer].Name)
	assert.Equal(t, 3, units[component.Archer].Range)
	assert.Equal(t, 10, units[component.Infantry].MaxHealth, "untouched kinds keep defaults")
}

func TestParseUnitDefinitionsErrors(t *testing.T) {
	_, err := ParseUnitDefinitions([]byte(`{not json`))
	assert.ErrorContains(t, err, "failed to unmarshal")

	_, err = ParseUnitDefinitions([]byte(`[{"id":"INFANTRY","max_health":0}]`))
	assert.ErrorContains(t, err, "max_health")

	_, err = ParseUnitDefinitions([]byte(`[{"max_health":3}]`))
	assert.ErrorContains(t, err, "without id")

	_, err = ParseUnitDefinitions([]byte(`[{"id":"ARCHER","max_health":8,"attack":4,"defense":1,"movement":2,"range":2000000000}]`))
	assert.ErrorContains(t, err, "range 2000000000 exceeds")

	_, err = ParseUnitDefinitions([]byte(`[{"id":"CAVALRY","max_health":12,"movement":1000000}]`))
	assert.ErrorContains(t, err, "movement 1000000 exceeds")

	units, err := ParseUnitDefinitions([]byte(`[{"id":"ARCHER","max_health":8,"range":64,"movement":256}]`))
	require.NoError(t, err)
	assert.Equal(t, MaxRange, units[component.Archer].Range)
}

func TestLoadUnitDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"CAVALRY","max_health":15,"attack":6,"defense":2,"movement":5,"range":1}]`), 0o644))

	units, err := LoadUnitDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 15, units[component.Cavalry].MaxHealth)

	_, err = LoadUnitDefinitions(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read")
}
