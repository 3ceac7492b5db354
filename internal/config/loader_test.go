package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario_DefaultsWithoutFile(t *testing.T) {
	sc, err := LoadScenario("")
	require.NoError(t, err)
	assert.Equal(t, 100, sc.NumDefenders)
	assert.Equal(t, 0.6, sc.Coordination)
	assert.Equal(t, 300, sc.SimCount)
	assert.Equal(t, DefaultRules(), sc.Rules)
	assert.NotNil(t, sc.Weapons)
}

func TestLoadScenario_FileOverridesDefaults(t *testing.T) {
	path := writeScenario(t, `
num_defenders: 40
coordination: 0.9
sim_count: 50
weapons:
  stick: 10
  knife: 5
rules:
  beast_health: 500
`)
	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 40, sc.NumDefenders)
	assert.Equal(t, 0.9, sc.Coordination)
	assert.Equal(t, 50, sc.SimCount)
	assert.Equal(t, map[string]int{"stick": 10, "knife": 5}, sc.Weapons)
	assert.Equal(t, 500.0, sc.Rules.BeastHealth)
	// untouched rules keep their defaults
	assert.Equal(t, 100.0, sc.Rules.BeastStrength)
	assert.Equal(t, 12345, int(sc.Seed))
}

func TestLoadScenario_EnvOverridesFile(t *testing.T) {
	path := writeScenario(t, "num_defenders: 40\nsim_count: 50\n")
	t.Setenv("BEASTSIM_SIM_COUNT", "7")
	t.Setenv("BEASTSIM_WEAPONS", "stone:3,knife:2")
	t.Setenv("BEASTSIM_RULES_STARTING_MORALE", "60")

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 40, sc.NumDefenders)
	assert.Equal(t, 7, sc.SimCount)
	assert.Equal(t, map[string]int{"stone": 3, "knife": 2}, sc.Weapons)
	assert.Equal(t, 60.0, sc.Rules.StartingMorale)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadScenario_BadYAML(t *testing.T) {
	path := writeScenario(t, "num_defenders: [1, 2\n")
	_, err := LoadScenario(path)
	require.Error(t, err)
}
