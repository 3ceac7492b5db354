package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces the environment overrides, e.g. BEASTSIM_SIM_COUNT or
// BEASTSIM_RULES_BEAST_HEALTH.
const EnvPrefix = "BEASTSIM_"

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenario starts from Default, overlays the YAML file at path (skipped
// when path is empty) and then any BEASTSIM_* environment variables.
func LoadScenario(path string) (*Scenario, error) {
	sc := Default()
	if path != "" {
		if err := loadYAML(path, &sc); err != nil {
			return nil, fmt.Errorf("load scenario %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&sc, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if sc.Weapons == nil {
		sc.Weapons = map[string]int{}
	}
	return &sc, nil
}
