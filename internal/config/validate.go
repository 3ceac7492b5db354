package config

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoDefenders indicates the roster is empty.
	ErrNoDefenders = errors.New("num_defenders must be at least 1")
	// ErrTooManyWeapons indicates more armed defenders than the roster holds.
	ErrTooManyWeapons = errors.New("weapon counts exceed num_defenders")
	// ErrUnknownWeapon indicates a weapon name outside none/stick/stone/knife.
	ErrUnknownWeapon = errors.New("unknown weapon")
	// ErrCoordination indicates coordination outside (0, 1].
	ErrCoordination = errors.New("coordination must be in (0, 1]")
	// ErrSimCount indicates a sweep with no trials.
	ErrSimCount = errors.New("sim_count must be at least 1")
)

var knownWeapons = map[string]bool{"none": true, "stick": true, "stone": true, "knife": true}

// Validate rejects scenarios the simulator does not define behaviour for.
func (s Scenario) Validate() error {
	if s.NumDefenders < 1 {
		return ErrNoDefenders
	}
	names := make([]string, 0, len(s.Weapons))
	for name := range s.Weapons {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !knownWeapons[name] {
			return fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
		}
		if s.Weapons[name] < 0 {
			return fmt.Errorf("weapon %q: count must be non-negative, got %d", name, s.Weapons[name])
		}
	}
	if armed := s.Armed(); armed > s.NumDefenders {
		return fmt.Errorf("%w: %d armed, %d defenders", ErrTooManyWeapons, armed, s.NumDefenders)
	}
	if s.Coordination <= 0 || s.Coordination > 1 {
		return fmt.Errorf("%w, got %v", ErrCoordination, s.Coordination)
	}
	if s.SimCount < 1 {
		return ErrSimCount
	}
	if s.MaxRounds < 1 {
		return fmt.Errorf("max_rounds must be at least 1, got %d", s.MaxRounds)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	return s.Rules.validate()
}

func (r Rules) validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"defender_health", r.DefenderHealth},
		{"base_strength", r.BaseStrength},
		{"beast_health", r.BeastHealth},
		{"beast_strength", r.BeastStrength},
		{"enraged_aggression", r.EnragedAggression},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("rules.%s must be positive, got %v", p.name, p.v)
		}
	}
	if r.StaminaDrain < 0 {
		return fmt.Errorf("rules.stamina_drain must be non-negative, got %v", r.StaminaDrain)
	}
	if r.ExhaustionDecay <= 0 || r.ExhaustionDecay > 1 {
		return fmt.Errorf("rules.exhaustion_decay must be in (0, 1], got %v", r.ExhaustionDecay)
	}
	if r.FalterCoordination <= 0 || r.FalterCoordination > 1 {
		return fmt.Errorf("rules.falter_coordination must be in (0, 1], got %v", r.FalterCoordination)
	}
	if r.AmbushStrikes < 0 || r.MaxStrikes < 0 {
		return fmt.Errorf("rules strike counts must be non-negative")
	}
	return nil
}
