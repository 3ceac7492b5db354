package config

// Scenario is one Monte Carlo sweep: the roster, how it fights and how many
// times to replay it.
type Scenario struct {
	NumDefenders int            `yaml:"num_defenders" env:"NUM_DEFENDERS"`
	Weapons      map[string]int `yaml:"weapons" env:"WEAPONS"`
	Coordination float64        `yaml:"coordination" env:"COORDINATION"`
	SimCount     int            `yaml:"sim_count" env:"SIM_COUNT"`
	Seed         int64          `yaml:"seed" env:"SEED"`
	Workers      int            `yaml:"workers" env:"WORKERS"`
	MaxRounds    int            `yaml:"max_rounds" env:"MAX_ROUNDS"`
	Note         string         `yaml:"note"`
	Rules        Rules          `yaml:"rules" envPrefix:"RULES_"`
}

// Rules holds the combat constants. Zero values are never valid; start from
// DefaultRules.
type Rules struct {
	DefenderHealth float64 `yaml:"defender_health" env:"DEFENDER_HEALTH"`
	BaseStrength   float64 `yaml:"base_strength" env:"BASE_STRENGTH"`

	BeastHealth       float64 `yaml:"beast_health" env:"BEAST_HEALTH"`
	BeastStrength     float64 `yaml:"beast_strength" env:"BEAST_STRENGTH"`
	BeastStamina      float64 `yaml:"beast_stamina" env:"BEAST_STAMINA"`
	StaminaDrain      float64 `yaml:"stamina_drain" env:"STAMINA_DRAIN"`
	ExhaustionDecay   float64 `yaml:"exhaustion_decay" env:"EXHAUSTION_DECAY"`
	EnrageThreshold   float64 `yaml:"enrage_threshold" env:"ENRAGE_THRESHOLD"`
	EnragedAggression float64 `yaml:"enraged_aggression" env:"ENRAGED_AGGRESSION"`
	AmbushStrikes     int     `yaml:"ambush_strikes" env:"AMBUSH_STRIKES"`
	MaxStrikes        int     `yaml:"max_strikes" env:"MAX_STRIKES"`

	StartingMorale     float64 `yaml:"starting_morale" env:"STARTING_MORALE"`
	AmbushMoraleLoss   float64 `yaml:"ambush_morale_loss" env:"AMBUSH_MORALE_LOSS"`
	RoundMoraleLoss    float64 `yaml:"round_morale_loss" env:"ROUND_MORALE_LOSS"`
	FalterMorale       float64 `yaml:"falter_morale" env:"FALTER_MORALE"`
	FalterCasualties   int     `yaml:"falter_casualties" env:"FALTER_CASUALTIES"`
	FalterCoordination float64 `yaml:"falter_coordination" env:"FALTER_COORDINATION"`
}

func DefaultRules() Rules {
	return Rules{
		DefenderHealth: 10,
		BaseStrength:   6,

		BeastHealth:       1000,
		BeastStrength:     100,
		BeastStamina:      100,
		StaminaDrain:      2,
		ExhaustionDecay:   0.95,
		EnrageThreshold:   25,
		EnragedAggression: 1.5,
		AmbushStrikes:     3,
		MaxStrikes:        3,

		StartingMorale:     80,
		AmbushMoraleLoss:   5,
		RoundMoraleLoss:    2,
		FalterMorale:       30,
		FalterCasualties:   5,
		FalterCoordination: 0.8,
	}
}

// Default returns the scenario used when no file is given.
func Default() Scenario {
	return Scenario{
		NumDefenders: 100,
		Weapons:      map[string]int{},
		Coordination: 0.6,
		SimCount:     300,
		Seed:         12345,
		Workers:      8,
		MaxRounds:    10000,
		Rules:        DefaultRules(),
	}
}

// Armed returns how many defenders carry something other than bare hands.
func (s Scenario) Armed() int {
	n := 0
	for name, count := range s.Weapons {
		if name == "none" {
			continue
		}
		n += count
	}
	return n
}
