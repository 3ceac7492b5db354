package combat

// Event is one entry of a recorded trial. Round 0 is the ambush.
type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// TrialRecord is the outcome of one trial.
type TrialRecord struct {
	BeastHealth float64   `json:"beast_health"`
	Casualties  int       `json:"casualties"`
	Rounds      int       `json:"rounds"`
	BeastAlive  bool      `json:"beast_alive"`
	MoraleLog   []float64 `json:"morale_log"`
	StaminaLog  []float64 `json:"stamina_log"`
	AliveLog    []int     `json:"alive_log"`
	Events      []Event   `json:"events,omitempty"`
}
