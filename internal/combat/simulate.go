package combat

import (
	"encoding/json"
	"errors"
	"fmt"

	"beastsim/internal/config"
	"beastsim/internal/util"
)

// ErrRoundLimit reports a trial that was still going after Env.MaxRounds.
var ErrRoundLimit = errors.New("round limit exceeded")

const defaultMaxRounds = 10000

type trialStage int

const (
	stageInit trialStage = iota
	stageRound
	stageTerminal
)

// Env carries what a trial needs besides its combatants.
type Env struct {
	Rng       util.Source
	Rules     config.Rules
	MaxRounds int
	Record    bool
}

// Trial is the state of one fight. Coordination starts at the configured
// value and only ever shrinks as the roster falters.
type Trial struct {
	env    *Env
	roster []*Defender
	beast  *Beast
	stage  trialStage

	morale       float64
	casualties   int
	coordination float64
	round        int
	exhausted    bool

	rec TrialRecord
}

func newTrial(env *Env, roster []*Defender, coordination float64) *Trial {
	t := &Trial{
		env:          env,
		roster:       roster,
		coordination: coordination,
		morale:       env.Rules.StartingMorale,
	}
	t.beast = NewBeast(env.Rules, t.emit)
	return t
}

func (t *Trial) emit(ev Event) {
	if !t.env.Record {
		return
	}
	ev.Round = t.round
	t.rec.Events = append(t.rec.Events, ev)
}

// RunSingle fights one trial to the end.
func RunSingle(env *Env, roster []*Defender, coordination float64) (TrialRecord, error) {
	t := newTrial(env, roster, coordination)
	for t.stage != stageTerminal {
		if err := t.step(); err != nil {
			return t.rec, err
		}
	}
	return t.rec, nil
}

func (t *Trial) step() error {
	switch t.stage {
	case stageInit:
		t.ambush()
		t.stage = stageRound
	case stageRound:
		if !anyAlive(t.roster) || t.beast.Health <= 0 {
			t.finish()
			return nil
		}
		limit := t.env.MaxRounds
		if limit <= 0 {
			limit = defaultMaxRounds
		}
		if t.round >= limit {
			t.finish()
			return fmt.Errorf("%w: %d rounds", ErrRoundLimit, limit)
		}
		t.playRound()
	}
	return nil
}

func (t *Trial) ambush() {
	kills := t.beast.Attack(t.roster, true, t.env.Rng)
	t.casualties += kills
	t.morale -= float64(kills) * t.env.Rules.AmbushMoraleLoss
	t.emit(Event{Type: "Ambush", Payload: map[string]any{
		"kills": kills, "morale": t.morale,
	}})
}

func (t *Trial) playRound() {
	rules := t.env.Rules
	t.round++

	attackers := aliveOf(t.roster)
	n := min(int(float64(len(attackers))*t.coordination), len(attackers))
	total := 0.0
	for _, d := range attackers[:n] {
		total += d.Attack(t.env.Rng)
	}
	enraged := t.beast.ReceiveDamage(total)
	t.emit(Event{Type: "Volley", Payload: map[string]any{
		"attackers": n, "dmg": total, "beast_hp": t.beast.Health,
	}})
	if enraged {
		t.emit(Event{Type: "Enrage", Payload: map[string]any{
			"beast_hp": t.beast.Health, "aggression": t.beast.Aggression,
		}})
	}

	kills := t.beast.Attack(aliveOf(t.roster), false, t.env.Rng)
	t.casualties += kills
	t.morale -= float64(kills) * rules.RoundMoraleLoss

	t.regroup()

	if t.beast.Fatigue() && !t.exhausted {
		t.exhausted = true
		t.emit(Event{Type: "Exhausted", Payload: map[string]any{
			"stamina": t.beast.Stamina, "strength": t.beast.Strength,
		}})
	}

	t.rec.MoraleLog = append(t.rec.MoraleLog, max(t.morale, 0))
	t.rec.StaminaLog = append(t.rec.StaminaLog, max(t.beast.Stamina, 0))
	t.rec.AliveLog = append(t.rec.AliveLog, len(aliveOf(t.roster)))

	if t.morale <= 0 {
		t.emit(Event{Type: "Rout", Payload: map[string]any{"casualties": t.casualties}})
		t.finish()
	}
}

// regroup shrinks coordination while morale is low and losses are heavy.
// It compounds every round the condition holds.
func (t *Trial) regroup() {
	rules := t.env.Rules
	if t.morale < rules.FalterMorale && t.casualties > rules.FalterCasualties {
		t.coordination *= rules.FalterCoordination
		t.emit(Event{Type: "Falter", Payload: map[string]any{
			"morale": t.morale, "coordination": t.coordination,
		}})
	}
}

func (t *Trial) finish() {
	t.stage = stageTerminal
	t.rec.BeastHealth = t.beast.Health
	t.rec.Casualties = t.casualties
	t.rec.Rounds = t.round
	t.rec.BeastAlive = t.beast.Health > 0
	t.emit(Event{Type: "End", Payload: map[string]any{
		"beast_alive": t.rec.BeastAlive, "beast_hp": t.beast.Health, "casualties": t.casualties,
	}})
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
