package combat

import (
	"beastsim/internal/config"
	"beastsim/internal/util"
)

// Beast is the lone adversary. Health and Strength only ever go down.
type Beast struct {
	Health     float64
	Strength   float64
	Stamina    float64
	Aggression float64
	Enraged    bool

	rules config.Rules
	emit  func(Event)
}

func NewBeast(rules config.Rules, emit func(Event)) *Beast {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Beast{
		Health:     rules.BeastHealth,
		Strength:   rules.BeastStrength,
		Stamina:    rules.BeastStamina,
		Aggression: 1.0,
		rules:      rules,
		emit:       emit,
	}
}

// Attack strikes at pool and returns the number of fresh kills. Every strike
// picks from the whole pool, so it can land on someone already felled this
// turn; such a strike is wasted.
func (b *Beast) Attack(pool []*Defender, initial bool, rng util.Source) int {
	strikes := b.rules.AmbushStrikes
	if !initial {
		strikes = min(b.rules.MaxStrikes, len(pool))
	}
	if len(pool) == 0 {
		return 0
	}
	kills := 0
	dmg := b.Strength * b.Aggression
	for i := 0; i < strikes; i++ {
		target := pool[rng.Intn(len(pool))]
		if !target.Alive() {
			b.emit(Event{Type: "Strike", Payload: map[string]any{
				"target": target.ID, "wasted": true,
			}})
			continue
		}
		killed := target.ReceiveDamage(dmg)
		if killed {
			kills++
		}
		b.emit(Event{Type: "Strike", Payload: map[string]any{
			"target": target.ID, "weapon": target.Weapon.String(), "dmg": dmg,
			"hp": target.Health, "killed": killed,
		}})
	}
	return kills
}

// ReceiveDamage reports whether this blow pushed the beast into its rage.
// The rage never wears off.
func (b *Beast) ReceiveDamage(amount float64) bool {
	if amount > 0 {
		b.Health -= amount
	}
	if b.Health < b.rules.EnrageThreshold && !b.Enraged {
		b.Aggression = b.rules.EnragedAggression
		b.Enraged = true
		return true
	}
	return false
}

// Fatigue drains stamina for one round. Once stamina is below zero every
// further round also saps strength; it reports whether that happened.
func (b *Beast) Fatigue() bool {
	b.Stamina -= b.rules.StaminaDrain
	if b.Stamina < 0 {
		b.Strength *= b.rules.ExhaustionDecay
		return true
	}
	return false
}
