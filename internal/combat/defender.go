package combat

import (
	"beastsim/internal/config"
	"beastsim/internal/util"
)

// Defender is one member of the roster facing the beast.
type Defender struct {
	ID         int
	Weapon     Weapon
	Health     float64
	Strength   float64
	CritChance float64
	alive      bool
}

func NewDefender(w Weapon, rules config.Rules) *Defender {
	return &Defender{
		Weapon:     w,
		Health:     rules.DefenderHealth,
		Strength:   rules.BaseStrength * w.strengthMul(),
		CritChance: w.critChance(),
		alive:      true,
	}
}

// NewRoster builds n defenders, arming them from loadout in order.
func NewRoster(n int, loadout []Weapon, rules config.Rules) []*Defender {
	roster := make([]*Defender, n)
	for i := range roster {
		w := WeaponNone
		if i < len(loadout) {
			w = loadout[i]
		}
		roster[i] = NewDefender(w, rules)
		roster[i].ID = i
	}
	return roster
}

func (d *Defender) Alive() bool { return d.alive }

// Attack returns the damage of one blow, doubled on a critical hit. The dead
// deal nothing and draw nothing.
func (d *Defender) Attack(rng util.Source) float64 {
	if !d.alive {
		return 0
	}
	dmg := d.Strength
	if rng.Float64() < d.CritChance {
		dmg *= 2
	}
	return dmg
}

// ReceiveDamage reports whether this blow killed the defender. Blows landing
// on a corpse are ignored.
func (d *Defender) ReceiveDamage(amount float64) bool {
	if !d.alive || amount <= 0 {
		return false
	}
	d.Health -= amount
	if d.Health <= 0 {
		d.alive = false
		return true
	}
	return false
}

func aliveOf(roster []*Defender) []*Defender {
	out := make([]*Defender, 0, len(roster))
	for _, d := range roster {
		if d.alive {
			out = append(out, d)
		}
	}
	return out
}

func anyAlive(roster []*Defender) bool {
	for _, d := range roster {
		if d.alive {
			return true
		}
	}
	return false
}
