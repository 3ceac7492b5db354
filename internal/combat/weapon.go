package combat

import "strings"

// Weapon is what a defender carries into the fight.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponStick
	WeaponStone
	WeaponKnife
)

// armoury is the order weapons are handed out along the roster.
var armoury = []Weapon{WeaponStick, WeaponStone, WeaponKnife, WeaponNone}

// ParseWeapon maps a config name to a Weapon. Unknown names fight bare-handed.
func ParseWeapon(name string) Weapon {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stick":
		return WeaponStick
	case "stone":
		return WeaponStone
	case "knife":
		return WeaponKnife
	default:
		return WeaponNone
	}
}

func (w Weapon) String() string {
	switch w {
	case WeaponStick:
		return "stick"
	case WeaponStone:
		return "stone"
	case WeaponKnife:
		return "knife"
	default:
		return "none"
	}
}

// strengthMul scales the base strength.
func (w Weapon) strengthMul() float64 {
	switch w {
	case WeaponStick:
		return 1.25
	case WeaponStone:
		return 0.75
	case WeaponKnife:
		return 1.5
	default:
		return 1.0
	}
}

func (w Weapon) critChance() float64 {
	switch w {
	case WeaponKnife:
		return 0.15
	default:
		return 0.02
	}
}

// Loadout expands a weapon→count distribution into roster order. Positions
// past the end of the loadout fight bare-handed.
func Loadout(dist map[string]int) []Weapon {
	counts := map[Weapon]int{}
	for name, n := range dist {
		if n > 0 {
			counts[ParseWeapon(name)] += n
		}
	}
	var out []Weapon
	for _, w := range armoury {
		for i := 0; i < counts[w]; i++ {
			out = append(out, w)
		}
	}
	return out
}
