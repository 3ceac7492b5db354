package combat

import (
	"beastsim/internal/config"
)

// scriptSource replays fixed draws in order and cycles when exhausted.
// An empty script panics on draw, which catches unexpected randomness.
type scriptSource struct {
	floats []float64
	ints   []int
	nFloat int
	nInt   int
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		panic("unexpected Float64 draw")
	}
	v := s.floats[s.nFloat%len(s.floats)]
	s.nFloat++
	return v
}

func (s *scriptSource) Intn(n int) int {
	if len(s.ints) == 0 {
		panic("unexpected Intn draw")
	}
	v := s.ints[s.nInt%len(s.ints)]
	s.nInt++
	return v % n
}

func testScenario() *config.Scenario {
	sc := config.Default()
	sc.NumDefenders = 30
	sc.SimCount = 20
	sc.Weapons = map[string]int{"stick": 5, "stone": 5, "knife": 5}
	return &sc
}
