// Package report aggregates trial records into sweep statistics.
package report

import (
	"sort"

	"beastsim/internal/combat"
)

// RoundMean is the average state at one round, taken over the trials that
// were still fighting when it was played.
type RoundMean struct {
	Round   int     `json:"round"`
	Active  int     `json:"active"`
	Morale  float64 `json:"morale"`
	Stamina float64 `json:"stamina"`
	Alive   float64 `json:"alive"`
}

// Bucket counts trials that ended with a given number of casualties.
type Bucket struct {
	Casualties int `json:"casualties"`
	Trials     int `json:"trials"`
}

type Summary struct {
	Runs          int         `json:"runs"`
	BeastWins     int         `json:"beast_wins"`
	DefenderWins  int         `json:"defender_wins"`
	WinRate       float64     `json:"win_rate"`
	AvgCasualties float64     `json:"avg_casualties"`
	MinCasualties int         `json:"min_casualties"`
	MaxCasualties int         `json:"max_casualties"`
	AvgRounds     float64     `json:"avg_rounds"`
	MaxRounds     int         `json:"max_rounds"`
	Casualties    []Bucket    `json:"casualty_histogram"`
	PerRound      []RoundMean `json:"per_round"`
}

// Summarize folds records into a Summary. WinRate is the share of trials the
// beast survived.
func Summarize(records []combat.TrialRecord) Summary {
	s := Summary{Runs: len(records)}
	if len(records) == 0 {
		return s
	}
	hist := map[int]int{}
	sumCas, sumRounds := 0, 0
	s.MinCasualties = records[0].Casualties
	for _, r := range records {
		if r.BeastAlive {
			s.BeastWins++
		}
		sumCas += r.Casualties
		sumRounds += r.Rounds
		hist[r.Casualties]++
		s.MinCasualties = min(s.MinCasualties, r.Casualties)
		s.MaxCasualties = max(s.MaxCasualties, r.Casualties)
		s.MaxRounds = max(s.MaxRounds, r.Rounds)
	}
	n := float64(len(records))
	s.DefenderWins = s.Runs - s.BeastWins
	s.WinRate = float64(s.BeastWins) / n
	s.AvgCasualties = float64(sumCas) / n
	s.AvgRounds = float64(sumRounds) / n

	for c, k := range hist {
		s.Casualties = append(s.Casualties, Bucket{Casualties: c, Trials: k})
	}
	sort.Slice(s.Casualties, func(i, j int) bool {
		return s.Casualties[i].Casualties < s.Casualties[j].Casualties
	})

	s.PerRound = make([]RoundMean, s.MaxRounds)
	for i := range s.PerRound {
		s.PerRound[i].Round = i + 1
	}
	for _, r := range records {
		for i := 0; i < r.Rounds; i++ {
			m := &s.PerRound[i]
			m.Active++
			m.Morale += r.MoraleLog[i]
			m.Stamina += r.StaminaLog[i]
			m.Alive += float64(r.AliveLog[i])
		}
	}
	for i := range s.PerRound {
		m := &s.PerRound[i]
		if m.Active == 0 {
			continue
		}
		k := float64(m.Active)
		m.Morale /= k
		m.Stamina /= k
		m.Alive /= k
	}
	return s
}
