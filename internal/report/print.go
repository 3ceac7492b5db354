package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultRows is how many rounds the round table shows by default.
const DefaultRows = 10

// Fprint writes a human-readable summary and the first rows of the round
// table to w. rows <= 0 means DefaultRows.
func Fprint(w io.Writer, s Summary, rows int) error {
	return FprintLang(w, s, rows, language.English)
}

// FprintLang is Fprint with numbers formatted for tag.
func FprintLang(w io.Writer, s Summary, rows int, tag language.Tag) error {
	if rows <= 0 {
		rows = DefaultRows
	}
	p := message.NewPrinter(tag)
	lines := []struct {
		format string
		args   []any
	}{
		{"====== Sweep Result ======\n", nil},
		{"Trials:          %d\n", []any{s.Runs}},
		{"Beast wins:      %d (%.2f%%)\n", []any{s.BeastWins, 100 * s.WinRate}},
		{"Defender wins:   %d (%.2f%%)\n", []any{s.DefenderWins, 100 * (1 - s.WinRate)}},
		{"Casualties:      avg %.2f, min %d, max %d\n", []any{s.AvgCasualties, s.MinCasualties, s.MaxCasualties}},
		{"Rounds:          avg %.2f, max %d\n", []any{s.AvgRounds, s.MaxRounds}},
		{"\n%5s %7s %8s %8s %8s\n", []any{"Round", "Active", "Morale", "Stamina", "Alive"}},
	}
	for _, l := range lines {
		if _, err := p.Fprintf(w, l.format, l.args...); err != nil {
			return err
		}
	}
	for i, m := range s.PerRound {
		if i >= rows {
			break
		}
		if _, err := p.Fprintf(w, "%5d %7d %8.2f %8.2f %8.2f\n", m.Round, m.Active, m.Morale, m.Stamina, m.Alive); err != nil {
			return err
		}
	}
	return nil
}
