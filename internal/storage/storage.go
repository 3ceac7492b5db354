// Package storage defines how finished sweeps are persisted.
package storage

import (
	"context"
	"time"

	"beastsim/internal/combat"
)

// Sweep describes one persisted Monte Carlo sweep.
type Sweep struct {
	ID           int64
	NumDefenders int
	Weapons      map[string]int
	Coordination float64
	SimCount     int
	Seed         int64
	BeastWins    int
	CreatedAt    time.Time
}

// SweepStore persists sweeps and their trial records.
type SweepStore interface {
	SaveSweep(ctx context.Context, sweep Sweep, records []combat.TrialRecord) (int64, error)
	ListSweeps(ctx context.Context, limit int) ([]Sweep, error)
	ListTrials(ctx context.Context, sweepID int64) ([]combat.TrialRecord, error)
}
