package combat

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"beastsim/internal/config"
	"beastsim/internal/util"
)

// PlayTrial runs trial i of the sweep described by sc on its own seeded
// random stream, with a fresh roster and beast.
func PlayTrial(sc *config.Scenario, i int, record bool) (TrialRecord, error) {
	env := &Env{
		Rng:       util.New(util.TrialSeed(sc.Seed, i)),
		Rules:     sc.Rules,
		MaxRounds: sc.MaxRounds,
		Record:    record,
	}
	roster := NewRoster(sc.NumDefenders, Loadout(sc.Weapons), sc.Rules)
	return RunSingle(env, roster, sc.Coordination)
}

// Run plays sc.SimCount independent trials across a bounded pool of workers
// and returns the records in trial order. Records depend only on sc, never
// on the worker count or scheduling.
//
// Cancelling ctx stops new trials from being dispatched; trials already
// running finish, and the records of every dispatched trial are returned
// together with the context error.
func Run(ctx context.Context, sc *config.Scenario, logger *zap.Logger) ([]TrialRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := sc.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger.Info("sweep started",
		zap.Int("trials", sc.SimCount),
		zap.Int("defenders", sc.NumDefenders),
		zap.Float64("coordination", sc.Coordination),
		zap.Int64("seed", sc.Seed),
		zap.Int("workers", workers),
	)
	start := time.Now()

	results := make([]TrialRecord, sc.SimCount)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	dispatched := 0
	for i := 0; i < sc.SimCount; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			rec, err := PlayTrial(sc, i, false)
			if err != nil {
				logger.Warn("trial aborted", zap.Int("trial", i), zap.Int("rounds", rec.Rounds), zap.Error(err))
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = rec
			logger.Debug("trial finished",
				zap.Int("trial", i),
				zap.Int("rounds", rec.Rounds),
				zap.Int("casualties", rec.Casualties),
				zap.Bool("beast_alive", rec.BeastAlive),
			)
			return nil
		})
		dispatched++
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil && dispatched < sc.SimCount {
		logger.Warn("sweep cancelled", zap.Int("completed", dispatched), zap.Error(err))
		return results[:dispatched], fmt.Errorf("sweep cancelled after %d trials: %w", dispatched, err)
	}
	logger.Info("sweep finished", zap.Int("trials", dispatched), zap.Duration("elapsed", time.Since(start)))
	return results, nil
}
