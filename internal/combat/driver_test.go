package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_ReturnsOneRecordPerTrial(t *testing.T) {
	sc := testScenario()
	recs, err := Run(context.Background(), sc, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, recs, sc.SimCount)
	for _, r := range recs {
		assert.LessOrEqual(t, r.Casualties, sc.NumDefenders)
		assert.Len(t, r.AliveLog, r.Rounds)
	}
}

func TestRun_IndependentOfWorkerCount(t *testing.T) {
	sc := testScenario()
	sc.Workers = 1
	serial, err := Run(context.Background(), sc, nil)
	require.NoError(t, err)

	sc.Workers = 6
	parallel, err := Run(context.Background(), sc, nil)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestRun_MatchesPlayTrial(t *testing.T) {
	sc := testScenario()
	recs, err := Run(context.Background(), sc, nil)
	require.NoError(t, err)

	one, err := PlayTrial(sc, 7, false)
	require.NoError(t, err)
	assert.Equal(t, one, recs[7])
}

func TestRun_SeedChangesOutcome(t *testing.T) {
	sc := testScenario()
	a, err := Run(context.Background(), sc, nil)
	require.NoError(t, err)

	sc.Seed++
	b, err := Run(context.Background(), sc, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs, err := Run(ctx, testScenario(), nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, recs)
}

func TestRun_RoundLimitFailsSweep(t *testing.T) {
	sc := testScenario()
	sc.Rules.BeastStrength = 0
	sc.MaxRounds = 5

	_, err := Run(context.Background(), sc, nil)
	require.ErrorIs(t, err, ErrRoundLimit)
}
