package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"beastsim/internal/combat"
	"beastsim/internal/config"
	"beastsim/internal/report"
	"beastsim/internal/storage"
	"beastsim/internal/storage/sqlite"
)

type options struct {
	cfgPath string
	out     string
	dbPath  string
	n       int
	seed    int64
	workers int
	rows    int
	saveLog bool
	verbose bool
}

func main() {
	var opt options
	flag.StringVar(&opt.cfgPath, "config", "", "scenario YAML file (defaults when empty)")
	flag.StringVar(&opt.out, "out", "out.json", "output file (single trial) or summary file (sweep)")
	flag.StringVar(&opt.dbPath, "db", "", "SQLite file to persist the sweep into")
	flag.IntVar(&opt.n, "n", 0, "number of trials, overrides sim_count when > 0")
	flag.Int64Var(&opt.seed, "seed", 0, "seed, overrides the scenario seed when != 0")
	flag.IntVar(&opt.workers, "workers", -1, "worker count, overrides the scenario when >= 0 (0 = GOMAXPROCS)")
	flag.IntVar(&opt.rows, "rows", report.DefaultRows, "rounds shown in the round table")
	flag.BoolVar(&opt.saveLog, "log", true, "save the full event log when n==1")
	flag.BoolVar(&opt.verbose, "v", false, "debug logging")
	flag.Parse()

	logger := newLogger(opt.verbose)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opt, logger); err != nil {
		logger.Fatal("simsvc failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func run(ctx context.Context, opt options, logger *zap.Logger) error {
	sc, err := config.LoadScenario(opt.cfgPath)
	if err != nil {
		return err
	}
	if opt.n > 0 {
		sc.SimCount = opt.n
	}
	if opt.seed != 0 {
		sc.Seed = opt.seed
	}
	if opt.workers >= 0 {
		sc.Workers = opt.workers
	}
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	if sc.SimCount == 1 {
		res, err := combat.PlayTrial(sc, 0, opt.saveLog)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opt.out, combat.MarshalPretty(res), 0644); err != nil {
			return fmt.Errorf("write %s: %w", opt.out, err)
		}
		fmt.Printf("Single trial finished. BeastAlive=%v, Rounds=%d, Casualties=%d -> %s\n",
			res.BeastAlive, res.Rounds, res.Casualties, opt.out)
		return nil
	}

	records, err := combat.Run(ctx, sc, logger)
	if err != nil {
		return err
	}
	summary := report.Summarize(records)
	if err := os.WriteFile(opt.out, combat.MarshalPretty(summary), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opt.out, err)
	}
	if err := report.Fprint(os.Stdout, summary, opt.rows); err != nil {
		return err
	}

	if opt.dbPath != "" {
		id, err := persist(ctx, opt.dbPath, sc, summary, records)
		if err != nil {
			return err
		}
		logger.Info("sweep stored", zap.String("db", opt.dbPath), zap.Int64("sweep_id", id))
	}
	fmt.Printf("Sweep of %d done -> %s\n", summary.Runs, opt.out)
	return nil
}

func persist(ctx context.Context, path string, sc *config.Scenario, s report.Summary, records []combat.TrialRecord) (int64, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.SaveSweep(ctx, storage.Sweep{
		NumDefenders: sc.NumDefenders,
		Weapons:      sc.Weapons,
		Coordination: sc.Coordination,
		SimCount:     sc.SimCount,
		Seed:         sc.Seed,
		BeastWins:    s.BeastWins,
	}, records)
}
