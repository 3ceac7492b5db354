package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"beastsim/internal/combat"
	"beastsim/internal/storage"
	"beastsim/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed sweep persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a sweep SQLite store and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveSweep stores the sweep and all of its trials in one transaction and
// returns the new sweep id. Recorded events are not persisted.
func (s *Store) SaveSweep(ctx context.Context, sweep storage.Sweep, records []combat.TrialRecord) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if sweep.NumDefenders < 1 {
		return 0, fmt.Errorf("num defenders is required")
	}
	if sweep.CreatedAt.IsZero() {
		sweep.CreatedAt = time.Now().UTC()
	}
	weapons, err := json.Marshal(sweep.Weapons)
	if err != nil {
		return 0, fmt.Errorf("encode weapons: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save sweep: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
INSERT INTO sweeps (
	num_defenders,
	weapons,
	coordination,
	sim_count,
	seed,
	beast_wins,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		sweep.NumDefenders,
		string(weapons),
		sweep.Coordination,
		sweep.SimCount,
		sweep.Seed,
		sweep.BeastWins,
		sweep.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert sweep: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sweep id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO trials (
	sweep_id,
	trial_index,
	beast_health,
	casualties,
	rounds,
	beast_alive,
	morale_log,
	stamina_log,
	alive_log
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return 0, fmt.Errorf("prepare trial insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		morale, _ := json.Marshal(r.MoraleLog)
		stamina, _ := json.Marshal(r.StaminaLog)
		alive, _ := json.Marshal(r.AliveLog)
		if _, err := stmt.ExecContext(ctx,
			id, i, r.BeastHealth, r.Casualties, r.Rounds, r.BeastAlive,
			string(morale), string(stamina), string(alive),
		); err != nil {
			return 0, fmt.Errorf("insert trial %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sweep: %w", err)
	}
	return id, nil
}

// ListSweeps lists newest-first sweeps.
func (s *Store) ListSweeps(ctx context.Context, limit int) ([]storage.Sweep, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	id,
	num_defenders,
	weapons,
	coordination,
	sim_count,
	seed,
	beast_wins,
	created_at
FROM sweeps
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sweeps: %w", err)
	}
	defer rows.Close()

	var sweeps []storage.Sweep
	for rows.Next() {
		var sw storage.Sweep
		var weapons string
		var createdAt int64
		if err := rows.Scan(
			&sw.ID,
			&sw.NumDefenders,
			&weapons,
			&sw.Coordination,
			&sw.SimCount,
			&sw.Seed,
			&sw.BeastWins,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan sweep: %w", err)
		}
		if err := json.Unmarshal([]byte(weapons), &sw.Weapons); err != nil {
			return nil, fmt.Errorf("decode weapons of sweep %d: %w", sw.ID, err)
		}
		sw.CreatedAt = time.UnixMilli(createdAt).UTC()
		sweeps = append(sweeps, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sweeps: %w", err)
	}
	return sweeps, nil
}

// ListTrials returns the trials of one sweep in trial order.
func (s *Store) ListTrials(ctx context.Context, sweepID int64) ([]combat.TrialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	beast_health,
	casualties,
	rounds,
	beast_alive,
	morale_log,
	stamina_log,
	alive_log
FROM trials
WHERE sweep_id = ?
ORDER BY trial_index
`, sweepID)
	if err != nil {
		return nil, fmt.Errorf("list trials: %w", err)
	}
	defer rows.Close()

	var records []combat.TrialRecord
	for rows.Next() {
		var r combat.TrialRecord
		var morale, stamina, alive string
		if err := rows.Scan(&r.BeastHealth, &r.Casualties, &r.Rounds, &r.BeastAlive, &morale, &stamina, &alive); err != nil {
			return nil, fmt.Errorf("scan trial: %w", err)
		}
		if err := json.Unmarshal([]byte(morale), &r.MoraleLog); err != nil {
			return nil, fmt.Errorf("decode morale log: %w", err)
		}
		if err := json.Unmarshal([]byte(stamina), &r.StaminaLog); err != nil {
			return nil, fmt.Errorf("decode stamina log: %w", err)
		}
		if err := json.Unmarshal([]byte(alive), &r.AliveLog); err != nil {
			return nil, fmt.Errorf("decode alive log: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trials: %w", err)
	}
	return records, nil
}

var _ storage.SweepStore = (*Store)(nil)
