// Package persistence provides SQLite-based storage for draw runs.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jmoreau/eurodraw/internal/draw"
)

// DB wraps a SQLite connection for draw run persistence.
type DB struct {
	conn *sqlx.DB
}

// Run is one persisted generation run: the location, the weather that fed
// the entropy token, the chaotic value, and provenance for every pick.
// CreatedAt is stored as Unix seconds to keep the SQLite mapping trivial.
type Run struct {
	ID          string  `db:"id" json:"id"`
	CreatedAt   int64   `db:"created_at" json:"created_at"`
	City        string  `db:"city" json:"city"`
	Postal      string  `db:"postal" json:"postal"`
	Temp        float64 `db:"temp" json:"temp"`
	Humidity    int     `db:"humidity" json:"humidity"`
	Precip      float64 `db:"precip" json:"precip"`
	Description string  `db:"description" json:"description"`
	TokenHash   int64   `db:"token_hash" json:"token_hash"`
	Chaotic     float64 `db:"chaotic" json:"chaotic"`
	BaseTime    int64   `db:"base_time" json:"base_time"`
}

// Created returns the run creation time.
func (r Run) Created() time.Time {
	return time.Unix(r.CreatedAt, 0)
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		city TEXT NOT NULL,
		postal TEXT NOT NULL,
		temp REAL NOT NULL,
		humidity INTEGER NOT NULL,
		precip REAL NOT NULL,
		description TEXT NOT NULL,
		token_hash INTEGER NOT NULL,
		chaotic REAL NOT NULL,
		base_time INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS draws (
		run_id TEXT NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		official INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		main_json TEXT NOT NULL,
		bonus INTEGER NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_draws_run ON draws(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun writes a run and all its picks in one transaction.
func (db *DB) SaveRun(run Run, picks []draw.Pick) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, city, postal, temp, humidity, precip, description, token_hash, chaotic, base_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.City, run.Postal, run.Temp, run.Humidity,
		run.Precip, run.Description, run.TokenHash, run.Chaotic, run.BaseTime,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.Preparex(`INSERT INTO draws
		(run_id, idx, official, seed, main_json, bonus)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range picks {
		mainJSON, _ := json.Marshal(p.Main[:])

		official := 0
		if p.Official {
			official = 1
		}

		if _, err := stmt.Exec(run.ID, p.Index, official, p.Seed, string(mainJSON), p.Bonus); err != nil {
			return fmt.Errorf("insert draw %d: %w", p.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("run saved", "id", run.ID, "picks", len(picks))
	return nil
}

// RecentRuns returns the most recent N runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT * FROM runs ORDER BY created_at DESC LIMIT ?", limit)
	return runs, err
}

// GetRun returns one run by ID, or (nil, nil) when it does not exist.
func (db *DB) GetRun(id string) (*Run, error) {
	var run Run
	err := db.conn.Get(&run, "SELECT * FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// RunDraws returns all picks of a run ordered by index.
func (db *DB) RunDraws(runID string) ([]draw.Pick, error) {
	rows, err := db.conn.Queryx(
		"SELECT idx, official, seed, main_json, bonus FROM draws WHERE run_id = ? ORDER BY idx", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var picks []draw.Pick
	for rows.Next() {
		var (
			idx      int
			official int
			seed     int64
			mainJSON string
			bonus    int
		)
		if err := rows.Scan(&idx, &official, &seed, &mainJSON, &bonus); err != nil {
			return nil, err
		}

		var main []int
		if err := json.Unmarshal([]byte(mainJSON), &main); err != nil {
			return nil, fmt.Errorf("decode draw %d: %w", idx, err)
		}

		p := draw.Pick{
			Index:    idx,
			Seed:     seed,
			Official: official != 0,
		}
		copy(p.Main[:], main)
		p.Bonus = bonus
		picks = append(picks, p)
	}

	return picks, rows.Err()
}
