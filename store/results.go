package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/21andrewchang/vimgod/drill"

	// Pure Go sqlite driver, registered as "sqlite"
	_ "modernc.org/sqlite"
)

// ErrClosed is returned by every call after Close
var ErrClosed = errors.New("store: closed")

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS results (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		round      TEXT    NOT NULL,
		idx        INTEGER NOT NULL,
		outcome    INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		keys       INTEGER NOT NULL,
		score      INTEGER NOT NULL,
		played_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS results_round_score ON results(round, score DESC)`,
}

// Results is the persistent log of finished drill rounds
type Results struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens or creates the results database at path
func Open(path string) (*Results, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One writer; also keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema in %s: %w", path, err)
		}
	}
	return &Results{db: db}, nil
}

// Record appends one round result
func (r *Results) Record(ctx context.Context, res drill.Result) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return ErrClosed
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO results (round, idx, outcome, elapsed_ms, keys, score, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.Round, res.Index, int(res.Outcome), res.Elapsed.Milliseconds(), res.Keys, res.Score, res.At.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record %q: %w", res.Round, err)
	}
	return nil
}

// Best returns the highest-scoring win for a round; ties go to the earliest
func (r *Results) Best(ctx context.Context, round string) (drill.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return drill.Result{}, false, ErrClosed
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT round, idx, outcome, elapsed_ms, keys, score, played_at FROM results
		 WHERE round = ? AND outcome = ?
		 ORDER BY score DESC, id ASC LIMIT 1`,
		round, int(drill.Won),
	)
	res, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return drill.Result{}, false, nil
	}
	if err != nil {
		return drill.Result{}, false, fmt.Errorf("best %q: %w", round, err)
	}
	return res, true, nil
}

// Recent returns up to limit results, newest first
func (r *Results) Recent(ctx context.Context, limit int) ([]drill.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.db == nil {
		return nil, ErrClosed
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT round, idx, outcome, elapsed_ms, keys, score, played_at FROM results
		 ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	defer rows.Close()

	var out []drill.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("recent: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Close releases the database; later calls return ErrClosed
func (r *Results) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.db == nil {
		return ErrClosed
	}
	err := r.db.Close()
	r.db = nil
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (drill.Result, error) {
	var (
		res       drill.Result
		outcome   int
		elapsedMs int64
		playedAt  int64
	)
	if err := s.Scan(&res.Round, &res.Index, &outcome, &elapsedMs, &res.Keys, &res.Score, &playedAt); err != nil {
		return drill.Result{}, err
	}
	res.Outcome = drill.Outcome(outcome)
	res.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	res.At = time.UnixMilli(playedAt).UTC()
	return res, nil
}
