package database

import (
	"fmt"
)

var _ RunRepository = (*RunRepositoryImpl)(nil)

// RunRepositoryImpl handles database operations for run summaries.
type RunRepositoryImpl struct {
	db *DB
}

func NewRunRepository(db *DB) *RunRepositoryImpl {
	return &RunRepositoryImpl{db: db}
}

// RecordRun stores one run summary. INSERT OR REPLACE keyed by run_id makes
// a retried write of the same run idempotent.
func (r *RunRepositoryImpl) RecordRun(run Run) error {
	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO runs (
			run_id, started_at, finished_at, total_candidates, stored_new,
			stored_updated, skipped_existing, extract_ok
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.StartedAt, run.FinishedAt, run.TotalCandidates, run.StoredNew,
		run.StoredUpdated, run.SkippedExisting, run.ExtractOK)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

func (r *RunRepositoryImpl) ListRuns(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, started_at, finished_at, total_candidates, stored_new,
		       stored_updated, skipped_existing, extract_ok
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		err := rows.Scan(
			&run.RunID, &run.StartedAt, &run.FinishedAt, &run.TotalCandidates,
			&run.StoredNew, &run.StoredUpdated, &run.SkippedExisting, &run.ExtractOK,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}

	return runs, nil
}
