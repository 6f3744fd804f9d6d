package runlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lisztnup/internal/curate"
)

// Run is one completed curation run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	InputPath  string
	OutputPath string
	Composers  int
	Works      int
	Parts      int
	Stats      curate.Stats
}

// NewRun returns a Run with a fresh identifier and the start time set.
func NewRun(inputPath, outputPath string) Run {
	return Run{
		ID:         uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
}

// Record persists a completed run.
func (s *Store) Record(ctx context.Context, run Run) error {
	statsJSON, err := json.Marshal(run.Stats)
	if err != nil {
		return fmt.Errorf("marshal run stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, input_path, output_path, composers, works, parts, stats_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.InputPath,
		run.OutputPath,
		run.Composers,
		run.Works,
		run.Parts,
		string(statsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first. A non-positive limit
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := "SELECT id, started_at, finished_at, input_path, output_path, composers, works, parts, stats_json FROM runs ORDER BY started_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			started   string
			finished  string
			statsJSON string
		)
		if err := rows.Scan(&run.ID, &started, &finished, &run.InputPath, &run.OutputPath,
			&run.Composers, &run.Works, &run.Parts, &statsJSON); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		if err := json.Unmarshal([]byte(statsJSON), &run.Stats); err != nil {
			return nil, fmt.Errorf("unmarshal run stats: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
