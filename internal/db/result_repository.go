package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/stronghold/internal/model"
)

// ResultRepository implements ResultStore backed by PostgreSQL.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// Compile-time check.
var _ ResultStore = (*ResultRepository)(nil)

// NewResultRepository creates a new session result repository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Save inserts a finished session result and returns its row id.
func (r *ResultRepository) Save(ctx context.Context, result model.SessionResult) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO session_results
		 (seed, outcome, waves_completed, score, kills, breaches, base_health, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		result.Seed, result.Outcome, result.WavesCompleted, result.Score,
		result.Kills, result.Breaches, result.BaseHealth, result.DurationMs, result.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting session result: %w", err)
	}
	return id, nil
}

// Recent fetches the newest results, most recent first.
func (r *ResultRepository) Recent(ctx context.Context, limit int32) ([]model.SessionResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, seed, outcome, waves_completed, score, kills, breaches, base_health, duration_ms, created_at
		 FROM session_results
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session results: %w", err)
	}
	defer rows.Close()

	var results []model.SessionResult
	for rows.Next() {
		var res model.SessionResult
		if err := rows.Scan(
			&res.ID, &res.Seed, &res.Outcome, &res.WavesCompleted, &res.Score,
			&res.Kills, &res.Breaches, &res.BaseHealth, &res.DurationMs, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session result row: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session result rows: %w", err)
	}
	return results, nil
}
