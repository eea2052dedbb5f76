package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CompletionRepo struct {
	db *sql.DB
}

func NewCompletionRepo(db *sql.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

// Upsert records a completion for one habit on one civil date. The unique
// (habit_id, date) constraint makes repeat calls idempotent.
func (r *CompletionRepo) Upsert(ctx context.Context, habitID int64, date string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO completions (habit_id, date, completed) VALUES (?, ?, 1)
		ON CONFLICT(habit_id, date) DO UPDATE SET completed = 1
	`, habitID, date)
	if err != nil {
		return fmt.Errorf("completion upsert: %w", err)
	}
	return nil
}

// Delete un-completes the given day. Missing rows are a no-op.
func (r *CompletionRepo) Delete(ctx context.Context, habitID int64, date string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE habit_id = ? AND date = ?`, habitID, date)
	if err != nil {
		return fmt.Errorf("completion delete: %w", err)
	}
	return nil
}

func (r *CompletionRepo) Exists(ctx context.Context, habitID int64, date string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT completed FROM completions WHERE habit_id = ? AND date = ?
	`, habitID, date)
	var completed int
	if err := row.Scan(&completed); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("completion exists: %w", err)
	}
	return completed != 0, nil
}

// ListDates returns the completed dates for a habit, most recent first.
func (r *CompletionRepo) ListDates(ctx context.Context, habitID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date FROM completions
		WHERE habit_id = ? AND completed = 1
		ORDER BY date DESC
	`, habitID)
	if err != nil {
		return nil, fmt.Errorf("completion dates: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) CountAll(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions WHERE completed = 1`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}
