package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type MotivationRepo struct {
	db *sql.DB
}

func NewMotivationRepo(db *sql.DB) *MotivationRepo {
	return &MotivationRepo{db: db}
}

func (r *MotivationRepo) Get(ctx context.Context, date string) (*Motivation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, quote, philosophy, tradition, habit_context, created_at
		FROM motivations WHERE date = ?
	`, date)

	var m Motivation
	var habitContext sql.NullString
	err := row.Scan(&m.ID, &m.Date, &m.Quote, &m.Philosophy, &m.Tradition, &habitContext, &m.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("motivation get: %w", err)
	}
	if habitContext.Valid {
		v := habitContext.String
		m.HabitContext = &v
	}
	return &m, nil
}

// Save stores the day's quote, replacing any earlier row for the same date.
func (r *MotivationRepo) Save(ctx context.Context, date, quote, philosophy, tradition string, habitContext *string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO motivations (date, quote, philosophy, tradition, habit_context)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			quote = excluded.quote,
			philosophy = excluded.philosophy,
			tradition = excluded.tradition,
			habit_context = excluded.habit_context
	`, date, quote, philosophy, tradition, habitContext)
	if err != nil {
		return fmt.Errorf("motivation save: %w", err)
	}
	return nil
}
