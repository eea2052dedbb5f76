package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const habitCols = `id, name, description, category, difficulty, xp_reward, gold_reward,
	rationale, priority, frequency, frequency_days, active, created_at`

type HabitRepo struct {
	db *sql.DB
}

func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

type HabitInsert struct {
	Name          string
	Description   string
	Category      string
	Difficulty    int
	XPReward      int
	GoldReward    int
	Rationale     string
	Priority      bool
	Frequency     string
	FrequencyDays []string
}

// HabitUpdate is a partial update; nil fields are left untouched.
type HabitUpdate struct {
	Name          *string
	Description   *string
	Category      *string
	Difficulty    *int
	XPReward      *int
	GoldReward    *int
	Rationale     *string
	Priority      *bool
	Frequency     *string
	FrequencyDays *[]string
	Active        *bool
}

func (r *HabitRepo) Insert(ctx context.Context, in HabitInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (name, description, category, difficulty, xp_reward, gold_reward,
			rationale, priority, frequency, frequency_days)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.Description, in.Category, in.Difficulty, in.XPReward, in.GoldReward,
		in.Rationale, boolToInt(in.Priority), in.Frequency, encodeList(in.FrequencyDays))
	if err != nil {
		return 0, fmt.Errorf("habit insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("habit last insert id: %w", err)
	}
	return id, nil
}

func (r *HabitRepo) Get(ctx context.Context, id int64) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+habitCols+` FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (r *HabitRepo) List(ctx context.Context, activeOnly bool) ([]Habit, error) {
	q := `SELECT ` + habitCols + ` FROM habits`
	if activeOnly {
		q += ` WHERE active = 1`
	}
	q += ` ORDER BY priority DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit rows: %w", err)
	}
	return out, nil
}

func (r *HabitRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM habits`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("habit count: %w", err)
	}
	return n, nil
}

// Update applies a partial update. A missing id affects zero rows and is
// not an error.
func (r *HabitRepo) Update(ctx context.Context, id int64, u HabitUpdate) error {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if u.Name != nil {
		set("name", *u.Name)
	}
	if u.Description != nil {
		set("description", *u.Description)
	}
	if u.Category != nil {
		set("category", *u.Category)
	}
	if u.Difficulty != nil {
		set("difficulty", *u.Difficulty)
	}
	if u.XPReward != nil {
		set("xp_reward", *u.XPReward)
	}
	if u.GoldReward != nil {
		set("gold_reward", *u.GoldReward)
	}
	if u.Rationale != nil {
		set("rationale", *u.Rationale)
	}
	if u.Priority != nil {
		set("priority", boolToInt(*u.Priority))
	}
	if u.Frequency != nil {
		set("frequency", *u.Frequency)
	}
	if u.FrequencyDays != nil {
		set("frequency_days", encodeList(*u.FrequencyDays))
	}
	if u.Active != nil {
		set("active", boolToInt(*u.Active))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("habit update: %w", err)
	}
	return nil
}

// Delete removes the habit and its completion rows.
func (r *HabitRepo) Delete(ctx context.Context, id int64) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM completions WHERE habit_id = ?`, id); err != nil {
			return fmt.Errorf("habit completions delete: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id); err != nil {
			return fmt.Errorf("habit delete: %w", err)
		}
		return nil
	})
}

func scanHabit(row scanner) (*Habit, error) {
	var h Habit
	var freqDays sql.NullString
	var priority, active int

	err := row.Scan(
		&h.ID, &h.Name, &h.Description, &h.Category, &h.Difficulty, &h.XPReward, &h.GoldReward,
		&h.Rationale, &priority, &h.Frequency, &freqDays, &active, &h.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit scan: %w", err)
	}

	h.Priority = priority != 0
	h.Active = active != 0
	h.FrequencyDays = decodeList(freqDays)
	return &h, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
