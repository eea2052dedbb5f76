package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const goalCols = `id, title, description, category, deadline, progress, difficulty,
	xp_reward, gold_reward, completed, priority, steps, created_at`

type GoalRepo struct {
	db *sql.DB
}

func NewGoalRepo(db *sql.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

type GoalInsert struct {
	Title       string
	Description string
	Category    string
	Deadline    *string
	Difficulty  int
	XPReward    int
	GoldReward  int
	Priority    bool
	Steps       []string
}

type GoalUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Deadline    *string
	Progress    *int
	Completed   *bool
	Priority    *bool
	Steps       *[]string
}

func (r *GoalRepo) Insert(ctx context.Context, in GoalInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (title, description, category, deadline, difficulty,
			xp_reward, gold_reward, priority, steps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Title, in.Description, in.Category, in.Deadline, in.Difficulty,
		in.XPReward, in.GoldReward, boolToInt(in.Priority), encodeList(in.Steps))
	if err != nil {
		return 0, fmt.Errorf("goal insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("goal last insert id: %w", err)
	}
	return id, nil
}

func (r *GoalRepo) Get(ctx context.Context, id int64) (*Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalCols+` FROM goals WHERE id = ?`, id)
	return scanGoal(row)
}

// List returns goals ordered by priority then deadline. completed filters
// when non-nil.
func (r *GoalRepo) List(ctx context.Context, completed *bool) ([]Goal, error) {
	q := `SELECT ` + goalCols + ` FROM goals`
	var args []any
	if completed != nil {
		q += ` WHERE completed = ?`
		args = append(args, boolToInt(*completed))
	}
	q += ` ORDER BY priority DESC, deadline ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("goal list: %w", err)
	}
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("goal rows: %w", err)
	}
	return out, nil
}

func (r *GoalRepo) Count(ctx context.Context, completed *bool) (int, error) {
	q := `SELECT COUNT(*) FROM goals`
	var args []any
	if completed != nil {
		q += ` WHERE completed = ?`
		args = append(args, boolToInt(*completed))
	}
	row := r.db.QueryRowContext(ctx, q, args...)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("goal count: %w", err)
	}
	return n, nil
}

func (r *GoalRepo) Update(ctx context.Context, id int64, u GoalUpdate) error {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.Description != nil {
		set("description", *u.Description)
	}
	if u.Category != nil {
		set("category", *u.Category)
	}
	if u.Deadline != nil {
		set("deadline", *u.Deadline)
	}
	if u.Progress != nil {
		set("progress", *u.Progress)
	}
	if u.Completed != nil {
		set("completed", boolToInt(*u.Completed))
	}
	if u.Priority != nil {
		set("priority", boolToInt(*u.Priority))
	}
	if u.Steps != nil {
		set("steps", encodeList(*u.Steps))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db.ExecContext(ctx, `UPDATE goals SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("goal update: %w", err)
	}
	return nil
}

func (r *GoalRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("goal delete: %w", err)
	}
	return nil
}

func scanGoal(row scanner) (*Goal, error) {
	var g Goal
	var deadline sql.NullString
	var steps sql.NullString
	var completed, priority int

	err := row.Scan(
		&g.ID, &g.Title, &g.Description, &g.Category, &deadline, &g.Progress, &g.Difficulty,
		&g.XPReward, &g.GoldReward, &completed, &priority, &steps, &g.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("goal scan: %w", err)
	}

	if deadline.Valid {
		v := deadline.String
		g.Deadline = &v
	}
	g.Completed = completed != 0
	g.Priority = priority != 0
	g.Steps = decodeList(steps)
	return &g, nil
}
