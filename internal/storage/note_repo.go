package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const noteCols = `id, title, content, category, tags, ai_summary, pinned, created_at, updated_at`

type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

type NoteInsert struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

type NoteUpdate struct {
	Title     *string
	Content   *string
	Category  *string
	Tags      *[]string
	AISummary *string
	Pinned    *bool
}

func (r *NoteRepo) Insert(ctx context.Context, in NoteInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (title, content, category, tags) VALUES (?, ?, ?, ?)
	`, in.Title, in.Content, in.Category, encodeList(in.Tags))
	if err != nil {
		return 0, fmt.Errorf("note insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("note last insert id: %w", err)
	}
	return id, nil
}

func (r *NoteRepo) Get(ctx context.Context, id int64) (*Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteCols+` FROM notes WHERE id = ?`, id)
	return scanNote(row)
}

func (r *NoteRepo) List(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+noteCols+` FROM notes ORDER BY pinned DESC, updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("note list: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("note rows: %w", err)
	}
	return out, nil
}

func (r *NoteRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("note count: %w", err)
	}
	return n, nil
}

func (r *NoteRepo) Update(ctx context.Context, id int64, u NoteUpdate) error {
	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.Content != nil {
		set("content", *u.Content)
	}
	if u.Category != nil {
		set("category", *u.Category)
	}
	if u.Tags != nil {
		set("tags", encodeList(*u.Tags))
	}
	if u.AISummary != nil {
		set("ai_summary", *u.AISummary)
	}
	if u.Pinned != nil {
		set("pinned", boolToInt(*u.Pinned))
	}

	args = append(args, id)
	_, err := r.db.ExecContext(ctx, `UPDATE notes SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("note update: %w", err)
	}
	return nil
}

func (r *NoteRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("note delete: %w", err)
	}
	return nil
}

func scanNote(row scanner) (*Note, error) {
	var n Note
	var tags sql.NullString
	var summary sql.NullString
	var pinned int

	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &tags, &summary, &pinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("note scan: %w", err)
	}

	n.Tags = decodeList(tags)
	if summary.Valid {
		v := summary.String
		n.AISummary = &v
	}
	n.Pinned = pinned != 0
	return &n, nil
}
