package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) Insert(ctx context.Context, title, content string, keyConcepts []string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (title, content, key_concepts) VALUES (?, ?, ?)
	`, title, content, encodeList(keyConcepts))
	if err != nil {
		return 0, fmt.Errorf("document insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("document last insert id: %w", err)
	}
	return id, nil
}

func (r *DocumentRepo) Get(ctx context.Context, id int64) (*Document, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, content, key_concepts, created_at FROM documents WHERE id = ?
	`, id)
	return scanDocument(row)
}

func (r *DocumentRepo) List(ctx context.Context) ([]Document, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, key_concepts, created_at FROM documents ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("document list: %w", err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("document rows: %w", err)
	}
	return out, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("document delete: %w", err)
	}
	return nil
}

func scanDocument(row scanner) (*Document, error) {
	var d Document
	var concepts sql.NullString
	err := row.Scan(&d.ID, &d.Title, &d.Content, &concepts, &d.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("document scan: %w", err)
	}
	d.KeyConcepts = decodeList(concepts)
	return &d, nil
}
