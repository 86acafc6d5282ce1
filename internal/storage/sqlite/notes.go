package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// NotesRepo manages the single-row permanent note. There is no history:
// every write replaces the previous content.
type NotesRepo struct {
	db *sql.DB
}

func NewNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{db: db}
}

func (r *NotesRepo) Get(ctx context.Context) (string, error) {
	var content string
	err := r.db.QueryRowContext(ctx, `SELECT content FROM permanent_notes WHERE id = 1`).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get permanent note: %w", err)
	}
	return content, nil
}

func (r *NotesRepo) Set(ctx context.Context, content string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO permanent_notes (id, content, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET content = excluded.content, updated_at = CURRENT_TIMESTAMP`,
		content,
	)
	if err != nil {
		return fmt.Errorf("failed to set permanent note: %w", err)
	}
	return nil
}
