package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/softsulphur/sulphite/pkg/log"
)

type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

func (r *SessionsRepo) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO sessions (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create session %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	log.FromCtx(ctx).Debug().Str("name", name).Int64("session_id", id).Msg("session created")
	return id, nil
}

func (r *SessionsRepo) GetByName(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM sessions WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get session %q: %w", name, err)
	}
	return id, true, nil
}

func (r *SessionsRepo) Rename(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE sessions SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename session %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("session %d does not exist", id)
	}
	return nil
}

func (r *SessionsRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Turns first, they reference the session.
	if _, err := tx.ExecContext(ctx, `DELETE FROM turns WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete turns of session %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session %d: %w", id, err)
	}

	return tx.Commit()
}
