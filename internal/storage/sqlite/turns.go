package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/pkg/log"
)

type TurnsRepo struct {
	db *sql.DB
}

func NewTurnsRepo(db *sql.DB) *TurnsRepo {
	return &TurnsRepo{db: db}
}

func (r *TurnsRepo) Add(ctx context.Context, sessionID int64, userInput, modelResponse string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO turns (session_id, user_input, model_response) VALUES (?, ?, ?)`,
		sessionID, userInput, modelResponse,
	)
	if err != nil {
		return fmt.Errorf("failed to insert turn for session %d: %w", sessionID, err)
	}
	return nil
}

// List returns the latest turns of the session, oldest first. The limit is
// mandatory: callers always work with a sliding window, never the full
// history.
func (r *TurnsRepo) List(ctx context.Context, sessionID int64, limit int) ([]core.Turn, error) {
	// Fetch newest first, then reverse into chronological order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, user_input, model_response, created_at
		 FROM turns WHERE session_id = ? ORDER BY id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []core.Turn
	for rows.Next() {
		var t core.Turn
		if err := rows.Scan(&t.ID, &t.SessionID, &t.UserInput, &t.ModelResponse, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(turns)).Int64("session_id", sessionID).Msg("loaded turns")
	return turns, nil
}

func (r *TurnsRepo) Clear(ctx context.Context, sessionID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM turns WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear turns for session %d: %w", sessionID, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	log.FromCtx(ctx).Debug().Int64("deleted", deleted).Int64("session_id", sessionID).Msg("session memory cleared")
	return nil
}
