package core

import "context"

type SessionsRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	GetByName(ctx context.Context, name string) (int64, bool, error)
	Rename(ctx context.Context, id int64, name string) error
	// Delete removes the session and its turns. Administrative only, no
	// command is wired to it.
	Delete(ctx context.Context, id int64) error
}

type TurnsRepository interface {
	Add(ctx context.Context, sessionID int64, userInput, modelResponse string) error
	// List returns at most limit of the latest turns, oldest first.
	List(ctx context.Context, sessionID int64, limit int) ([]Turn, error)
	// Clear removes every turn of the session but keeps the session row.
	Clear(ctx context.Context, sessionID int64) error
}

// NotesRepository stores the single permanent note of the installation.
// Writes replace the previous value wholesale.
type NotesRepository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, content string) error
}
