// Package state tracks the mutable runtime state of the assistant: which
// session is active, which language mode is enforced and the cached
// permanent note. All accessors are safe for concurrent transports.
package state

import (
	"context"
	"sync"

	"github.com/softsulphur/sulphite/internal/core"
)

// DefaultNote seeds the permanent note before the learner has written one.
const DefaultNote = "This user is new. Pay attention to their learning style and preferences."

type State struct {
	sessions core.SessionsRepository
	notes    core.NotesRepository

	mu          sync.RWMutex
	sessionID   int64
	sessionName string
	language    core.LanguageMode
	note        string
	noteLoaded  bool
}

func NewState(sessions core.SessionsRepository, notes core.NotesRepository, language core.LanguageMode) *State {
	return &State{
		sessions: sessions,
		notes:    notes,
		language: language,
	}
}

// OpenSession makes name the active session, creating it on first use.
func (s *State) OpenSession(ctx context.Context, name string) (int64, error) {
	id, ok, err := s.sessions.GetByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		id, err = s.sessions.Create(ctx, name)
		if err != nil {
			return 0, err
		}
	}

	s.mu.Lock()
	s.sessionID = id
	s.sessionName = name
	s.mu.Unlock()
	return id, nil
}

func (s *State) SessionID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

func (s *State) SessionName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionName
}

// RenameSession renames the active session in storage and in memory.
func (s *State) RenameSession(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sessions.Rename(ctx, s.sessionID, name); err != nil {
		return err
	}
	s.sessionName = name
	return nil
}

func (s *State) Language() core.LanguageMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *State) SetLanguage(mode core.LanguageMode) {
	s.mu.Lock()
	s.language = mode
	s.mu.Unlock()
}

// Note returns the permanent note, loading it from storage on first call.
// An empty stored note falls back to the default seed.
func (s *State) Note(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.noteLoaded {
		defer s.mu.RUnlock()
		return s.note, nil
	}
	s.mu.RUnlock()

	content, err := s.notes.Get(ctx)
	if err != nil {
		return "", err
	}
	if content == "" {
		content = DefaultNote
	}

	s.mu.Lock()
	s.note = content
	s.noteLoaded = true
	s.mu.Unlock()
	return content, nil
}

// SetNote persists the note and refreshes the cache.
func (s *State) SetNote(ctx context.Context, content string) error {
	if err := s.notes.Set(ctx, content); err != nil {
		return err
	}
	s.mu.Lock()
	s.note = content
	s.noteLoaded = true
	s.mu.Unlock()
	return nil
}
