package state

import (
	"context"
	"errors"
	"testing"

	"github.com/softsulphur/sulphite/internal/core"
)

type fakeSessions struct {
	byName map[string]int64
	nextID int64
	names  map[int64]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byName: map[string]int64{}, names: map[int64]string{}, nextID: 1}
}

func (f *fakeSessions) Create(_ context.Context, name string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.byName[name] = id
	f.names[id] = name
	return id, nil
}

func (f *fakeSessions) GetByName(_ context.Context, name string) (int64, bool, error) {
	id, ok := f.byName[name]
	return id, ok, nil
}

func (f *fakeSessions) Rename(_ context.Context, id int64, name string) error {
	old, ok := f.names[id]
	if !ok {
		return errors.New("no such session")
	}
	delete(f.byName, old)
	f.byName[name] = id
	f.names[id] = name
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id int64) error {
	delete(f.byName, f.names[id])
	delete(f.names, id)
	return nil
}

type fakeNotes struct {
	content string
	gets    int
}

func (f *fakeNotes) Get(_ context.Context) (string, error) {
	f.gets++
	return f.content, nil
}

func (f *fakeNotes) Set(_ context.Context, content string) error {
	f.content = content
	return nil
}

func TestOpenSession_CreatesOnFirstUse(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	s := NewState(sessions, &fakeNotes{}, core.LanguageAuto)

	id, err := s.OpenSession(ctx, "algebra")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if s.SessionID() != id || s.SessionName() != "algebra" {
		t.Errorf("state not updated: id=%d name=%q", s.SessionID(), s.SessionName())
	}

	again, err := s.OpenSession(ctx, "algebra")
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if again != id {
		t.Errorf("expected same session id on reopen, got %d and %d", id, again)
	}
}

func TestRenameSession(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessions()
	s := NewState(sessions, &fakeNotes{}, core.LanguageAuto)

	if _, err := s.OpenSession(ctx, "default"); err != nil {
		t.Fatal(err)
	}
	if err := s.RenameSession(ctx, "fractions"); err != nil {
		t.Fatalf("RenameSession: %v", err)
	}
	if s.SessionName() != "fractions" {
		t.Errorf("expected fractions, got %q", s.SessionName())
	}
	if _, ok := sessions.byName["fractions"]; !ok {
		t.Error("rename not persisted")
	}
}

func TestNote_DefaultSeedAndCache(t *testing.T) {
	ctx := context.Background()
	notes := &fakeNotes{}
	s := NewState(newFakeSessions(), notes, core.LanguageAuto)

	note, err := s.Note(ctx)
	if err != nil {
		t.Fatalf("Note: %v", err)
	}
	if note != DefaultNote {
		t.Errorf("expected default seed, got %q", note)
	}

	if _, err := s.Note(ctx); err != nil {
		t.Fatal(err)
	}
	if notes.gets != 1 {
		t.Errorf("expected single storage read, got %d", notes.gets)
	}
}

func TestSetNote_UpdatesCache(t *testing.T) {
	ctx := context.Background()
	notes := &fakeNotes{}
	s := NewState(newFakeSessions(), notes, core.LanguageAuto)

	if err := s.SetNote(ctx, "prefers worked examples"); err != nil {
		t.Fatalf("SetNote: %v", err)
	}
	note, err := s.Note(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if note != "prefers worked examples" {
		t.Errorf("got %q", note)
	}
	if notes.gets != 0 {
		t.Errorf("expected cache hit, storage reads=%d", notes.gets)
	}
}

func TestLanguageMode(t *testing.T) {
	s := NewState(newFakeSessions(), &fakeNotes{}, core.LanguageAuto)
	if s.Language() != core.LanguageAuto {
		t.Errorf("got %q", s.Language())
	}
	s.SetLanguage(core.LanguageUrdu)
	if s.Language() != core.LanguageUrdu {
		t.Errorf("got %q", s.Language())
	}
}
