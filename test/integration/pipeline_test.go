package integration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/service/chat"
	"github.com/softsulphur/sulphite/internal/service/classify"
	"github.com/softsulphur/sulphite/internal/service/memory"
	"github.com/softsulphur/sulphite/internal/service/state"
	"github.com/softsulphur/sulphite/internal/storage/sqlite"
)

// scriptedProvider answers classification and generation calls with canned
// replies so the pipeline runs without network access.
type scriptedProvider struct{}

func (scriptedProvider) Chat(_ context.Context, system, _ string) (string, error) {
	if strings.Contains(system, "Classify the user's input") {
		return `{"classification": "practical", "main_topic": "Arithmetic", "sub_topic": "Factors and Multiples"}`, nil
	}
	return "Twelve has six factors: 1, 2, 3, 4, 6 and 12.", nil
}

type sumEmbedder struct{}

func (sumEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return vec(text), nil
}

func (sumEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = vec(t)
	}
	return out, nil
}

func vec(text string) []float32 {
	var sum float32
	for _, r := range text {
		sum += float32(r)
	}
	return []float32{sum, float32(len(text))}
}

func newPipeline(t *testing.T, dbPath string) (*chat.Chat, *state.State) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	provider := scriptedProvider{}
	st := state.NewState(sqlite.NewSessionsRepo(db), sqlite.NewNotesRepo(db), core.LanguageAuto)
	cfg := &config.AppConfig{
		MemoryDepth:        100,
		RetrievalK:         3,
		ContextTokenBudget: 1200,
		NoteMaxLen:         500,
	}
	c := chat.NewChat(
		provider,
		classify.NewClassifier(provider),
		memory.NewSemantic(sumEmbedder{}, cfg.RetrievalK),
		sqlite.NewTurnsRepo(db),
		st,
		cfg,
	)
	return c, st
}

// The conversation must survive a full restart: a second pipeline over the
// same database file sees the earlier turns and rebuilds its index.
func TestPipeline_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sulphite.db")

	c1, _ := newPipeline(t, dbPath)
	if err := c1.StartSession(ctx, "default"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	reply, err := c1.Respond(ctx, "What are the factors of 12?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "factors") {
		t.Errorf("unexpected reply %q", reply)
	}

	c2, st2 := newPipeline(t, dbPath)
	if err := c2.StartSession(ctx, "default"); err != nil {
		t.Fatalf("StartSession after restart: %v", err)
	}
	if st2.SessionName() != "default" {
		t.Errorf("session not reopened: %q", st2.SessionName())
	}
	if c2.MemoryLen() != 2 {
		t.Errorf("expected 2 rebuilt fragments, got %d", c2.MemoryLen())
	}
}

func TestPipeline_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sulphite.db")

	c, _ := newPipeline(t, dbPath)
	if err := c.StartSession(ctx, "algebra"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Respond(ctx, "What are the factors of 12?"); err != nil {
		t.Fatal(err)
	}

	if err := c.StartSession(ctx, "geometry"); err != nil {
		t.Fatal(err)
	}
	if c.MemoryLen() != 0 {
		t.Errorf("fresh session must start with empty memory, got %d fragments", c.MemoryLen())
	}
}
