package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/prompts"
	"github.com/softsulphur/sulphite/internal/service/classify"
	"github.com/softsulphur/sulphite/internal/service/memory"
	"github.com/softsulphur/sulphite/internal/service/state"
)

// funcProvider routes model calls through a test-supplied function and
// records the system prompts it saw.
type funcProvider struct {
	fn      func(system, user string) (string, error)
	systems []string
}

func (p *funcProvider) Chat(_ context.Context, system, user string) (string, error) {
	p.systems = append(p.systems, system)
	return p.fn(system, user)
}

type hashEmbedder struct{}

func (hashEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return embed(text), nil
}

func (hashEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = embed(t)
	}
	return out, nil
}

func embed(text string) []float32 {
	var sum float32
	for _, r := range text {
		sum += float32(r)
	}
	return []float32{sum, float32(len(text)), 1}
}

type memTurns struct {
	turns  []core.Turn
	nextID int64
}

func (m *memTurns) Add(_ context.Context, sessionID int64, userInput, modelResponse string) error {
	m.nextID++
	m.turns = append(m.turns, core.Turn{
		ID:            m.nextID,
		SessionID:     sessionID,
		UserInput:     userInput,
		ModelResponse: modelResponse,
	})
	return nil
}

func (m *memTurns) List(_ context.Context, sessionID int64, limit int) ([]core.Turn, error) {
	var out []core.Turn
	for _, t := range m.turns {
		if t.SessionID == sessionID {
			out = append(out, t)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *memTurns) Clear(_ context.Context, sessionID int64) error {
	var kept []core.Turn
	for _, t := range m.turns {
		if t.SessionID != sessionID {
			kept = append(kept, t)
		}
	}
	m.turns = kept
	return nil
}

type memSessions struct {
	names map[string]int64
	next  int64
}

func (m *memSessions) Create(_ context.Context, name string) (int64, error) {
	if m.names == nil {
		m.names = map[string]int64{}
	}
	m.next++
	m.names[name] = m.next
	return m.next, nil
}

func (m *memSessions) GetByName(_ context.Context, name string) (int64, bool, error) {
	id, ok := m.names[name]
	return id, ok, nil
}

func (m *memSessions) Rename(_ context.Context, _ int64, _ string) error { return nil }
func (m *memSessions) Delete(_ context.Context, _ int64) error           { return nil }

type memNotes struct{ content string }

func (m *memNotes) Get(_ context.Context) (string, error) { return m.content, nil }
func (m *memNotes) Set(_ context.Context, c string) error { m.content = c; return nil }

func newTestChat(t *testing.T, provider core.AIProvider) (*Chat, *memTurns, *state.State) {
	t.Helper()

	turns := &memTurns{}
	st := state.NewState(&memSessions{}, &memNotes{}, core.LanguageAuto)
	cfg := &config.AppConfig{
		MemoryDepth:        100,
		RetrievalK:         3,
		ContextTokenBudget: 1200,
		NoteMaxLen:         500,
	}
	c := NewChat(provider, classify.NewClassifier(provider), memory.NewSemantic(hashEmbedder{}, cfg.RetrievalK), turns, st, cfg)
	if err := c.StartSession(context.Background(), "test"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return c, turns, st
}

func TestRespond_IdentityShortcut(t *testing.T) {
	provider := &funcProvider{fn: func(_, _ string) (string, error) {
		t.Fatal("identity questions must not reach the model")
		return "", nil
	}}
	c, turns, _ := newTestChat(t, provider)

	reply, err := c.Respond(context.Background(), "Who are you?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if reply != prompts.Identity() {
		t.Errorf("expected identity reply, got %q", reply)
	}
	if len(turns.turns) != 0 {
		t.Errorf("canned answers must stay out of history, have %d turns", len(turns.turns))
	}
	if c.memory.Len() != 0 {
		t.Errorf("canned answers must stay out of the index, have %d fragments", c.memory.Len())
	}
}

func TestRespond_LanguageGate(t *testing.T) {
	provider := &funcProvider{fn: func(system, _ string) (string, error) {
		if strings.Contains(system, "Detect the language") {
			return "urdu", nil
		}
		t.Fatalf("unexpected model call: %q", system)
		return "", nil
	}}
	c, turns, st := newTestChat(t, provider)
	st.SetLanguage(core.LanguageEnglish)

	reply, err := c.Respond(context.Background(), "mujhe algebra samjhao")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if reply != prompts.LanguageReminder(core.LanguageEnglish) {
		t.Errorf("expected language reminder, got %q", reply)
	}
	if len(turns.turns) != 0 {
		t.Error("blocked input must not be persisted")
	}
}

func TestRespond_LanguageGateLetsUndetectedThrough(t *testing.T) {
	provider := &funcProvider{fn: func(system, _ string) (string, error) {
		switch {
		case strings.Contains(system, "Detect the language"):
			return "other", nil
		case strings.Contains(system, "Classify the user's input"):
			return `{"classification": "general"}`, nil
		default:
			return "Let us work that equation out together.", nil
		}
	}}
	c, turns, st := newTestChat(t, provider)
	st.SetLanguage(core.LanguageEnglish)

	reply, err := c.Respond(context.Background(), "3x+1=?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if reply == prompts.LanguageReminder(core.LanguageEnglish) {
		t.Fatal("undetected language must not trigger the reminder")
	}
	if !strings.Contains(reply, "equation") {
		t.Errorf("unexpected reply %q", reply)
	}
	if len(turns.turns) != 1 {
		t.Errorf("expected turn persisted, have %d", len(turns.turns))
	}
}

func TestRespond_NewQuestionClassifiesAndPersists(t *testing.T) {
	provider := &funcProvider{fn: func(system, _ string) (string, error) {
		if strings.Contains(system, "Classify the user's input") {
			return `{"classification": "theoretical", "main_topic": "Basic Algebra", "sub_topic": "Variables and Expressions"}`, nil
		}
		return "A variable is a symbol that stands for a number.", nil
	}}
	c, turns, _ := newTestChat(t, provider)

	reply, err := c.Respond(context.Background(), "What is a variable?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "variable is a symbol") {
		t.Errorf("unexpected reply %q", reply)
	}
	if len(turns.turns) != 1 {
		t.Fatalf("expected 1 turn, have %d", len(turns.turns))
	}
	if c.memory.Len() != 2 {
		t.Errorf("expected 2 indexed fragments, have %d", c.memory.Len())
	}
}

func TestRespond_FollowUpSkipsClassifier(t *testing.T) {
	provider := &funcProvider{fn: func(system, _ string) (string, error) {
		switch {
		case strings.Contains(system, "Classify the user's input"):
			t.Fatal("follow-ups must skip the classifier")
			return "", nil
		case strings.Contains(system, "'followup' or 'new_question'"):
			return "followup", nil
		default:
			return "Exactly, seven times eight is fifty-six.", nil
		}
	}}
	c, turns, st := newTestChat(t, provider)

	// The assistant's last reply ends in a question, enabling follow-ups.
	if err := turns.Add(context.Background(), st.SessionID(), "quiz me", "What is 7 times 8?"); err != nil {
		t.Fatal(err)
	}

	reply, err := c.Respond(context.Background(), "56")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "fifty-six") {
		t.Errorf("unexpected reply %q", reply)
	}
}

func TestSaveNote(t *testing.T) {
	provider := &funcProvider{fn: func(system, _ string) (string, error) {
		if strings.Contains(system, "Summarize the following note") {
			return "Prefers visual explanations.", nil
		}
		t.Fatalf("unexpected model call: %q", system)
		return "", nil
	}}
	c, _, st := newTestChat(t, provider)

	if err := c.SaveNote(context.Background(), "I like diagrams and pictures when learning"); err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	note, err := st.Note(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if note != "Prefers visual explanations." {
		t.Errorf("got %q", note)
	}
}

func TestSaveNote_RejectsOversizedInput(t *testing.T) {
	provider := &funcProvider{fn: func(_, _ string) (string, error) {
		t.Fatal("oversized notes must not reach the model")
		return "", nil
	}}
	c, _, _ := newTestChat(t, provider)

	if err := c.SaveNote(context.Background(), strings.Repeat("x", 501)); err == nil {
		t.Error("expected error for oversized note")
	}
}

func TestClearMemory(t *testing.T) {
	provider := &funcProvider{fn: func(_, _ string) (string, error) {
		return "ok", nil
	}}
	c, turns, st := newTestChat(t, provider)

	if err := turns.Add(context.Background(), st.SessionID(), "hi", "hello"); err != nil {
		t.Fatal(err)
	}
	if err := c.ClearMemory(context.Background()); err != nil {
		t.Fatalf("ClearMemory: %v", err)
	}
	if len(turns.turns) != 0 {
		t.Errorf("expected turns cleared, have %d", len(turns.turns))
	}
	if c.memory.Len() != 0 {
		t.Errorf("expected empty index, have %d fragments", c.memory.Len())
	}
}
