// Package chat orchestrates one learner message end to end: shortcuts,
// language gate, query typing, classification, context assembly, the model
// call and persistence.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/softsulphur/sulphite/internal/config"
	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/internal/prompts"
	"github.com/softsulphur/sulphite/internal/service/classify"
	"github.com/softsulphur/sulphite/internal/service/memory"
	"github.com/softsulphur/sulphite/internal/service/state"
	"github.com/softsulphur/sulphite/pkg/log"
	"github.com/softsulphur/sulphite/pkg/retry"
)

type Chat struct {
	provider   core.AIProvider
	classifier *classify.Classifier
	memory     *memory.Semantic
	turns      core.TurnsRepository
	state      *state.State
	retrier    *retry.Retrier

	memoryDepth int
	tokenBudget int
	noteMaxLen  int
}

func NewChat(
	provider core.AIProvider,
	classifier *classify.Classifier,
	mem *memory.Semantic,
	turns core.TurnsRepository,
	st *state.State,
	cfg *config.AppConfig,
) *Chat {
	return &Chat{
		provider:    provider,
		classifier:  classifier,
		memory:      mem,
		turns:       turns,
		state:       st,
		retrier:     retry.NewDefaultRetrier(),
		memoryDepth: cfg.MemoryDepth,
		tokenBudget: cfg.ContextTokenBudget,
		noteMaxLen:  cfg.NoteMaxLen,
	}
}

// StartSession opens the named session and rebuilds the semantic index from
// its stored turns.
func (c *Chat) StartSession(ctx context.Context, name string) error {
	if _, err := c.state.OpenSession(ctx, name); err != nil {
		return fmt.Errorf("failed to open session %q: %w", name, err)
	}

	turns, err := c.turns.List(ctx, c.state.SessionID(), c.memoryDepth)
	if err != nil {
		return fmt.Errorf("failed to load session history: %w", err)
	}
	if err := c.memory.Rebuild(ctx, turns); err != nil {
		return err
	}

	log.FromCtx(ctx).Info().
		Str("session", name).
		Int("turns", len(turns)).
		Msg("session opened")
	return nil
}

// ClearMemory removes the stored turns of the active session and empties
// the semantic index.
func (c *Chat) ClearMemory(ctx context.Context) error {
	if err := c.turns.Clear(ctx, c.state.SessionID()); err != nil {
		return fmt.Errorf("failed to clear session turns: %w", err)
	}
	return c.memory.Rebuild(ctx, nil)
}

// MemoryLen reports how many fragments the semantic index currently holds.
func (c *Chat) MemoryLen() int {
	return c.memory.Len()
}

// Respond runs the full pipeline for one learner message and returns the
// assistant's reply.
func (c *Chat) Respond(ctx context.Context, input string) (string, error) {
	logger := log.FromCtx(ctx)

	// Canned answer, kept out of the stored history and the index.
	if isIdentityQuery(input) {
		return prompts.Identity(), nil
	}

	if reminder := c.languageGate(ctx, input); reminder != "" {
		return reminder, nil
	}

	classification := c.classifyInput(ctx, input)

	userMsg, err := c.buildUserMessage(ctx, input)
	if err != nil {
		return "", err
	}
	system := prompts.ForCategory(classification.Category) + prompts.LanguageInstruction(c.state.Language())

	var reply string
	err = c.retrier.Do(ctx, func() error {
		var chatErr error
		reply, chatErr = c.provider.Chat(ctx, system, userMsg)
		return chatErr
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if err := c.persistTurn(ctx, input, reply); err != nil {
		return "", err
	}

	logger.Debug().
		Str("category", string(classification.Category)).
		Int("memory_fragments", c.memory.Len()).
		Msg("message answered")
	return reply, nil
}

// SaveNote folds free-form learner notes into the single permanent note,
// summarizing through the model. Oversized input is rejected before any
// model call.
func (c *Chat) SaveNote(ctx context.Context, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return fmt.Errorf("note is empty")
	}
	if len(note) > c.noteMaxLen {
		return fmt.Errorf("note exceeds %d characters", c.noteMaxLen)
	}

	existing, err := c.state.Note(ctx)
	if err != nil {
		return err
	}

	combined := existing + "\n" + note
	var summary string
	err = c.retrier.Do(ctx, func() error {
		var chatErr error
		summary, chatErr = c.provider.Chat(ctx, prompts.SummarizeNote(combined), combined)
		return chatErr
	})
	if err != nil {
		return fmt.Errorf("failed to summarize note: %w", err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		summary = note
	}
	return c.state.SetNote(ctx, summary)
}

// isIdentityQuery catches the two identity questions answered without a
// model round trip.
func isIdentityQuery(input string) bool {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.TrimRight(normalized, "?!. ")
	return strings.Contains(normalized, "who are you") ||
		strings.Contains(normalized, "what is your name")
}

// languageGate returns a fixed reminder when a language mode is enforced
// and the input is written in a different one. Detection failures never
// block the message.
func (c *Chat) languageGate(ctx context.Context, input string) string {
	mode := c.state.Language()
	if mode == core.LanguageAuto {
		return ""
	}

	detected, err := c.provider.Chat(ctx, prompts.LanguageDetection(input), input)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("language detection failed")
		return ""
	}

	// Only a definite mismatch blocks; an undetected language passes.
	detected = strings.ToLower(strings.TrimSpace(detected))
	if detected == string(mode) || detected == "other" {
		return ""
	}
	return prompts.LanguageReminder(mode)
}

// classifyInput types the query first: follow-up answers to the assistant's
// own question skip the classifier and stay in practical mode.
func (c *Chat) classifyInput(ctx context.Context, input string) core.Classification {
	if c.isFollowUp(ctx, input) {
		return core.Classification{Category: core.CategoryPractical}
	}
	return c.classifier.Classify(ctx, input)
}

func (c *Chat) isFollowUp(ctx context.Context, input string) bool {
	logger := log.FromCtx(ctx)

	last, err := c.turns.List(ctx, c.state.SessionID(), 1)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load last turn for query typing")
		return false
	}
	// A follow-up is only possible if the assistant just asked something.
	if len(last) == 0 || !strings.Contains(last[0].ModelResponse, "?") {
		return false
	}

	answer, err := c.provider.Chat(ctx, prompts.QueryType(last[0].ModelResponse, input), input)
	if err != nil {
		logger.Warn().Err(err).Msg("query type detection failed")
		return false
	}
	return strings.Contains(strings.ToLower(answer), "followup")
}

// buildUserMessage assembles the contextualized user message: permanent
// note, token-budgeted retrieval context, then the learner's input.
func (c *Chat) buildUserMessage(ctx context.Context, input string) (string, error) {
	note, err := c.state.Note(ctx)
	if err != nil {
		return "", err
	}

	history, err := c.memory.Context(ctx, input)
	if err != nil {
		return "", err
	}
	history = memory.TrimToBudget(history, c.tokenBudget)

	var b strings.Builder
	b.WriteString("What you remember about this student:\n")
	b.WriteString(note)
	b.WriteString("\n\nRelevant conversation history:\n")
	b.WriteString(history)
	b.WriteString("\n\nStudent: ")
	b.WriteString(input)
	return b.String(), nil
}

func (c *Chat) persistTurn(ctx context.Context, input, reply string) error {
	if err := c.turns.Add(ctx, c.state.SessionID(), input, reply); err != nil {
		return fmt.Errorf("failed to store turn: %w", err)
	}
	if err := c.memory.AddTurn(ctx, core.Turn{UserInput: input, ModelResponse: reply}); err != nil {
		// The turn is durable, only in-process retrieval is degraded.
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to index turn")
	}
	return nil
}
