// Package memory implements the semantic session memory: an append-only
// list of conversation fragments paired with a flat nearest-neighbor index
// over their embeddings. Retrieval cost grows linearly with conversation
// length within a process lifetime; there is no eviction or decay.
package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/softsulphur/sulphite/internal/core"
	"github.com/softsulphur/sulphite/pkg/log"
)

// NoHistoryPlaceholder is returned instead of an empty context so prompt
// assembly never produces a dangling history header.
const NoHistoryPlaceholder = "No conversation history yet."

// Semantic indexes past exchanges of the active session and retrieves the k
// fragments most relevant to the current query. Each turn contributes two
// fragments: what the user asked and what the assistant answered.
type Semantic struct {
	embedder core.Embedder
	k        int

	texts []string
	index *FlatIndex
}

func NewSemantic(embedder core.Embedder, k int) *Semantic {
	return &Semantic{
		embedder: embedder,
		k:        k,
	}
}

func fragments(t core.Turn) []string {
	return []string{
		"User asked: " + t.UserInput,
		"AI answered: " + t.ModelResponse,
	}
}

// Rebuild replaces the index with fragments from the given turns. Called
// when a session is opened or its memory cleared.
func (s *Semantic) Rebuild(ctx context.Context, turns []core.Turn) error {
	s.texts = nil
	s.index = nil

	texts := make([]string, 0, len(turns)*2)
	for _, t := range turns {
		texts = append(texts, fragments(t)...)
	}
	if len(texts) == 0 {
		log.FromCtx(ctx).Debug().Msg("semantic memory reset to empty")
		return nil
	}

	vecs, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed history: %w", err)
	}
	if err := s.append(texts, vecs); err != nil {
		return err
	}

	log.FromCtx(ctx).Debug().Int("fragments", len(texts)).Msg("semantic memory rebuilt")
	return nil
}

// AddTurn appends one exchange to the memory. Purely additive.
func (s *Semantic) AddTurn(ctx context.Context, turn core.Turn) error {
	texts := fragments(turn)
	vecs, err := s.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed turn: %w", err)
	}
	return s.append(texts, vecs)
}

func (s *Semantic) append(texts []string, vecs [][]float32) error {
	if len(vecs) != len(texts) {
		return fmt.Errorf("expected %d vectors, got %d", len(texts), len(vecs))
	}
	if s.index == nil {
		if len(vecs) == 0 {
			return nil
		}
		s.index = NewFlatIndex(len(vecs[0]))
	}
	if err := s.index.Add(vecs...); err != nil {
		return err
	}
	s.texts = append(s.texts, texts...)
	return nil
}

// Context retrieves the fragments most relevant to query and joins them in
// reverse retrieval order, least relevant first, so the closest match sits
// right above the learner's latest message in the final prompt.
func (s *Semantic) Context(ctx context.Context, query string) (string, error) {
	if s.index == nil || s.index.Len() == 0 {
		return NoHistoryPlaceholder, nil
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to embed query: %w", err)
	}

	positions, err := s.index.Search(queryVec, s.k)
	if err != nil {
		return "", err
	}

	snippets := make([]string, 0, len(positions))
	for i := len(positions) - 1; i >= 0; i-- {
		snippets = append(snippets, s.texts[positions[i]])
	}
	return strings.Join(snippets, "\n"), nil
}

// Len reports the number of indexed fragments.
func (s *Semantic) Len() int {
	if s.index == nil {
		return 0
	}
	return s.index.Len()
}
