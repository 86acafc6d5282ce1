package core

import "context"

// AIProvider is a single chat-completion call: one system instruction, one
// user message, free text back. Every hosted-model interaction in the system
// (classification, language detection, response generation, summarization)
// goes through this.
type AIProvider interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// Embedder converts text into fixed-length vectors for the semantic index.
// Queries and documents may be encoded differently by the backing model.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
