// Package assistant holds the retrieval-augmented answer providers: one per
// knowledge domain (hospital/doctor information and pharmacy/medicine
// information), each backed by an embedding retriever and a chat LLM.
package assistant

import "context"

// AnswerProvider answers a free-text question scoped to one knowledge domain.
type AnswerProvider interface {
	Answer(ctx context.Context, question string) (string, error)
}

// LLM generates a completion for a fully rendered prompt.
type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder produces an embedding vector for a text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever returns the k most relevant document texts for a query.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]string, error)
}
