package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, including an
	// empty gold set handed to the evaluator.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCorpus indicates a pipeline stage was run against an empty
	// documents or chunks file. Stages abort rather than write partial
	// output downstream.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or unreachable.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrVectorStoreUnavailable indicates the vector store is not
	// configured or unreachable.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// The chat path cannot run without it; retrieval still can.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
