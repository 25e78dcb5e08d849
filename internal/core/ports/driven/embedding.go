package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Vectors are unit-normalised by the adapter so that dot product equals
// cosine similarity; the vector store relies on this calibration for its
// score threshold.
//
// Implementations may include:
//   - Ollama (nomic-embed-text, all-minilm)
//   - OpenAI-compatible inference servers
type EmbeddingService interface {
	// Embed generates a unit-normalised embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768).
	// This is determined by the model and must match the collection
	// configured in the vector store.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	// Used at startup so a missing collaborator is reported before any
	// real work begins.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
