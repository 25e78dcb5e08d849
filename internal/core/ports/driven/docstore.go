package driven

import (
	"context"

	"github.com/admitlab/admit-cli/internal/core/domain"
)

// DocumentStore persists the corpus artefacts produced and consumed by the
// pipeline stages: the document array, the chunk array and the gold
// evaluation set. Each array is written whole in one pass; a re-run
// replaces the previous file.
type DocumentStore interface {
	// SaveDocuments writes the full document array.
	SaveDocuments(ctx context.Context, docs []domain.Document) error

	// LoadDocuments reads the document array. A missing or unreadable
	// file is an error, not an empty corpus.
	LoadDocuments(ctx context.Context) ([]domain.Document, error)

	// SaveChunks writes the full chunk array.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// LoadChunks reads the chunk array.
	LoadChunks(ctx context.Context) ([]domain.Chunk, error)

	// LoadGold reads the gold question/expected-document pairs.
	LoadGold(ctx context.Context) ([]domain.GoldExample, error)
}
