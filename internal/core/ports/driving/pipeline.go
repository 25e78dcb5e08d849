package driving

import (
	"context"

	"github.com/admitlab/admit-cli/internal/core/domain"
)

// IngestService parses local PDFs and fetches configured web pages into
// the persisted document array.
type IngestService interface {
	// Ingest runs the stage and returns the number of documents written.
	Ingest(ctx context.Context) (int, error)
}

// ChunkService splits the document array into the persisted chunk array.
type ChunkService interface {
	// Chunk runs the stage and returns the number of chunks written.
	Chunk(ctx context.Context) (int, error)
}

// IndexService embeds chunks and upserts them into the vector store.
type IndexService interface {
	// Index runs the stage and returns the number of points indexed.
	Index(ctx context.Context) (int, error)
}

// AskService answers questions from retrieved context, refusing when the
// evidence does not clear the confidence gate.
type AskService interface {
	// Retrieve returns the ranked hits for a question without applying
	// the gate. Used by the search and eval paths.
	Retrieve(ctx context.Context, question string) ([]domain.QueryHit, error)

	// Ask runs the full gate-pack-generate path.
	Ask(ctx context.Context, question string) (domain.Answer, error)
}

// EvalService measures retrieval quality against the gold set.
type EvalService interface {
	// Evaluate returns aggregate hit@1 and hit@K rates.
	Evaluate(ctx context.Context) (domain.EvalReport, error)
}
