package driven

import (
	"context"

	"github.com/admitlab/admit-cli/internal/core/domain"
)

// Point is one vector plus its chunk payload, keyed by the numeric chunk id.
// Upserts are idempotent by ID: re-indexing the same chunk overwrites the
// prior point.
type Point struct {
	ID      uint64
	Vector  []float32
	Payload domain.Payload
}

// VectorStore provides nearest-neighbour search over indexed chunks.
// Backed by Qdrant with cosine distance.
type VectorStore interface {
	// EnsureCollection creates the collection for the given vector
	// dimension if it does not already exist. "Already exists" is not an
	// error; collection reuse across runs is intentional.
	EnsureCollection(ctx context.Context, dim int) error

	// Upsert writes a batch of points with overwrite semantics by ID.
	Upsert(ctx context.Context, points []Point) error

	// Query returns up to limit hits ranked by descending score, each
	// carrying its stored payload.
	Query(ctx context.Context, vector []float32, limit int) ([]domain.QueryHit, error)

	// Close releases the underlying connection.
	Close() error
}
