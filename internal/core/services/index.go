package services

import (
	"context"
	"fmt"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
	"github.com/admitlab/admit-cli/internal/core/ports/driving"
	"github.com/admitlab/admit-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// DefaultBatchSize is how many points are upserted per request.
const DefaultBatchSize = 256

// IndexService embeds the persisted chunks and writes them to the vector
// store.
type IndexService struct {
	store     driven.DocumentStore
	embedder  driven.EmbeddingService
	vector    driven.VectorStore
	batchSize int
}

// NewIndexService creates the index stage.
func NewIndexService(
	store driven.DocumentStore,
	embedder driven.EmbeddingService,
	vector driven.VectorStore,
	batchSize int,
) *IndexService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &IndexService{
		store:     store,
		embedder:  embedder,
		vector:    vector,
		batchSize: batchSize,
	}
}

// Index embeds every chunk and upserts it keyed by chunk id, batching
// writes. Re-running overwrites the existing points, so the stage is
// idempotent over an unchanged chunk file.
func (s *IndexService) Index(ctx context.Context) (int, error) {
	logger.Section("Index")

	chunks, err := s.store.LoadChunks(ctx)
	if err != nil {
		return 0, fmt.Errorf("load chunks: %w", err)
	}
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%w: chunk array is empty, run chunk first", domain.ErrEmptyCorpus)
	}

	if err := s.embedder.Ping(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	if err := s.vector.EnsureCollection(ctx, s.embedder.Dimensions()); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrVectorStoreUnavailable, err)
	}

	batch := make([]driven.Point, 0, s.batchSize)
	indexed := 0

	for _, chunk := range chunks {
		vec, err := s.embedder.Embed(ctx, chunk.Text)
		if err != nil {
			return indexed, fmt.Errorf("embed chunk %d: %w", chunk.ChunkID, err)
		}

		batch = append(batch, driven.Point{
			ID:      uint64(chunk.ChunkID),
			Vector:  vec,
			Payload: chunk.Payload(),
		})

		if len(batch) >= s.batchSize {
			if err := s.vector.Upsert(ctx, batch); err != nil {
				return indexed, fmt.Errorf("upsert batch: %w", err)
			}
			indexed += len(batch)
			logger.Debug("Indexed %d/%d chunks", indexed, len(chunks))
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := s.vector.Upsert(ctx, batch); err != nil {
			return indexed, fmt.Errorf("upsert final batch: %w", err)
		}
		indexed += len(batch)
	}

	return indexed, nil
}
