package services

import (
	"context"
	"fmt"

	"github.com/admitlab/admit-cli/internal/chunker"
	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
	"github.com/admitlab/admit-cli/internal/core/ports/driving"
	"github.com/admitlab/admit-cli/internal/logger"
)

// Ensure ChunkService implements the interface.
var _ driving.ChunkService = (*ChunkService)(nil)

// ChunkService splits the persisted documents into retrieval chunks.
type ChunkService struct {
	store        driven.DocumentStore
	maxChars     int
	overlapChars int
}

// NewChunkService creates the chunk stage. Zero sizes fall back to the
// builder defaults.
func NewChunkService(store driven.DocumentStore, maxChars, overlapChars int) *ChunkService {
	return &ChunkService{
		store:        store,
		maxChars:     maxChars,
		overlapChars: overlapChars,
	}
}

// Chunk loads the document array, splits every document and persists the
// combined chunk array. Chunk ids are global across documents and restart
// from zero on every run.
func (s *ChunkService) Chunk(ctx context.Context) (int, error) {
	logger.Section("Chunk")

	docs, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return 0, fmt.Errorf("load documents: %w", err)
	}
	if len(docs) == 0 {
		return 0, fmt.Errorf("%w: document array is empty, run ingest first", domain.ErrEmptyCorpus)
	}

	var opts []chunker.Option
	if s.maxChars > 0 {
		opts = append(opts, chunker.WithMaxChars(s.maxChars))
	}
	if s.overlapChars > 0 {
		opts = append(opts, chunker.WithOverlapChars(s.overlapChars))
	}
	builder := chunker.NewBuilder(opts...)

	var chunks []domain.Chunk
	for _, doc := range docs {
		docChunks := builder.Split(doc)
		logger.Debug("Document %s: %d chunks", doc.ID, len(docChunks))
		chunks = append(chunks, docChunks...)
	}

	if err := s.store.SaveChunks(ctx, chunks); err != nil {
		return 0, fmt.Errorf("save chunks: %w", err)
	}
	return len(chunks), nil
}
