package services

import (
	"context"
	"fmt"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
)

// mockDocStore is an in-memory DocumentStore.
type mockDocStore struct {
	docs   []domain.Document
	chunks []domain.Chunk
	gold   []domain.GoldExample

	saveDocsErr   error
	loadDocsErr   error
	saveChunksErr error
	loadChunksErr error
	loadGoldErr   error
}

func (m *mockDocStore) SaveDocuments(_ context.Context, docs []domain.Document) error {
	if m.saveDocsErr != nil {
		return m.saveDocsErr
	}
	m.docs = docs
	return nil
}

func (m *mockDocStore) LoadDocuments(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.loadDocsErr
}

func (m *mockDocStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if m.saveChunksErr != nil {
		return m.saveChunksErr
	}
	m.chunks = chunks
	return nil
}

func (m *mockDocStore) LoadChunks(_ context.Context) ([]domain.Chunk, error) {
	return m.chunks, m.loadChunksErr
}

func (m *mockDocStore) LoadGold(_ context.Context) ([]domain.GoldExample, error) {
	return m.gold, m.loadGoldErr
}

// mockEmbedder returns a fixed vector for every text.
type mockEmbedder struct {
	vector   []float32
	embedErr error
	pingErr  error
	calls    int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if m.vector == nil {
		return []float32{1, 0, 0}, nil
	}
	return m.vector, nil
}

func (m *mockEmbedder) Dimensions() int              { return 3 }
func (m *mockEmbedder) ModelName() string            { return "mock-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return m.pingErr }
func (m *mockEmbedder) Close() error                 { return nil }

// mockVector records upserts and serves canned query hits.
type mockVector struct {
	hits    []domain.QueryHit
	upserts [][]driven.Point

	ensureErr error
	upsertErr error
	queryErr  error

	ensuredDim int
}

func (m *mockVector) EnsureCollection(_ context.Context, dim int) error {
	m.ensuredDim = dim
	return m.ensureErr
}

func (m *mockVector) Upsert(_ context.Context, points []driven.Point) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	batch := make([]driven.Point, len(points))
	copy(batch, points)
	m.upserts = append(m.upserts, batch)
	return nil
}

func (m *mockVector) Query(_ context.Context, _ []float32, _ int) ([]domain.QueryHit, error) {
	return m.hits, m.queryErr
}

func (m *mockVector) Close() error { return nil }

// mockLLM counts calls and records the last messages it saw.
type mockLLM struct {
	reply    string
	chatErr  error
	calls    int
	lastMsgs []driven.ChatMessage
	lastOpts driven.ChatOptions
}

func (m *mockLLM) Chat(_ context.Context, msgs []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.calls++
	m.lastMsgs = msgs
	m.lastOpts = opts
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.reply, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockExtractor maps paths to canned text.
type mockExtractor struct {
	texts map[string]string
	err   error
}

func (m *mockExtractor) Extract(_ context.Context, path string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	text, ok := m.texts[path]
	if !ok {
		return "", fmt.Errorf("no canned text for %s", path)
	}
	return text, nil
}

// mockFetcher maps URLs to canned pages.
type mockFetcher struct {
	pages map[string][2]string // url -> {title, text}
	err   error
}

func (m *mockFetcher) Fetch(_ context.Context, url string) (string, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	page, ok := m.pages[url]
	if !ok {
		return "", "", fmt.Errorf("no canned page for %s", url)
	}
	return page[0], page[1], nil
}
