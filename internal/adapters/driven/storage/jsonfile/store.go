// Package jsonfile persists pipeline artefacts as JSON arrays on disk.
// Documents and chunks are written whole in a single pass, so a re-run of
// a stage atomically replaces the previous output.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Default artefact locations, relative to the working directory.
const (
	DefaultDocumentsPath = "data/processed/documents.json"
	DefaultChunksPath    = "data/processed/chunks.json"
	DefaultGoldPath      = "data/eval/gold_qa.json"
)

// Config holds the artefact file paths.
type Config struct {
	DocumentsPath string
	ChunksPath    string
	GoldPath      string
}

// Store reads and writes the JSON corpus artefacts.
type Store struct {
	documentsPath string
	chunksPath    string
	goldPath      string
}

// New creates a store over the given paths, falling back to the defaults
// for any path left empty.
func New(cfg Config) *Store {
	if cfg.DocumentsPath == "" {
		cfg.DocumentsPath = DefaultDocumentsPath
	}
	if cfg.ChunksPath == "" {
		cfg.ChunksPath = DefaultChunksPath
	}
	if cfg.GoldPath == "" {
		cfg.GoldPath = DefaultGoldPath
	}
	return &Store{
		documentsPath: cfg.DocumentsPath,
		chunksPath:    cfg.ChunksPath,
		goldPath:      cfg.GoldPath,
	}
}

// SaveDocuments writes the full document array.
func (s *Store) SaveDocuments(_ context.Context, docs []domain.Document) error {
	return writeJSON(s.documentsPath, docs)
}

// LoadDocuments reads the document array. Type values are re-parsed
// leniently, so hand-edited or older artefact files with an unexpected
// type degrade to "unknown" instead of leaking arbitrary strings.
func (s *Store) LoadDocuments(_ context.Context) ([]domain.Document, error) {
	var docs []domain.Document
	if err := readJSON(s.documentsPath, &docs); err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].Type = domain.ParseDocumentType(string(docs[i].Type))
	}
	return docs, nil
}

// SaveChunks writes the full chunk array.
func (s *Store) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	return writeJSON(s.chunksPath, chunks)
}

// LoadChunks reads the chunk array, with the same lenient type parsing
// as LoadDocuments.
func (s *Store) LoadChunks(_ context.Context) ([]domain.Chunk, error) {
	var chunks []domain.Chunk
	if err := readJSON(s.chunksPath, &chunks); err != nil {
		return nil, err
	}
	for i := range chunks {
		chunks[i].Type = domain.ParseDocumentType(string(chunks[i].Type))
	}
	return chunks, nil
}

// LoadGold reads the gold question/expected-document pairs.
func (s *Store) LoadGold(_ context.Context) ([]domain.GoldExample, error) {
	var gold []domain.GoldExample
	if err := readJSON(s.goldPath, &gold); err != nil {
		return nil, err
	}
	return gold, nil
}

// writeJSON serialises v once and writes it with a trailing newline.
// HTML escaping is off so Cyrillic text and URLs stay readable in the
// artefact files.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s (run the producing stage first)", domain.ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
