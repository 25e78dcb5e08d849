package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/admitlab/admit-cli/internal/core/services"
)

// Config is the full pipeline configuration.
type Config struct {
	Data      DataConfig      `toml:"data"`
	Chunking  ChunkingConfig  `toml:"chunking"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Qdrant    QdrantConfig    `toml:"qdrant"`
	LLM       LLMConfig       `toml:"llm"`
	Retrieval RetrievalConfig `toml:"retrieval"`
}

// DataConfig locates the corpus inputs and pipeline artefacts.
type DataConfig struct {
	PDFDir        string `toml:"pdf_dir"`
	URLsFile      string `toml:"urls_file"`
	DocumentsPath string `toml:"documents_path"`
	ChunksPath    string `toml:"chunks_path"`
	GoldPath      string `toml:"gold_path"`
}

// ChunkingConfig controls how document text is split.
type ChunkingConfig struct {
	MaxChars     int `toml:"max_chars"`
	OverlapChars int `toml:"overlap_chars"`
}

// EmbeddingConfig selects the embedding model.
type EmbeddingConfig struct {
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	Dimensions int    `toml:"dimensions"`
}

// QdrantConfig locates the vector store.
type QdrantConfig struct {
	Addr       string `toml:"addr"`
	Collection string `toml:"collection"`
	BatchSize  int    `toml:"batch_size"`
}

// LLMConfig selects the answer generation model.
type LLMConfig struct {
	BaseURL     string  `toml:"base_url"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

// RetrievalConfig tunes search and the confidence gate.
type RetrievalConfig struct {
	TopK            int     `toml:"top_k"`
	MinScore        float64 `toml:"min_score"`
	MaxContextChars int     `toml:"max_context_chars"`

	// FallbackSites are suggested to the user when a question is refused.
	FallbackSites []string `toml:"fallback_sites"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Data: DataConfig{
			PDFDir:        "data/raw/pdfs",
			URLsFile:      "data/raw/urls.txt",
			DocumentsPath: "data/processed/documents.json",
			ChunksPath:    "data/processed/chunks.json",
			GoldPath:      "data/eval/gold_qa.json",
		},
		Chunking: ChunkingConfig{
			MaxChars:     1600,
			OverlapChars: 250,
		},
		Embedding: EmbeddingConfig{
			BaseURL:    "http://localhost:11434",
			Model:      "nomic-embed-text",
			Dimensions: 768,
		},
		Qdrant: QdrantConfig{
			Addr:       "localhost:6334",
			Collection: "admissions_chunks",
			BatchSize:  256,
		},
		LLM: LLMConfig{
			BaseURL:     "http://localhost:11434",
			Model:       "qwen2.5:7b-instruct",
			Temperature: 0.2,
			MaxTokens:   512,
		},
		Retrieval: RetrievalConfig{
			TopK:            services.DefaultTopK,
			MinScore:        services.DefaultMinScore,
			MaxContextChars: services.DefaultMaxContextChars,
			FallbackSites:   []string{"admissions.hse.ru", "ba.hse.ru"},
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".admit", "config.toml"), nil
}

// Load reads the config at path, layering it over the defaults. An empty
// path means the per-user location; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path with restricted permissions, creating
// parent directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
