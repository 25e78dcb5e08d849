package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[chunking]
max_chars = 800

[retrieval]
min_score = 0.65
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Chunking.MaxChars)
	assert.InDelta(t, 0.65, cfg.Retrieval.MinScore, 1e-9)

	// Untouched sections keep their defaults.
	assert.Equal(t, 250, cfg.Chunking.OverlapChars)
	assert.Equal(t, "admissions_chunks", cfg.Qdrant.Collection)
	assert.Equal(t, "nomic-embed-text", cfg.Embedding.Model)
}

func TestLoad_ExplicitZeroMinScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[retrieval]
min_score = 0.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	// An explicit zero disables the gate; it must not be mistaken for
	// "unset" and bumped back to the default.
	assert.Zero(t, cfg.Retrieval.MinScore)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[chunking\nmax_chars = "), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.LLM.Model = "llama3.2"
	cfg.Retrieval.FallbackSites = []string{"example.edu"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefault_GateAndBudget(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.InDelta(t, 0.5, cfg.Retrieval.MinScore, 1e-9)
	assert.Equal(t, 6000, cfg.Retrieval.MaxContextChars)
	assert.Equal(t, 1600, cfg.Chunking.MaxChars)
	assert.Equal(t, 250, cfg.Chunking.OverlapChars)
	assert.Equal(t, 256, cfg.Qdrant.BatchSize)
}
