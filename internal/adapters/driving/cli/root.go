// Package cli implements the admit command-line interface.
//
// Commands are thin: they wire configuration into core services and print
// results. All pipeline and answering logic lives in core/services.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/admitlab/admit-cli/internal/adapters/driven/config/file"
	"github.com/admitlab/admit-cli/internal/adapters/driven/embedding/ollama"
	llmollama "github.com/admitlab/admit-cli/internal/adapters/driven/llm/ollama"
	"github.com/admitlab/admit-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/admitlab/admit-cli/internal/adapters/driven/storage/sqlite"
	"github.com/admitlab/admit-cli/internal/adapters/driven/vector/qdrant"
	"github.com/admitlab/admit-cli/internal/connectors/web"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
	"github.com/admitlab/admit-cli/internal/core/ports/driving"
	"github.com/admitlab/admit-cli/internal/core/services"
	"github.com/admitlab/admit-cli/internal/logger"
	pdfnorm "github.com/admitlab/admit-cli/internal/normalisers/pdf"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool
)

// Services the commands run against. Wired lazily by ensureServices so
// tests can inject fakes, and commands like version never touch config.
var (
	appConfig       *file.Config
	ingestService   driving.IngestService
	chunkService    driving.ChunkService
	indexService    driving.IndexService
	askService      driving.AskService
	evalService     driving.EvalService
	transcriptStore driven.TranscriptStore

	// llmService is kept for the chat preflight ping; answering goes
	// through askService.
	llmService driven.LLMService

	servicesReady bool
	closers       []func() error
)

var rootCmd = &cobra.Command{
	Use:   "admit",
	Short: "Question answering over university admissions documents",
	Long: `Admit ingests admissions PDFs and web pages, indexes them in a
vector store, and answers applicant questions strictly from the
retrieved context. Questions the corpus cannot support are refused
with a pointer to the official admissions sites.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ~/.admit/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and releases any wired resources.
func Execute() error {
	defer func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("close: %v", err)
			}
		}
	}()
	return rootCmd.Execute()
}

// ensureServices builds the full service graph from configuration. It is
// idempotent; tests mark servicesReady after injecting fakes.
func ensureServices() error {
	if servicesReady {
		return nil
	}

	path := configPath
	if path == "" {
		path = os.Getenv("ADMIT_CONFIG")
	}
	if path == "" {
		var err error
		if path, err = file.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := file.Load(path)
	if err != nil {
		return err
	}
	appConfig = &cfg

	store := jsonfile.New(jsonfile.Config{
		DocumentsPath: cfg.Data.DocumentsPath,
		ChunksPath:    cfg.Data.ChunksPath,
		GoldPath:      cfg.Data.GoldPath,
	})
	extractor := pdfnorm.New()
	fetcher := web.New()

	embedder := ollama.NewEmbeddingService(ollama.Config{
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
	})
	llm := llmollama.NewLLMService(llmollama.LLMConfig{
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
	})
	llmService = llm

	vector, err := qdrant.New(qdrant.Config{
		Addr:       cfg.Qdrant.Addr,
		Collection: cfg.Qdrant.Collection,
	})
	if err != nil {
		return err
	}
	closers = append(closers, vector.Close)

	ingestService = services.NewIngestService(extractor, fetcher, store, cfg.Data.PDFDir, cfg.Data.URLsFile)
	chunkService = services.NewChunkService(store, cfg.Chunking.MaxChars, cfg.Chunking.OverlapChars)
	indexService = services.NewIndexService(store, embedder, vector, cfg.Qdrant.BatchSize)
	askService = services.NewAskService(embedder, vector, llm, services.AskConfig{
		TopK:            cfg.Retrieval.TopK,
		MinScore:        cfg.Retrieval.MinScore,
		MaxContextChars: cfg.Retrieval.MaxContextChars,
		FallbackSites:   cfg.Retrieval.FallbackSites,
		Temperature:     cfg.LLM.Temperature,
		MaxTokens:       cfg.LLM.MaxTokens,
	})
	evalService = services.NewEvalService(store, askService, cfg.Retrieval.TopK)

	// Transcripts are optional: chat still works when the store fails.
	if ts, err := sqlite.NewTranscriptStore(""); err != nil {
		logger.Warn("transcript store disabled: %v", err)
	} else {
		transcriptStore = ts
		closers = append(closers, ts.Close)
	}

	servicesReady = true
	return nil
}

var errNotConfigured = errors.New("service not configured")
