package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Run ingest, chunk and index in sequence",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := ensureServices(); err != nil {
			return err
		}
		return runPipeline(context.Background(), cmd)
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}

// runPipeline rebuilds the corpus from scratch: documents, chunks, then
// the vector index. Shared with the watch command.
func runPipeline(ctx context.Context, cmd *cobra.Command) error {
	if ingestService == nil || chunkService == nil || indexService == nil {
		return fmt.Errorf("pipeline: %w", errNotConfigured)
	}
	if err := checkPDFTool(); err != nil {
		return err
	}

	docs, err := ingestService.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	chunks, err := chunkService.Chunk(ctx)
	if err != nil {
		return fmt.Errorf("chunk failed: %w", err)
	}
	points, err := indexService.Index(ctx)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	cmd.Printf("Pipeline complete: %d documents, %d chunks, %d points.\n", docs, chunks, points)
	return nil
}
