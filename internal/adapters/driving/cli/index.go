package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Embed chunks and upsert them into the vector store",
	Long: `Embeds every chunk with the configured embedding model and upserts
the vectors into Qdrant in batches. Points are keyed by chunk id, so
re-running the command overwrites the previous index.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if indexService == nil {
		return fmt.Errorf("index: %w", errNotConfigured)
	}

	n, err := indexService.Index(context.Background())
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	cmd.Printf("Indexed %d chunks.\n", n)
	return nil
}
