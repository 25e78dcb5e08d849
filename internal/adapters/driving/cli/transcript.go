package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var transcriptLimit int

var transcriptCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Show recent chat exchanges",
	RunE:  runTranscript,
}

func init() {
	transcriptCmd.Flags().IntVarP(&transcriptLimit, "limit", "n", 20, "maximum number of exchanges")
	rootCmd.AddCommand(transcriptCmd)
}

func runTranscript(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if transcriptStore == nil {
		return fmt.Errorf("transcript: %w", errNotConfigured)
	}

	exchanges, err := transcriptStore.Recent(context.Background(), transcriptLimit)
	if err != nil {
		return fmt.Errorf("transcript failed: %w", err)
	}

	if len(exchanges) == 0 {
		cmd.Println("No exchanges recorded.")
		return nil
	}

	for _, ex := range exchanges {
		marker := " "
		if !ex.Grounded {
			marker = "×"
		}
		cmd.Printf("%s %s [%s]\n", ex.AskedAt.Local().Format("2006-01-02 15:04"), marker, shortID(ex.SessionID))
		cmd.Printf("  Q: %s\n", ex.Question)
		cmd.Printf("  A: %s\n", ex.Answer)
		cmd.Println()
	}
	return nil
}

// shortID abbreviates a session id for the listing.
func shortID(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
