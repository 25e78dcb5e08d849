package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

// snippetRunes bounds how much chunk text a search result prints.
const snippetRunes = 160

var searchCmd = &cobra.Command{
	Use:   "search [question]",
	Short: "Retrieve the nearest chunks for a question",
	Long: `Embeds the question and prints the top-ranked chunks from the vector
store with their similarity scores. No answer is generated; use ask
or chat for that.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if askService == nil {
		return fmt.Errorf("search: %w", errNotConfigured)
	}

	hits, err := askService.Retrieve(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, hit := range hits {
		cmd.Printf("  [%d] %s (%.4f)\n", i+1, hit.Payload.Title, hit.Score)
		cmd.Printf("      Source: %s\n", hit.Payload.Source)
		if s := snippet(hit.Payload.Text); s != "" {
			cmd.Printf("      %s\n", s)
		}
		cmd.Println()
	}
	return nil
}

// snippet flattens chunk text to a single truncated line.
func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= snippetRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:snippetRunes]) + "…"
}
