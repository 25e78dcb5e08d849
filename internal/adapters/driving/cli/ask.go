package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question from the indexed corpus",
	Long: `Retrieves context for the question and generates an answer grounded
in it. When the best retrieved chunk scores below the confidence
threshold the command prints a refusal instead of guessing.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if askService == nil {
		return fmt.Errorf("ask: %w", errNotConfigured)
	}

	answer, err := askService.Ask(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer.Text)

	if answer.Grounded && len(answer.Hits) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for i, hit := range answer.Hits {
			cmd.Printf("  [%d] %s (%.4f) %s\n", i+1, hit.Payload.Title, hit.Score, hit.Payload.Source)
		}
	}
	return nil
}
