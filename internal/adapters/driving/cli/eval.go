package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Measure retrieval quality against the gold question set",
	Long: `Runs every gold question through retrieval and reports how often the
expected document appears as the top hit (hit@1) and anywhere in the
top K hits (hit@K).`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if evalService == nil {
		return fmt.Errorf("eval: %w", errNotConfigured)
	}

	report, err := evalService.Evaluate(context.Background())
	if err != nil {
		return fmt.Errorf("eval failed: %w", err)
	}

	cmd.Printf("Questions: %d\n", report.Total)
	cmd.Printf("hit@1: %.3f\n", report.HitAt1)
	cmd.Printf("hit@%d: %.3f\n", report.K, report.HitAtK)
	return nil
}
