package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admitlab/admit-cli/internal/normalisers/pdf"
)

// pdfPreflight verifies the external extraction tool before any ingest
// work starts. Swapped in tests.
var pdfPreflight = pdf.CheckAvailable

// checkPDFTool turns a missing pdftotext into an actionable error.
func checkPDFTool() error {
	if err := pdfPreflight(); err != nil {
		return fmt.Errorf("%w\n\n%s", err, pdf.InstallInstructions())
	}
	return nil
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Parse PDFs and fetch web pages into the document set",
	Long: `Extracts text from every PDF in the configured directory and fetches
every page listed in the URLs file, then writes the combined document
set to disk. A failed extraction or fetch aborts the whole run.`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if ingestService == nil {
		return fmt.Errorf("ingest: %w", errNotConfigured)
	}
	if err := checkPDFTool(); err != nil {
		return err
	}

	n, err := ingestService.Ingest(context.Background())
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d documents.\n", n)
	return nil
}
