package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/admitlab/admit-cli/internal/logger"
	"github.com/admitlab/admit-cli/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the index when corpus inputs change",
	Long: `Watches the PDF directory and the URLs file and re-runs the full
ingest-chunk-index pipeline after changes settle. Stops on Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before rebuilding")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if appConfig == nil {
		return fmt.Errorf("watch: %w", errNotConfigured)
	}

	paths := []string{appConfig.Data.PDFDir, appConfig.Data.URLsFile}
	w := watcher.New(paths, watchDebounce, func(ctx context.Context) {
		if err := runPipeline(ctx, cmd); err != nil {
			logger.Warn("rebuild failed: %v", err)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s and %s.\n", appConfig.Data.PDFDir, appConfig.Data.URLsFile)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
