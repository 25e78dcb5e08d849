// Package watcher re-runs pipeline work when corpus inputs change on
// disk. Bursts of filesystem events are debounced into a single trigger.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/admitlab/admit-cli/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last event
// before triggering. Editors and downloads touch files several times in
// quick succession; one trigger per burst is enough.
const DefaultDebounce = 2 * time.Second

// Watcher watches corpus input paths and calls a handler after changes
// settle.
type Watcher struct {
	paths    []string
	debounce time.Duration
	onChange func(ctx context.Context)
}

// New creates a watcher over the given paths. Directories are watched
// recursively one level deep (fsnotify semantics); files are watched via
// their parent directory.
func New(paths []string, debounce time.Duration, onChange func(ctx context.Context)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		paths:    paths,
		debounce: debounce,
		onChange: onChange,
	}
}

// Run blocks, dispatching debounced change triggers until the context is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	for _, path := range w.paths {
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		logger.Debug("Watching %s", path)
	}

	// The timer is created stopped; it only runs between the first event
	// of a burst and the trigger.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("Change detected: %s %s", event.Op, event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watch error: %v", err)

		case <-timer.C:
			logger.Info("Inputs changed, triggering")
			w.onChange(ctx)
		}
	}
}

// relevant filters out event noise: attribute-only changes and hidden
// files never affect the corpus.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return !strings.HasPrefix(filepath.Base(event.Name), ".")
}
