package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TriggersOnceAfterBurst(t *testing.T) {
	dir := t.TempDir()

	var triggers atomic.Int32
	w := New([]string{dir}, 50*time.Millisecond, func(context.Context) {
		triggers.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register.
	time.Sleep(100 * time.Millisecond)

	// A burst of writes should collapse into a single trigger.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.pdf"), []byte("x"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return triggers.Load() == 1
	}, 2*time.Second, 20*time.Millisecond)

	// No further triggers without further events.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), triggers.Load())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRun_IgnoresHiddenFiles(t *testing.T) {
	dir := t.TempDir()

	var triggers atomic.Int32
	w := New([]string{dir}, 50*time.Millisecond, func(context.Context) {
		triggers.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.swp"), []byte("x"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), triggers.Load())
}

func TestRun_MissingPath(t *testing.T) {
	w := New([]string{"/does/not/exist"}, 0, func(context.Context) {})

	err := w.Run(context.Background())
	require.Error(t, err)
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "rules.pdf", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: "urls.txt", Op: fsnotify.Create}, true},
		{"remove", fsnotify.Event{Name: "rules.pdf", Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: "rules.pdf", Op: fsnotify.Chmod}, false},
		{"write and chmod", fsnotify.Event{Name: "rules.pdf", Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"hidden file", fsnotify.Event{Name: "dir/.hidden", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}
