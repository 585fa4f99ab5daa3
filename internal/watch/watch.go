// Package watch re-runs a callback whenever a single file is rewritten.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher monitors one file through its parent directory, so editors that
// replace the file by rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context)
	log      zerolog.Logger

	mu    sync.Mutex
	timer *time.Timer
	wg    sync.WaitGroup

	runMu sync.Mutex // held while onChange runs; callbacks never overlap
}

// New returns a Watcher calling onChange at most once per debounce window
// after path is written or created. Calls to onChange are serialized.
func New(path string, debounce time.Duration, onChange func(ctx context.Context), log zerolog.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		log:      log.With().Str("component", "watch").Str("path", path).Logger(),
	}
}

// Run watches until ctx is done. It returns an error only if the watch
// cannot be set up; runtime watcher errors are logged and skipped.
// Callbacks still pending when ctx ends are cancelled and waited for.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.log.Debug().Str("dir", dir).Msg("watching")

	defer w.stop()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.runMu.Lock()
		defer w.runMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		w.onChange(ctx)
	})
}

// stop cancels a pending callback and waits for a running one.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.mu.Unlock()
	w.wg.Wait()
}
