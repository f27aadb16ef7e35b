// Package watcher re-triggers generation when screenshots change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/user/storeshots/pkg/ports"
)

// DefaultDebounce coalesces the burst of events an editor or exporter
// produces when saving a single file.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors a screenshots directory and reports changed files
// matching a doublestar pattern.
type Watcher struct {
	dir      string
	pattern  string
	debounce time.Duration
	logger   ports.Logger
	fsw      *fsnotify.Watcher

	mu     sync.Mutex
	timers map[string]*time.Timer
	once   sync.Once
}

// New starts watching dir. Events that happen before Run is called are kept.
func New(dir, pattern string, logger ports.Logger) (*Watcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		pattern:  pattern,
		debounce: DefaultDebounce,
		logger:   logger.WithComponent("watcher"),
		fsw:      fsw,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// SetDebounce changes the quiet period before a change is reported.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run calls onChange once per changed file after its events have settled.
// Callbacks run sequentially on the caller's goroutine. Run returns when
// ctx is cancelled or the watcher fails.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.Close()

	fire := make(chan string, 16)

	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-fire:
			onChange(path)

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			w.logger.Debug("Change detected: %s", event.Name)
			w.schedule(ctx, event.Name, fire)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.dir, err)
		}
	}
}

// Close stops the watcher and pending timers.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		w.mu.Lock()
		for path, t := range w.timers {
			t.Stop()
			delete(w.timers, path)
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}

// schedule (re)starts the debounce timer of path.
func (w *Watcher) schedule(ctx context.Context, path string, fire chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case fire <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) matches(name string) bool {
	rel, err := filepath.Rel(w.dir, name)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(w.pattern, filepath.ToSlash(rel))
	return err == nil && ok
}
