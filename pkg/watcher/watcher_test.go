package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/storeshots/pkg/adapters/logger"
)

func startWatcher(t *testing.T, dir, pattern string) (<-chan string, context.CancelFunc, <-chan error) {
	t.Helper()

	w, err := New(dir, pattern, logger.NewNoop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) { changes <- path })
	}()
	t.Cleanup(cancel)

	return changes, cancel, done
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	changes, _, _ := startWatcher(t, dir, "0*.png")

	path := filepath.Join(dir, "01_home.png")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-changes:
		if got != path {
			t.Errorf("changed path = %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	select {
	case got := <-changes:
		t.Errorf("expected a single notification, got extra %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_IgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	changes, _, _ := startWatcher(t, dir, "0*.png")

	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cover.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changes:
		t.Errorf("unexpected change %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_SeparateFiles(t *testing.T) {
	dir := t.TempDir()
	changes, _, _ := startWatcher(t, dir, "*.png")

	for _, name := range []string{"01_home.png", "02_list.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	seen := map[string]bool{}
	deadline := time.After(2 * time.Second)
	for len(seen) < 2 {
		select {
		case got := <-changes:
			seen[filepath.Base(got)] = true
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	_, cancel, done := startWatcher(t, dir, "*.png")

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		pattern string
	}{
		{"missing dir", filepath.Join(t.TempDir(), "nope"), "*.png"},
		{"bad pattern", t.TempDir(), "[.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.dir, tt.pattern, logger.NewNoop()); err == nil {
				t.Error("expected error")
			}
		})
	}
}
