package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path string, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "ppm: 20\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	writeConfig(t, path, "ppm: 32\n")

	select {
	case got, ok := <-w.Events:
		if !ok {
			t.Fatalf("events channel closed before delivering an event")
		}
		if filepath.Clean(got) != filepath.Clean(path) {
			t.Fatalf("event path: got %s, want %s", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event after writing the config file")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "ppm: 20\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	writeConfig(t, filepath.Join(dir, "notes.txt"), "unrelated")

	select {
	case got, ok := <-w.Events:
		if ok {
			t.Fatalf("unexpected event for unrelated file: %s", got)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

// Close must never race the watcher goroutine's sends; the goroutine owns
// the channels and closes them on exit.
func TestWatcherCloseDuringWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "ppm: 20\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			// Plain WriteFile: Fatalf is not allowed off the test goroutine.
			_ = os.WriteFile(path, []byte("ppm: 20\n"), 0o644)
			time.Sleep(time.Millisecond)
		}
	}()

	time.Sleep(10 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	// Both channels drain to closed once the goroutine exits.
	deadline := time.After(2 * time.Second)
	for open := true; open; {
		select {
		case _, ok := <-w.Events:
			open = ok
		case <-deadline:
			t.Fatalf("events channel never closed after Close")
		}
	}
	for open := true; open; {
		select {
		case _, ok := <-w.Errors:
			open = ok
		case <-deadline:
			t.Fatalf("errors channel never closed after Close")
		}
	}

	wg.Wait()
}
