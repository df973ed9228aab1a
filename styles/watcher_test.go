package styles

import (
	"testing"
	"time"
)

func TestWatcherReloadsChangedTheme(t *testing.T) {
	dir := t.TempDir()
	restore := SetThemesDirFunc(func() string { return dir })
	defer SetThemesDirFunc(restore)
	defer ClearCustomThemes()

	reloaded := make(chan string, 1)
	w, err := NewWatcher(func(name string) {
		select {
		case reloaded <- name:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeTheme(t, dir, "sea.yaml", validThemeYAML)

	select {
	case name := <-reloaded:
		if name != "sea" {
			t.Errorf("reloaded theme = %q, want %q", name, "sea")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for theme reload")
	}

	if !IsCustomTheme("sea") {
		t.Error("sea should be registered after reload")
	}
}

func TestWatcherIgnoresInvalidTheme(t *testing.T) {
	dir := t.TempDir()
	restore := SetThemesDirFunc(func() string { return dir })
	defer SetThemesDirFunc(restore)
	defer ClearCustomThemes()

	reloaded := make(chan string, 1)
	w, err := NewWatcher(func(name string) { reloaded <- name })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeTheme(t, dir, "bad.yaml", "name: Bad\nversion: \"1\"\n")

	select {
	case name := <-reloaded:
		t.Fatalf("invalid theme %q should not trigger a reload", name)
	case <-time.After(500 * time.Millisecond):
	}

	if IsCustomTheme("bad") {
		t.Error("invalid theme must not be registered")
	}
}

func TestWatcherCloseCancelsPendingReload(t *testing.T) {
	dir := t.TempDir()
	restore := SetThemesDirFunc(func() string { return dir })
	defer SetThemesDirFunc(restore)
	defer ClearCustomThemes()

	reloaded := make(chan string, 1)
	w, err := NewWatcher(func(name string) { reloaded <- name })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// Close inside the debounce window: the scheduled reload must be
	// cancelled, not fire into a closed watcher.
	writeTheme(t, dir, "late.yaml", validThemeYAML)
	time.Sleep(debounceWindow / 4)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case name := <-reloaded:
		t.Fatalf("reload %q fired after Close", name)
	case <-time.After(3 * debounceWindow):
	}

	if IsCustomTheme("late") {
		t.Error("no theme must be registered after Close")
	}
}
