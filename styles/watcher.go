package styles

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces editor write bursts into a single reload.
const debounceWindow = 100 * time.Millisecond

// Watcher watches the custom themes directory and re-registers themes when
// their files change, notifying a callback so the UI can rebuild its styles.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onReload func(name string)

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	stopCh chan struct{}
}

// NewWatcher creates a watcher over the themes directory. The callback is
// invoked from the watcher goroutine with the reloaded theme name; callers
// that live inside a bubbletea program should forward it as a message
// rather than touching model state directly.
func NewWatcher(onReload func(name string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		onReload: onReload,
		timers:   make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
	}

	if dir := ThemesDir(); dir != "" {
		// A missing directory is fine; there is just nothing to watch.
		_ = fw.Add(dir)
	}

	go w.loop()
	return w, nil
}

// Close stops the watcher and cancels any pending debounced reloads, so
// no registration fires after close.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = nil
	w.mu.Unlock()

	close(w.stopCh)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			ext := filepath.Ext(event.Name)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			w.scheduleReload(event.Name, ext)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) scheduleReload(path, ext string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(debounceWindow, func() {
		theme, err := LoadThemeFile(path)
		if err != nil {
			// Half-written or invalid file; keep the previous registration.
			return
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)

		w.mu.Lock()
		if w.closed {
			w.mu.Unlock()
			return
		}
		RegisterCustomTheme(ThemeName(name), theme)
		w.mu.Unlock()

		if w.onReload != nil {
			w.onReload(name)
		}
	})
}
