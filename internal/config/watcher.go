package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sjoeboo/msgbox/internal/logging"
)

// debounceWindow batches the burst of events an editor produces on save.
const debounceWindow = 100 * time.Millisecond

// Watcher monitors the settings file and delivers freshly loaded settings
// whenever it changes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	changes   chan Settings
	closeCh   chan struct{}
	closeOnce sync.Once
	log       *slog.Logger

	lastModified time.Time
}

// NewWatcher creates a watcher for the settings file at path. The file does
// not need to exist yet, but its directory does.
func NewWatcher(path string) (*Watcher, error) {
	resolved := resolve(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the parent directory so atomic renames are seen.
	dir := filepath.Dir(resolved)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	var lastMod time.Time
	if info, err := os.Stat(resolved); err == nil {
		lastMod = info.ModTime()
	}

	return &Watcher{
		watcher:      w,
		path:         resolved,
		changes:      make(chan Settings, 1),
		closeCh:      make(chan struct{}),
		log:          logging.ForComponent(logging.CompConfig),
		lastModified: lastMod,
	}, nil
}

// resolve makes path absolute and follows symlinks so event paths compare
// equal to it.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if r, err := filepath.EvalSymlinks(abs); err == nil {
		return r
	}
	// The file may not exist yet; resolve the directory instead.
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs))
	}
	return abs
}

// Start begins watching for file changes (non-blocking).
func (cw *Watcher) Start() {
	go cw.watchLoop()
}

// Changes delivers the reloaded settings after each change. Only the latest
// pending settings are kept. The channel is closed when the watcher stops.
func (cw *Watcher) Changes() <-chan Settings {
	return cw.changes
}

func (cw *Watcher) watchLoop() {
	defer close(cw.changes)
	debounce := time.NewTimer(0)
	debounce.Stop()

	for {
		select {
		case <-cw.closeCh:
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if resolve(event.Name) != cw.path {
				continue
			}
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				continue
			}
			debounce.Reset(debounceWindow)

		case <-debounce.C:
			cw.checkAndNotify()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("config_watch_error", slog.String("err", err.Error()))
		}
	}
}

func (cw *Watcher) checkAndNotify() {
	info, err := os.Stat(cw.path)
	if err != nil {
		// Temporarily gone during an atomic rename.
		return
	}
	if !info.ModTime().After(cw.lastModified) {
		return
	}
	cw.lastModified = info.ModTime()

	s, err := Load(cw.path)
	if err != nil {
		cw.log.Warn("config_reload_failed", slog.String("path", cw.path), slog.String("err", err.Error()))
		return
	}
	cw.log.Debug("config_reloaded", slog.String("path", cw.path), slog.String("language", s.Language))

	// Replace a pending, unread update with the newer one.
	select {
	case <-cw.changes:
	default:
	}
	select {
	case cw.changes <- s:
	default:
	}
}

// Close stops the watcher and releases resources.
func (cw *Watcher) Close() error {
	cw.closeOnce.Do(func() {
		close(cw.closeCh)
	})
	return cw.watcher.Close()
}
