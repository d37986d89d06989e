package dev

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// WatcherConfig configures the descriptor file watcher.
type WatcherConfig struct {
	// Paths are the files or directories to watch.
	Paths []string

	// Ignore patterns to skip (matched against base names).
	Ignore []string

	// Interval is the polling interval.
	Interval time.Duration

	// Debounce is the minimum gap between change notifications.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"dist",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls descriptor files for modification-time changes.
// The corpus carries no inotify dependency, so polling keeps the
// watcher portable.
type Watcher struct {
	config   WatcherConfig
	onChange func(path string)

	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
	lastFire   time.Time
}

// NewWatcher creates a new file watcher that calls onChange with the
// path of each changed file.
func NewWatcher(config WatcherConfig, onChange func(path string)) *Watcher {
	if config.Interval == 0 {
		config.Interval = 200 * time.Millisecond
	}
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{
		config:     config,
		onChange:   onChange,
		timestamps: make(map[string]time.Time),
	}
}

// Start begins polling. The first scan records baseline timestamps
// without firing notifications.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})

	w.scan(false)
	go w.loop(w.stopCh)
}

// Stop stops polling.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
}

// loop polls until the watcher is stopped.
func (w *Watcher) loop(stopCh chan struct{}) {
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			w.mu.Lock()
			w.scan(true)
			w.mu.Unlock()
		}
	}
}

// scan walks the watched paths and compares modification times.
// Callers hold w.mu.
func (w *Watcher) scan(notify bool) {
	for _, root := range w.config.Paths {
		filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if w.ignored(filepath.Base(path)) {
				return nil
			}

			mtime := info.ModTime()
			prev, seen := w.timestamps[path]
			w.timestamps[path] = mtime

			if notify && seen && mtime.After(prev) {
				w.fire(path)
			}
			return nil
		})
	}
}

// fire invokes the change callback, respecting the debounce gap.
// Callers hold w.mu.
func (w *Watcher) fire(path string) {
	now := time.Now()
	if now.Sub(w.lastFire) < w.config.Debounce {
		return
	}
	w.lastFire = now
	if w.onChange != nil {
		go w.onChange(path)
	}
}

// ignored reports whether a base name matches an ignore pattern.
func (w *Watcher) ignored(name string) bool {
	for _, pattern := range w.config.Ignore {
		if strings.ContainsAny(pattern, "*?[") {
			if ok, _ := filepath.Match(pattern, name); ok {
				return true
			}
		} else if pattern == name {
			return true
		}
	}
	return false
}
