package prefabs

import (
	"log"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher collects the prefab and script files changed on disk until the
// host drains them between ticks.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	pending map[string]time.Time
	lastErr error
	closed  bool
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{fs: fw, done: make(chan struct{}), pending: map[string]time.Time{}}
	go w.run()
	return w, nil
}

// Drain returns the base names of files changed since the last call, sorted,
// once each has been quiet for the debounce interval. Names still settling
// stay pending.
func (w *Watcher) Drain() []string {
	return w.drainAt(time.Now())
}

func (w *Watcher) drainAt(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var names []string
	for name, at := range w.pending {
		if now.Sub(at) < debounce {
			continue
		}
		names = append(names, name)
		delete(w.pending, name)
	}
	slices.Sort(names)
	return names
}

// Err returns and clears the last error reported by the file system watcher.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.lastErr
	w.lastErr = nil
	return err
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.note(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("prefabs: watch: %v", err)
			w.mu.Lock()
			w.lastErr = err
			w.mu.Unlock()
		}
	}
}

// note records a relevant change. Repeated writes to one file push its
// settle time back.
func (w *Watcher) note(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	if !watched(event.Name) {
		return
	}
	w.mu.Lock()
	w.pending[filepath.Base(event.Name)] = time.Now()
	w.mu.Unlock()
}

func watched(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
