// Package watcher reports edits to the config file.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/pubsub"
)

// DefaultDebounce is the quiet period after the last write before a change
// is reported.
const DefaultDebounce = 250 * time.Millisecond

// Event says the config file at Path settled after one or more writes.
type Event struct {
	Path string
}

// Config configures a Watcher.
type Config struct {
	Path     string
	Debounce time.Duration
}

// DefaultConfig watches path with DefaultDebounce.
func DefaultConfig(path string) Config {
	return Config{Path: path, Debounce: DefaultDebounce}
}

// Watcher publishes an Event on its broker each time the file settles.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	name     string
	debounce time.Duration
	broker   *pubsub.Broker[Event]

	mu      sync.Mutex
	pending *time.Timer
	stopped bool
	done    chan struct{}
}

// New prepares a watcher. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Watcher{
		fs:       fsw,
		path:     cfg.Path,
		name:     filepath.Base(cfg.Path),
		debounce: cfg.Debounce,
		broker:   pubsub.NewBroker[Event](),
		done:     make(chan struct{}),
	}, nil
}

// Start watches the file's directory rather than the file, so saves that
// replace the file by rename are still seen.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	log.Debug(log.CatWatcher, "watching config", "path", w.path)
	go w.run()
	return nil
}

// Broker returns the broker Events are published on.
func (w *Watcher) Broker() *pubsub.Broker[Event] {
	return w.broker
}

// Stop releases the fsnotify handle and closes the broker. Later calls
// return nil.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.pending != nil {
		w.pending.Stop()
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fs.Close()
	w.broker.Close()
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.concerns(ev) {
				w.touch()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err, "path", w.path)
		}
	}
}

// touch restarts the quiet period.
func (w *Watcher) touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	stopped := w.stopped
	w.pending = nil
	w.mu.Unlock()
	if stopped {
		return
	}
	log.Debug(log.CatWatcher, "config changed", "path", w.path)
	w.broker.Publish(pubsub.ChangedEvent, Event{Path: w.path})
}

func (w *Watcher) concerns(ev fsnotify.Event) bool {
	const ops = fsnotify.Write | fsnotify.Create | fsnotify.Rename
	return ev.Op&ops != 0 && filepath.Base(ev.Name) == w.name
}
