// Package watcher reports changes to a repository's working tree and git
// directory, debounced so a burst of writes yields one refresh.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/paths"
	"github.com/zjrosen/twig/internal/pubsub"
)

// Kind distinguishes change notifications from watcher failures.
type Kind int

const (
	RepoChanged Kind = iota
	WatchError
)

// Event is published on the watcher's broker.
type Event struct {
	Kind Kind
	Root string
	Err  error
}

// Config holds watcher configuration options.
type Config struct {
	Root     string
	Debounce time.Duration
}

// DefaultConfig watches root with a 500ms debounce.
func DefaultConfig(root string) Config {
	return Config{Root: root, Debounce: 500 * time.Millisecond}
}

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	".idea":        true,
	".direnv":      true,
}

// Watcher monitors a repository and publishes RepoChanged events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	gitDir    string
	debounce  time.Duration
	broker    *pubsub.Broker[Event]
	done      chan struct{}
}

// New creates a watcher for cfg.Root. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig(cfg.Root).Debounce
	}
	return &Watcher{
		fsWatcher: fsw,
		root:      cfg.Root,
		gitDir:    paths.GitDir(cfg.Root),
		debounce:  cfg.Debounce,
		broker:    pubsub.NewBroker[Event](),
		done:      make(chan struct{}),
	}, nil
}

// Broker returns the broker events are published on.
func (w *Watcher) Broker() *pubsub.Broker[Event] { return w.broker }

// Subscribe is shorthand for Broker().Subscribe.
func (w *Watcher) Subscribe(ctx context.Context) <-chan pubsub.Event[Event] {
	return w.broker.Subscribe(ctx)
}

// Start adds every directory under the root and begins the event loop.
func (w *Watcher) Start() error {
	if err := w.addTree(w.root); err != nil {
		return err
	}
	for _, sub := range []string{w.gitDir, filepath.Join(w.gitDir, "refs", "heads")} {
		if info, err := os.Stat(sub); err == nil && info.IsDir() {
			if err := w.fsWatcher.Add(sub); err != nil {
				return fmt.Errorf("watching %s: %w", sub, err)
			}
		}
	}
	log.Debug(log.CatWatcher, "Watching repository", "root", w.root, "dirs", len(w.fsWatcher.WatchList()))

	go w.loop()
	return nil
}

// Stop terminates the watcher and closes its broker.
func (w *Watcher) Stop() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsWatcher.Close()
	w.broker.Close()
	return err
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, the root is not.
			if path == dir {
				return fmt.Errorf("watching directory %s: %w", dir, err)
			}
			return filepath.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && (d.Name() == ".git" || skipDirs[d.Name()]) {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 && w.inWorktree(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addTree(event.Name)
				}
			}
			if !w.isRelevantEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C
			pending = true

		case <-timerC:
			timerC = nil
			if pending {
				pending = false
				log.Debug(log.CatWatcher, "Repository changed", "root", w.root)
				w.broker.Publish(pubsub.UpdatedEvent, Event{Kind: RepoChanged, Root: w.root})
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "Watcher error", err, "root", w.root)
			w.broker.Publish(pubsub.UpdatedEvent, Event{Kind: WatchError, Root: w.root, Err: err})

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) inWorktree(path string) bool {
	return !strings.HasPrefix(path, w.gitDir+string(filepath.Separator)) && path != w.gitDir
}

// isRelevantEvent drops chmod noise and lock files. Inside .git only HEAD,
// the index and branch refs matter.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasSuffix(base, ".lock") {
		return false
	}
	if w.inWorktree(event.Name) {
		return true
	}

	rel, err := filepath.Rel(w.gitDir, event.Name)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	switch rel {
	case "HEAD", "index", "ORIG_HEAD", "MERGE_HEAD", "FETCH_HEAD":
		return true
	}
	return strings.HasPrefix(rel, "refs/")
}
