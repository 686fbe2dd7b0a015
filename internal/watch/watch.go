// Package watch reports debounced changes to SQL files under a set of roots.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Options.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives the files that changed during one debounce window,
// sorted and deduplicated.
type Handler func(ctx context.Context, paths []string)

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	// Match selects files inside watched directories. Defaults to *.sql.
	// Files named directly as roots are always reported.
	Match  func(path string) bool
	Logger *slog.Logger
}

// Watcher watches files and directory trees for writes and creates.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool // roots that are files
	dirs     map[string]bool // directories watched recursively
	debounce time.Duration
	match    func(string) bool
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[string]bool
	flush   chan struct{}
}

// New creates a watcher for roots. Directory roots are watched recursively.
func New(roots []string, opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: opts.Debounce,
		match:    opts.Match,
		logger:   opts.Logger,
		pending:  make(map[string]bool),
		flush:    make(chan struct{}, 1),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.match == nil {
		w.match = IsSQLFile
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}

	for _, root := range roots {
		if err := w.add(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// IsSQLFile reports whether path has a .sql extension.
func IsSQLFile(path string) bool {
	return filepath.Ext(path) == ".sql"
}

func (w *Watcher) add(root string) error {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		// Editors replace files on save; watching the directory keeps
		// the watch alive across renames.
		w.files[root] = true
		return w.fsw.Add(filepath.Dir(root))
	}
	return w.addRecursive(root)
}

// addRecursive adds a directory and all subdirectories to the watcher.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			w.dirs[path] = true
			return w.fsw.Add(path)
		}
		return nil
	})
}

// Run delivers batches of changed files to handle until ctx is done.
// Handler calls never overlap.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.mu.Lock()
			w.pending[event.Name] = true
			w.mu.Unlock()

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				select {
				case w.flush <- struct{}{}:
				default:
				}
			})

		case <-w.flush:
			if paths := w.drain(); len(paths) > 0 {
				w.logger.Debug("files changed", "count", len(paths))
				handle(ctx, paths)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if w.files[name] {
		return true
	}
	// Siblings of file roots are not watched.
	if !w.dirs[filepath.Dir(name)] {
		return false
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if err := w.addRecursive(name); err != nil {
				w.logger.Warn("failed to watch new directory", "dir", name, "error", err)
			}
			return false
		}
	}
	return w.match(name)
}

func (w *Watcher) drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	clear(w.pending)
	slices.Sort(paths)
	return paths
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
