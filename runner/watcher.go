package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gatetools/gate/logging"
	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"
)

// Watcher watches a repository tree and invokes a callback when files
// change, so hooks can be re-run continuously during development.
type Watcher struct {
	watcher    *fsnotify.Watcher
	root       string
	debounceMs int
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry
	ignore     *patternmatcher.PatternMatcher
	onChange   func(files []string)
}

// NewWatcher creates a watcher over the repository rooted at root. Every
// directory except .git and .gateignore'd paths is watched. The
// debounceMs parameter controls how long rapid change bursts are
// collapsed for; onChange receives the repo-relative paths that changed.
func NewWatcher(root string, debounceMs int, onChange func(files []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger("watcher")

	var ignore *patternmatcher.PatternMatcher
	patterns, err := readIgnorePatterns(filepath.Join(root, IgnoreFileName))
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if len(patterns) > 0 {
		ignore, err = patternmatcher.New(patterns)
		if err != nil {
			fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher:    fsw,
		root:       root,
		debounceMs: debounceMs,
		logger:     logger,
		ignore:     ignore,
		onChange:   onChange,
	}
	if w.debounceMs <= 0 {
		w.debounceMs = 200
	}

	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// addTree registers root and all its non-ignored subdirectories.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if rel, err := filepath.Rel(root, path); err == nil && rel != "." && w.ignored(rel) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.WithError(err).Warnf("Failed to watch %s", path)
		}
		return nil
	})
}

func (w *Watcher) ignored(rel string) bool {
	if w.ignore == nil {
		return false
	}
	matched, err := w.ignore.MatchesOrParentMatches(filepath.ToSlash(rel))
	return err == nil && matched
}

// Start begins watching. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.handleChange(event)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange processes one filesystem event with debouncing.
func (w *Watcher) handleChange(event fsnotify.Event) {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return
	}
	rel = filepath.ToSlash(rel)
	if w.ignored(rel) || strings.HasPrefix(rel, ".git/") {
		return
	}

	// New directories join the watch set so nested changes are seen.
	if info, err := os.Lstat(event.Name); err == nil && info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			_ = w.addTree(event.Name)
		}
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Debounce rapid writes
	elapsed := time.Since(w.lastChange)
	if elapsed < time.Duration(w.debounceMs)*time.Millisecond {
		w.logger.Debugf("Debounced: %s (only %v since last change)", rel, elapsed)
		return
	}
	w.lastChange = time.Now()

	w.logger.Infof("File changed: %s", rel)
	if w.onChange != nil {
		w.onChange([]string{rel})
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
