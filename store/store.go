// Package store caches remote hook repositories at pinned revisions.
// Each repo+rev pair is cloned once into the cache directory and reused
// across runs; the pinned revision keeps hook behavior reproducible.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gatetools/gate/command"
	"github.com/gatetools/gate/errors"
	"github.com/gatetools/gate/logging"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const indexFileName = "index.yml"

// Store manages the on-disk cache of hook repositories.
type Store struct {
	root    string
	builder *command.SafeBuilder
	logger  *logrus.Entry

	mu    sync.Mutex
	index map[string]string // "url@rev" -> checkout dir name
}

// NewStore creates a store rooted at cacheDir (repos live under
// cacheDir/repos).
func NewStore(cacheDir string) *Store {
	return &Store{
		root:    filepath.Join(cacheDir, "repos"),
		builder: command.NewSafeBuilder(),
		logger:  logging.NewLogger("store"),
	}
}

// Root returns the directory repositories are cloned into.
func (s *Store) Root() string {
	return s.root
}

// Ensure returns the checkout directory for repo at rev, cloning it on
// first use.
func (s *Store) Ensure(ctx context.Context, repo, rev string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.builder.Validate("repoURL", repo); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid hook repo URL")
	}
	if err := s.builder.Validate("gitRef", rev); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid hook repo rev")
	}

	if err := s.loadIndex(); err != nil {
		return "", err
	}

	key := repo + "@" + rev
	if name, ok := s.index[key]; ok {
		dir := filepath.Join(s.root, name)
		if _, err := os.Stat(dir); err == nil {
			return dir, nil
		}
		// Stale index entry; fall through and re-clone.
		delete(s.index, key)
	}

	name := checkoutName(repo, rev)
	dir := filepath.Join(s.root, name)

	s.logger.WithFields(logrus.Fields{"repo": repo, "rev": rev}).Info("Cloning hook repository")
	if err := s.clone(ctx, repo, rev, dir); err != nil {
		_ = os.RemoveAll(dir)
		return "", err
	}

	s.index[key] = name
	if err := s.saveIndex(); err != nil {
		return "", err
	}

	return dir, nil
}

// Clean removes every cached repository.
func (s *Store) Clean() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("remove store root: %w", err)
	}
	s.index = nil
	return nil
}

func (s *Store) clone(ctx context.Context, repo, rev, dir string) error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("create store root: %w", err)
	}

	cmd, err := s.builder.Build(ctx, "git", "clone", "--quiet", repo, dir)
	if err != nil {
		return fmt.Errorf("failed to build command: %w", err)
	}
	if output, err := cmd.Exec().CombinedOutput(); err != nil {
		if cmd.TimedOut() {
			return errors.CommandTimedOut("git clone " + repo)
		}
		return errors.CloneFailed(repo, fmt.Errorf("%v: %s", err, output))
	}

	cmd, err = s.builder.Build(ctx, "git", "checkout", "--quiet", rev)
	if err != nil {
		return fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	if output, err := execCmd.CombinedOutput(); err != nil {
		if cmd.TimedOut() {
			return errors.CommandTimedOut("git checkout " + rev)
		}
		return errors.CheckoutFailed(repo, rev, fmt.Errorf("%v: %s", err, output))
	}

	return nil
}

// loadIndex reads the index file lazily. A missing file yields an empty
// index.
func (s *Store) loadIndex() error {
	if s.index != nil {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(s.root, indexFileName))
	if err != nil {
		if os.IsNotExist(err) {
			s.index = make(map[string]string)
			return nil
		}
		return fmt.Errorf("read store index: %w", err)
	}

	var index map[string]string
	if err := yaml.Unmarshal(data, &index); err != nil {
		return fmt.Errorf("parse store index: %w", err)
	}
	if index == nil {
		index = make(map[string]string)
	}
	s.index = index
	return nil
}

func (s *Store) saveIndex() error {
	data, err := yaml.Marshal(s.index)
	if err != nil {
		return fmt.Errorf("marshal store index: %w", err)
	}
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("create store root: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.root, indexFileName), data, 0644); err != nil {
		return fmt.Errorf("write store index: %w", err)
	}
	return nil
}

// checkoutName derives a stable directory name for a repo+rev pair.
func checkoutName(repo, rev string) string {
	sum := sha256.Sum256([]byte(repo + "@" + rev))
	base := filepath.Base(repo)
	if base == "." || base == "/" || base == "" {
		base = "repo"
	}
	return fmt.Sprintf("%s-%s", base, hex.EncodeToString(sum[:8]))
}
