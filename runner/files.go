package runner

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gatetools/gate/hook"
	"github.com/gatetools/gate/identify"
	"github.com/moby/patternmatcher"
)

// IgnoreFileName is the per-repository ignore file. Its patterns remove
// files from every hook, using gitignore-style matching.
const IgnoreFileName = ".gateignore"

// collectFiles computes the candidate file set for the run, relative to
// the repository root. Explicit files win over discovery; --all-files
// wins over the staged set.
func (r *Runner) collectFiles(ctx context.Context) ([]string, error) {
	files, err := r.discoverFiles(ctx)
	if err != nil {
		return nil, err
	}

	files, err = r.applyIgnoreFile(files)
	if err != nil {
		return nil, err
	}

	if r.opts.Config.Exclude != "" {
		re, err := regexp.Compile(r.opts.Config.Exclude)
		if err != nil {
			return nil, fmt.Errorf("compile top-level exclude: %w", err)
		}
		files = rejectMatching(files, re)
	}

	return files, nil
}

func (r *Runner) discoverFiles(ctx context.Context) ([]string, error) {
	root := r.opts.RepoRoot

	switch {
	case len(r.opts.Files) > 0:
		files := make([]string, 0, len(r.opts.Files))
		for _, f := range r.opts.Files {
			files = append(files, filepath.ToSlash(filepath.Clean(f)))
		}
		return files, nil

	case r.opts.AllFiles:
		return r.opts.Repo.AllTrackedFiles(ctx, root)

	case r.opts.Stage == hook.StagePrePush:
		// Check what the push would introduce. Without an upstream the
		// whole tree is fair game.
		files, err := r.opts.Repo.ChangedFiles(ctx, root, "@{upstream}", "HEAD")
		if err != nil {
			r.logger.WithError(err).Debug("No upstream for pre-push diff, using all tracked files")
			return r.opts.Repo.AllTrackedFiles(ctx, root)
		}
		return files, nil

	default:
		return r.opts.Repo.StagedFiles(ctx, root)
	}
}

// applyIgnoreFile drops files matched by .gateignore patterns.
func (r *Runner) applyIgnoreFile(files []string) ([]string, error) {
	patterns, err := readIgnorePatterns(filepath.Join(r.opts.RepoRoot, IgnoreFileName))
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return files, nil
	}

	matcher, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", IgnoreFileName, err)
	}

	var kept []string
	for _, f := range files {
		ignored, err := matcher.MatchesOrParentMatches(f)
		if err != nil {
			return nil, fmt.Errorf("match %s against %s: %w", f, IgnoreFileName, err)
		}
		if !ignored {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

func readIgnorePatterns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", IgnoreFileName, err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, scanner.Err()
}

// filterForHook narrows the candidate set to the files this hook acts on:
// the files regex must match, the exclude regex must not, and the file
// must carry every requested type tag. Regexes were validated at config
// load time; a pattern that fails to compile here matches nothing. Paths
// are repo-relative; root anchors them for type detection.
func filterForHook(root string, h *hook.Hook, files []string) []string {
	var matched []string

	var filesRe, excludeRe *regexp.Regexp
	if h.Files != "" {
		filesRe, _ = regexp.Compile(h.Files)
		if filesRe == nil {
			return nil
		}
	}
	if h.Exclude != "" {
		excludeRe, _ = regexp.Compile(h.Exclude)
	}

	for _, f := range files {
		if filesRe != nil && !filesRe.MatchString(f) {
			continue
		}
		if excludeRe != nil && excludeRe.MatchString(f) {
			continue
		}
		if !identify.Matches(filepath.Join(root, f), h.Types) {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

func rejectMatching(files []string, re *regexp.Regexp) []string {
	var kept []string
	for _, f := range files {
		if !re.MatchString(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
