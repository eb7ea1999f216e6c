package git

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gatetools/gate/command"
	"github.com/gatetools/gate/errors"
)

// CLIRepository implements RepositoryProvider using the git CLI.
type CLIRepository struct {
	cmdBuilder *command.SafeBuilder
}

// Ensure it implements the interface
var _ RepositoryProvider = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLI repository provider
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{
		cmdBuilder: command.NewSafeBuilder(),
	}
}

// IsGitRepo checks if a directory is a git repository
func (r *CLIRepository) IsGitRepo(ctx context.Context, dir string) bool {
	return IsGitRepo(dir)
}

// GetGitRoot returns the root directory of the git repository
func (r *CLIRepository) GetGitRoot(ctx context.Context, dir string) (string, error) {
	return GetGitRoot(dir)
}

// StagedFiles returns the repo-relative paths staged for commit
func (r *CLIRepository) StagedFiles(ctx context.Context, dir string) ([]string, error) {
	return listFiles(ctx, dir, "diff", "--staged", "--name-only", "--diff-filter=ACMRT", "-z")
}

// AllTrackedFiles returns every path tracked by git
func (r *CLIRepository) AllTrackedFiles(ctx context.Context, dir string) ([]string, error) {
	return listFiles(ctx, dir, "ls-files", "-z")
}

// ChangedFiles returns paths that differ between two revisions
func (r *CLIRepository) ChangedFiles(ctx context.Context, dir, from, to string) ([]string, error) {
	builder := command.NewSafeBuilder()
	for _, ref := range []string{from, to} {
		if err := builder.Validate("gitRef", ref); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid revision")
		}
	}
	return listFiles(ctx, dir, "diff", "--name-only", "--diff-filter=ACMRT", "-z", from, to)
}

// IsGitRepo checks if the given directory is inside a git repository
func IsGitRepo(dir string) bool {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--git-dir")
	if err != nil {
		return false
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	return execCmd.Run() == nil
}

// GetGitRoot returns the root directory of the git repository
func GetGitRoot(dir string) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", errors.GitNotInstalled()
	}

	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", errors.NotARepo(dir)
	}

	return strings.TrimSpace(string(output)), nil
}

// HooksDir returns the directory git reads hooks from, honoring
// core.hooksPath when configured.
func HooksDir(dir string) (string, error) {
	cmdBuilder := command.NewSafeBuilder()

	cmd, err := cmdBuilder.Build(context.Background(), "git", "config", "--get", "core.hooksPath")
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	if output, err := execCmd.Output(); err == nil {
		hooksPath := strings.TrimSpace(string(output))
		if hooksPath != "" {
			if !filepath.IsAbs(hooksPath) {
				root, err := GetGitRoot(dir)
				if err != nil {
					return "", err
				}
				hooksPath = filepath.Join(root, hooksPath)
			}
			return hooksPath, nil
		}
	}

	cmd, err = cmdBuilder.Build(context.Background(), "git", "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd = cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", errors.NotARepo(dir)
	}

	gitDir := strings.TrimSpace(string(output))
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	return filepath.Join(gitDir, "hooks"), nil
}

// listFiles runs a git command producing NUL-separated paths and returns
// them relative to the repository root.
func listFiles(ctx context.Context, dir string, args ...string) ([]string, error) {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(ctx, "git", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return nil, errors.CommandFailed("git "+strings.Join(args, " "), err)
	}

	var files []string
	for _, f := range strings.Split(string(output), "\x00") {
		if f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}
