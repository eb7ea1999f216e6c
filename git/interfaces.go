package git

import "context"

// HookProvider defines the interface for git hook shim management
type HookProvider interface {
	InstallHooks(ctx context.Context, repoPath string, hookTypes []string) error
	UninstallHooks(ctx context.Context, repoPath string, hookTypes []string) error
}

// RepositoryProvider defines the interface for general git repository operations
type RepositoryProvider interface {
	IsGitRepo(ctx context.Context, dir string) bool
	GetGitRoot(ctx context.Context, dir string) (string, error)
	StagedFiles(ctx context.Context, dir string) ([]string, error)
	AllTrackedFiles(ctx context.Context, dir string) ([]string, error)
	ChangedFiles(ctx context.Context, dir, from, to string) ([]string, error)
}
