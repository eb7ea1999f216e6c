package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/errors"
	"github.com/gatetools/gate/hook"
	"github.com/gatetools/gate/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, yaml string) *config.Config {
	t.Helper()
	cfg, err := config.LoadFromBytes([]byte(yaml))
	require.NoError(t, err)
	return cfg
}

func newTestRepo(t *testing.T) string {
	t.Helper()
	testutil.RequireGit(t)
	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)
	return dir
}

func TestRunLocalHooks(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "a.txt", "hello\n")

	cfg := loadConfig(t, `repos:
  - repo: local
    hooks:
      - id: ok
        entry: "true"
        language: system
        pass_filenames: false
      - id: fail
        entry: "false"
        language: system
        pass_filenames: false
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, hook.StatusPassed, summary.Results[0].Status)
	assert.Equal(t, hook.StatusFailed, summary.Results[1].Status)
	assert.Equal(t, 1, summary.Results[1].ExitCode)
	assert.False(t, summary.Ok())
	assert.Equal(t, []string{"fail"}, summary.Failed())
}

func TestFailFastStopsAfterFirstFailure(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "a.txt", "hello\n")

	cfg := loadConfig(t, `fail_fast: true
repos:
  - repo: local
    hooks:
      - id: fail
        entry: "false"
        language: system
        pass_filenames: false
      - id: never-runs
        entry: "true"
        language: system
        pass_filenames: false
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, "fail", summary.Results[0].ID)
}

func TestRunBuiltinFixesFiles(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "dirty.txt", "hello   \nworld\n")

	cfg := loadConfig(t, `repos:
  - repo: builtin
    hooks:
      - id: trailing-whitespace
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	result := summary.Results[0]
	assert.Equal(t, hook.StatusFixed, result.Status)
	assert.Contains(t, result.Output, "dirty.txt")

	content, err := os.ReadFile(filepath.Join(dir, "dirty.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(content))
}

func TestSkipsWhenNoFilesMatch(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "a.txt", "hello\n")

	cfg := loadConfig(t, `repos:
  - repo: local
    hooks:
      - id: go-only
        entry: "false"
        language: system
        types: [go]
      - id: runs-anyway
        entry: "true"
        language: system
        types: [go]
        always_run: true
        pass_filenames: false
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, hook.StatusSkipped, summary.Results[0].Status)
	assert.Equal(t, hook.StatusPassed, summary.Results[1].Status)
	assert.True(t, summary.Ok())
}

func TestHookFilters(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "keep.txt", "trailing   \n")
	testutil.StageFile(t, dir, "skip.txt", "trailing   \n")

	cfg := loadConfig(t, `repos:
  - repo: builtin
    hooks:
      - id: trailing-whitespace
        exclude: ^skip\.
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, 1, summary.Results[0].Files)
	assert.Contains(t, summary.Results[0].Output, "keep.txt")
	assert.NotContains(t, summary.Results[0].Output, "skip.txt")
}

func TestIgnoreFileExcludesFiles(t *testing.T) {
	dir := newTestRepo(t)
	testutil.WriteFile(t, dir, IgnoreFileName, "# generated code\nvendor/\n")
	testutil.StageFile(t, dir, "vendor/dep.txt", "trailing   \n")

	cfg := loadConfig(t, `repos:
  - repo: builtin
    hooks:
      - id: trailing-whitespace
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, hook.StatusSkipped, summary.Results[0].Status)
}

func TestTopLevelExclude(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "gen.txt", "trailing   \n")

	cfg := loadConfig(t, `exclude: ^gen\.
repos:
  - repo: builtin
    hooks:
      - id: trailing-whitespace
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, hook.StatusSkipped, summary.Results[0].Status)
}

func TestStageSelection(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "a.txt", "hello\n")

	cfg := loadConfig(t, `repos:
  - repo: local
    hooks:
      - id: push-only
        entry: "true"
        language: system
        pass_filenames: false
        stages: [pre-push]
      - id: commit-only
        entry: "true"
        language: system
        pass_filenames: false
`)

	r := New(Options{RepoRoot: dir, Config: cfg})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, "commit-only", summary.Results[0].ID)
}

func TestOnlyHook(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "a.txt", "hello\n")

	cfg := loadConfig(t, testutil.LocalEchoConfig())

	r := New(Options{RepoRoot: dir, Config: cfg, OnlyHook: "echo-check"})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, "echo-check", summary.Results[0].ID)
	assert.Equal(t, "checked", summary.Results[0].Output)

	r = New(Options{RepoRoot: dir, Config: cfg, OnlyHook: "no-such-hook"})
	_, err = r.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeHookNotFound, errors.GetCode(err))
}

func TestExplicitFiles(t *testing.T) {
	dir := newTestRepo(t)
	testutil.WriteFile(t, dir, "unstaged.txt", "trailing   \n")

	cfg := loadConfig(t, `repos:
  - repo: builtin
    hooks:
      - id: trailing-whitespace
`)

	r := New(Options{RepoRoot: dir, Config: cfg, Files: []string{"unstaged.txt"}})
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Results, 1)
	assert.Equal(t, hook.StatusFixed, summary.Results[0].Status)
}

func TestOnResultCallback(t *testing.T) {
	dir := newTestRepo(t)
	testutil.StageFile(t, dir, "a.txt", "hello\n")

	cfg := loadConfig(t, testutil.LocalEchoConfig())

	var seen []string
	r := New(Options{
		RepoRoot: dir,
		Config:   cfg,
		OnResult: func(res hook.Result) { seen = append(seen, res.ID) },
	})
	_, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"echo-check"}, seen)
}
