package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path := filepath.Join(root, ".gate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repos: []\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindConfigFileAlternateName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gate.yml")
	require.NoError(t, os.WriteFile(path, []byte("repos: []\n"), 0644))

	found, err := FindConfigFile(dir)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindConfigFileMissing(t *testing.T) {
	_, err := FindConfigFile(t.TempDir())
	assert.Error(t, err)
}

func TestLoadFromBytes(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`repos:
  - repo: builtin
    hooks:
      - id: check-yaml
  - repo: local
    hooks:
      - id: lint
        entry: make lint
        language: system
        pass_filenames: false
        stages: [pre-commit, pre-push]
  - repo: https://example.com/hooks.git
    rev: v2.1.0
    hooks:
      - id: fmt
        args: ["--strict"]
fail_fast: true
exclude: ^vendor/
`))
	require.NoError(t, err)

	assert.True(t, cfg.FailFast)
	assert.Equal(t, "^vendor/", cfg.Exclude)
	require.Len(t, cfg.Repos, 3)

	assert.True(t, cfg.Repos[0].IsBuiltin())
	assert.True(t, cfg.Repos[1].IsLocal())
	assert.True(t, cfg.Repos[2].IsRemote())

	// Defaults applied
	lint := cfg.Repos[1].Hooks[0]
	assert.Equal(t, "lint", lint.Name, "name defaults to id")
	assert.False(t, lint.PassesFilenames())
	assert.Equal(t, []string{"pre-commit", "pre-push"}, lint.Stages)

	fmtHook := cfg.Repos[2].Hooks[0]
	assert.Equal(t, []string{"pre-commit"}, fmtHook.Stages, "stages default to pre-commit")
	assert.True(t, fmtHook.PassesFilenames())
}

func TestLoadFromBytesRejectsBadYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("repos: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`repos:
  - repo: builtin
    hooks:
      - id: check-json
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Repos, 1)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
