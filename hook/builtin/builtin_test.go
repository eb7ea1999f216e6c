package builtin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func read(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestRegistry(t *testing.T) {
	for _, id := range []string{
		"trailing-whitespace",
		"end-of-file-fixer",
		"fix-byte-order-marker",
		"check-added-large-files",
		"check-merge-conflict",
		"check-json",
		"check-yaml",
		"check-toml",
		"check-executables-have-shebangs",
	} {
		check, ok := Lookup(id)
		require.True(t, ok, "builtin %s should be registered", id)
		assert.Equal(t, id, check.ID)
		assert.NotEmpty(t, check.Name)
		assert.NotNil(t, check.Run)
	}

	_, ok := Lookup("no-such-check")
	assert.False(t, ok)
}

func TestTrailingWhitespace(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	dirty := write(t, dir, "dirty.txt", "hello   \nworld\t\n")
	clean := write(t, dir, "clean.txt", "hello\nworld\n")

	outcome, err := trimTrailingWhitespace(ctx, []string{dirty, clean}, nil)
	require.NoError(t, err)
	assert.True(t, outcome.Failed())
	assert.Equal(t, []string{dirty}, outcome.Fixed)
	assert.Equal(t, "hello\nworld\n", read(t, dirty))

	// Second run is clean
	outcome, err = trimTrailingWhitespace(ctx, []string{dirty, clean}, nil)
	require.NoError(t, err)
	assert.False(t, outcome.Failed())
}

func TestTrailingWhitespaceKeepsCRLF(t *testing.T) {
	dir := t.TempDir()

	path := write(t, dir, "crlf.txt", "hello  \r\nworld\r\n")
	outcome, err := trimTrailingWhitespace(context.Background(), []string{path}, nil)
	require.NoError(t, err)
	assert.True(t, outcome.Failed())
	assert.Equal(t, "hello\r\nworld\r\n", read(t, path))
}

func TestEndOfFileFixer(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	missing := write(t, dir, "missing.txt", "no newline")
	extra := write(t, dir, "extra.txt", "too many\n\n\n")
	clean := write(t, dir, "clean.txt", "fine\n")
	empty := write(t, dir, "empty.txt", "")

	outcome, err := fixEndOfFiles(ctx, []string{missing, extra, clean, empty}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{missing, extra}, outcome.Fixed)
	assert.Equal(t, "no newline\n", read(t, missing))
	assert.Equal(t, "too many\n", read(t, extra))
	assert.Equal(t, "fine\n", read(t, clean))
	assert.Equal(t, "", read(t, empty))
}

func TestFixByteOrderMarker(t *testing.T) {
	dir := t.TempDir()

	bom := write(t, dir, "bom.txt", "\xef\xbb\xbfhello\n")
	plain := write(t, dir, "plain.txt", "hello\n")

	outcome, err := fixByteOrderMarker(context.Background(), []string{bom, plain}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{bom}, outcome.Fixed)
	assert.Equal(t, "hello\n", read(t, bom))
}

func TestCheckAddedLargeFiles(t *testing.T) {
	dir := t.TempDir()

	big := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(big, make([]byte, 3*1024), 0644))
	small := write(t, dir, "small.txt", "tiny\n")

	outcome, err := checkAddedLargeFiles(context.Background(), []string{big, small}, []string{"--maxkb=2"})
	require.NoError(t, err)
	require.Len(t, outcome.Diagnostics, 1)
	assert.Contains(t, outcome.Diagnostics[0], "big.bin")

	// Default threshold passes both
	outcome, err = checkAddedLargeFiles(context.Background(), []string{big, small}, nil)
	require.NoError(t, err)
	assert.False(t, outcome.Failed())

	// Bad flag value
	_, err = checkAddedLargeFiles(context.Background(), nil, []string{"--maxkb=abc"})
	assert.Error(t, err)
}

func TestCheckMergeConflict(t *testing.T) {
	dir := t.TempDir()

	conflicted := write(t, dir, "conflicted.txt",
		"ok line\n<<<<<<< HEAD\nours\n=======\ntheirs\n>>>>>>> branch\n")
	clean := write(t, dir, "clean.txt", "======= not a bare separator\nx == y\n")

	outcome, err := checkMergeConflict(context.Background(), []string{conflicted, clean}, nil)
	require.NoError(t, err)
	require.Len(t, outcome.Diagnostics, 3)
	assert.Contains(t, outcome.Diagnostics[0], "conflicted.txt:2")
}

func TestCheckJSON(t *testing.T) {
	dir := t.TempDir()

	valid := write(t, dir, "valid.json", `{"a": [1, 2, 3]}`)
	invalid := write(t, dir, "invalid.json", `{"a": [1, 2,}`)

	outcome, err := checkJSON(context.Background(), []string{valid, invalid}, nil)
	require.NoError(t, err)
	require.Len(t, outcome.Diagnostics, 1)
	assert.Contains(t, outcome.Diagnostics[0], "invalid.json")
}

func TestCheckYAML(t *testing.T) {
	dir := t.TempDir()

	valid := write(t, dir, "valid.yaml", "a: 1\nb:\n  - x\n  - y\n")
	multi := write(t, dir, "multi.yaml", "a: 1\n---\nb: 2\n")
	invalid := write(t, dir, "invalid.yaml", "a: [1, 2\n")

	outcome, err := checkYAML(context.Background(), []string{valid, multi, invalid}, nil)
	require.NoError(t, err)
	require.Len(t, outcome.Diagnostics, 1)
	assert.Contains(t, outcome.Diagnostics[0], "invalid.yaml")
}

func TestCheckTOML(t *testing.T) {
	dir := t.TempDir()

	valid := write(t, dir, "valid.toml", "[table]\nkey = \"value\"\n")
	invalid := write(t, dir, "invalid.toml", "key = \n")

	outcome, err := checkTOML(context.Background(), []string{valid, invalid}, nil)
	require.NoError(t, err)
	require.Len(t, outcome.Diagnostics, 1)
	assert.Contains(t, outcome.Diagnostics[0], "invalid.toml")
}

func TestCheckExecutablesHaveShebangs(t *testing.T) {
	dir := t.TempDir()

	withShebang := filepath.Join(dir, "good.sh")
	require.NoError(t, os.WriteFile(withShebang, []byte("#!/bin/sh\necho hi\n"), 0755))

	withoutShebang := filepath.Join(dir, "bad.sh")
	require.NoError(t, os.WriteFile(withoutShebang, []byte("echo hi\n"), 0755))

	empty := filepath.Join(dir, "empty.sh")
	require.NoError(t, os.WriteFile(empty, nil, 0755))

	notExecutable := write(t, dir, "plain.txt", "just text\n")

	outcome, err := checkExecutablesHaveShebangs(context.Background(),
		[]string{withShebang, withoutShebang, empty, notExecutable}, nil)
	require.NoError(t, err)
	require.Len(t, outcome.Diagnostics, 2)
	assert.Contains(t, outcome.Diagnostics[0], "bad.sh")
	assert.Contains(t, outcome.Diagnostics[1], "empty.sh")
}
