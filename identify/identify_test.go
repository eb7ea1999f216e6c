package identify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, content []byte, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, mode))
	return path
}

func TestTagsByExtension(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		file    string
		content string
		want    []string
	}{
		{"main.go", "package main\n", []string{"file", "text", "go"}},
		{"config.yaml", "a: 1\n", []string{"file", "text", "yaml"}},
		{"config.yml", "a: 1\n", []string{"file", "text", "yaml"}},
		{"data.json", "{}\n", []string{"file", "text", "json"}},
		{"settings.toml", "a = 1\n", []string{"file", "text", "toml"}},
		{"notes.md", "# hi\n", []string{"file", "text", "markdown"}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, []byte(tt.content), 0644)
			tags := Tags(path)
			for _, want := range tt.want {
				assert.True(t, tags[want], "expected tag %q in %v", want, tags)
			}
		})
	}
}

func TestTagsExecutableAndShebang(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "run", []byte("#!/usr/bin/env bash\necho hi\n"), 0755)
	tags := Tags(path)
	assert.True(t, tags[TagExecutable])
	assert.True(t, tags["bash"])
	assert.True(t, tags["shell"])
	assert.True(t, tags[TagText])

	assert.True(t, HasShebang(path))

	plain := writeFile(t, dir, "plain", []byte("no shebang\n"), 0755)
	assert.False(t, HasShebang(plain))
}

func TestTagsEmptyFile(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "empty", nil, 0644)
	tags := Tags(path)
	assert.True(t, tags[TagText], "empty files count as text")
	assert.False(t, tags[TagBinary])

	exe := writeFile(t, dir, "empty-exe", nil, 0755)
	tags = Tags(exe)
	assert.True(t, tags[TagExecutable])
	assert.True(t, tags[TagText])
	assert.False(t, HasShebang(exe))
}

func TestTagsBinary(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "blob.bin", []byte{0x00, 0x01, 0xff, 0xfe}, 0644)
	tags := Tags(path)
	assert.True(t, tags[TagBinary])
	assert.False(t, tags[TagText])
}

func TestTagsSymlink(t *testing.T) {
	dir := t.TempDir()

	target := writeFile(t, dir, "target.txt", []byte("x\n"), 0644)
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	tags := Tags(link)
	assert.True(t, tags[TagSymlink])
}

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", []byte("package main\n"), 0644)

	assert.True(t, Matches(path, nil))
	assert.True(t, Matches(path, []string{"go"}))
	assert.True(t, Matches(path, []string{"go", "text"}))
	assert.False(t, Matches(path, []string{"python"}))
}
