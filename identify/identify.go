// Package identify classifies files into type tags used by hook filters.
// Tags combine what a file is (its extension, its shebang interpreter)
// with how it behaves (text, binary, executable, symlink).
package identify

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Well-known tags.
const (
	TagFile       = "file"
	TagText       = "text"
	TagBinary     = "binary"
	TagExecutable = "executable"
	TagSymlink    = "symlink"
	TagDirectory  = "directory"
)

// extensionTags maps file extensions to their type tags. Extension tags
// imply "text" unless listed in binaryExtensions.
var extensionTags = map[string][]string{
	".bash":      {"bash", "shell"},
	".c":         {"c"},
	".cc":        {"c++"},
	".cfg":       {"ini"},
	".cpp":       {"c++"},
	".css":       {"css"},
	".csv":       {"csv"},
	".gitignore": {"gitignore"},
	".go":        {"go"},
	".h":         {"c", "header"},
	".hpp":       {"c++", "header"},
	".html":      {"html"},
	".ini":       {"ini"},
	".java":      {"java"},
	".js":        {"javascript"},
	".json":      {"json"},
	".jsx":       {"jsx", "javascript"},
	".ksh":       {"ksh", "shell"},
	".md":        {"markdown"},
	".mod":       {"go-mod"},
	".proto":     {"proto"},
	".py":        {"python"},
	".pyi":       {"python", "pyi"},
	".rb":        {"ruby"},
	".rs":        {"rust"},
	".sh":        {"sh", "shell"},
	".sql":       {"sql"},
	".sum":       {"go-sum"},
	".svg":       {"svg", "xml"},
	".toml":      {"toml"},
	".ts":        {"ts", "typescript"},
	".tsx":       {"tsx", "typescript"},
	".txt":       {"plain-text"},
	".xml":       {"xml"},
	".yaml":      {"yaml"},
	".yml":       {"yaml"},
	".zsh":       {"zsh", "shell"},
}

// binaryExtensions are extensions known to hold non-text content.
var binaryExtensions = map[string][]string{
	".gif":  {"gif", "image"},
	".gz":   {"gzip"},
	".ico":  {"icon", "image"},
	".jpeg": {"jpeg", "image"},
	".jpg":  {"jpeg", "image"},
	".pdf":  {"pdf"},
	".png":  {"png", "image"},
	".tar":  {"tar"},
	".zip":  {"zip"},
}

// shebangTags maps interpreter basenames to type tags.
var shebangTags = map[string][]string{
	"bash":    {"bash", "shell"},
	"sh":      {"sh", "shell"},
	"zsh":     {"zsh", "shell"},
	"ksh":     {"ksh", "shell"},
	"python":  {"python"},
	"python3": {"python", "python3"},
	"node":    {"javascript"},
	"ruby":    {"ruby"},
	"perl":    {"perl"},
}

// Tags returns the set of type tags for the file at path, relative to the
// working directory of the caller. Paths that cannot be inspected yield
// only name-derived tags.
func Tags(path string) map[string]bool {
	tags := make(map[string]bool)

	info, err := os.Lstat(path)
	if err != nil {
		tagsByName(path, tags)
		return tags
	}

	if info.Mode()&os.ModeSymlink != 0 {
		tags[TagSymlink] = true
		return tags
	}
	if info.IsDir() {
		tags[TagDirectory] = true
		return tags
	}

	tags[TagFile] = true
	if info.Mode()&0111 != 0 {
		tags[TagExecutable] = true
	}

	tagsByName(path, tags)

	// Content-derived tags: shebang interpreter and text/binary split.
	if content, err := readHead(path, 1024); err == nil {
		if isText(content) {
			tags[TagText] = true
		} else {
			tags[TagBinary] = true
		}
		for _, tag := range shebangInterpreterTags(content) {
			tags[tag] = true
		}
	}

	return tags
}

// tagsByName adds extension-derived tags.
func tagsByName(path string, tags map[string]bool) {
	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" && strings.HasPrefix(name, ".") {
		ext = strings.ToLower(name)
	}

	if extra, ok := extensionTags[ext]; ok {
		for _, tag := range extra {
			tags[tag] = true
		}
	}
	if extra, ok := binaryExtensions[ext]; ok {
		for _, tag := range extra {
			tags[tag] = true
		}
	}
}

// HasShebang reports whether the file starts with #!.
func HasShebang(path string) bool {
	content, err := readHead(path, 2)
	if err != nil {
		return false
	}
	return bytes.HasPrefix(content, []byte("#!"))
}

// shebangInterpreterTags derives tags from a #! line.
func shebangInterpreterTags(content []byte) []string {
	if !bytes.HasPrefix(content, []byte("#!")) {
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	if !scanner.Scan() {
		return nil
	}
	line := strings.TrimPrefix(scanner.Text(), "#!")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	interpreter := filepath.Base(fields[0])
	// "#!/usr/bin/env python3" names the interpreter in the second field
	if interpreter == "env" && len(fields) > 1 {
		interpreter = filepath.Base(fields[1])
	}

	// Strip version suffixes like python3.12
	trimmed := strings.TrimRight(interpreter, "0123456789.")
	if tags, ok := shebangTags[interpreter]; ok {
		return tags
	}
	if tags, ok := shebangTags[trimmed]; ok {
		return tags
	}
	return nil
}

// isText reports whether content looks like text: valid UTF-8 (allowing a
// rune truncated by the read window) with no NUL bytes.
func isText(content []byte) bool {
	if len(content) == 0 {
		return true
	}
	if bytes.IndexByte(content, 0) != -1 {
		return false
	}
	// Tolerate up to three trailing bytes of a rune cut off by the window.
	for trim := 0; trim < 4 && len(content) > 0; trim++ {
		if utf8.Valid(content) {
			return true
		}
		content = content[:len(content)-1]
	}
	return utf8.Valid(content)
}

// readHead reads up to n bytes from the start of the file.
func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := f.Read(buf)
	// A zero-byte file reads as io.EOF; its content is the empty slice.
	if err != nil && err != io.EOF && read == 0 {
		return nil, err
	}
	return buf[:read], nil
}

// Matches reports whether the file's tags contain every wanted tag.
func Matches(path string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	tags := Tags(path)
	for _, tag := range wanted {
		if !tags[tag] {
			return false
		}
	}
	return true
}
