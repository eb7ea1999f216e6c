package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/gatetools/gate/identify"
)

func init() {
	register(&Check{
		ID:    "trailing-whitespace",
		Name:  "Trim Trailing Whitespace",
		Types: []string{identify.TagText},
		Run:   trimTrailingWhitespace,
	})
}

// trimTrailingWhitespace removes trailing spaces and tabs from every line,
// rewriting files in place.
func trimTrailingWhitespace(ctx context.Context, files []string, args []string) (*Outcome, error) {
	outcome := &Outcome{}

	for _, path := range textFiles(files) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		fixed := trimLines(content)
		if bytes.Equal(content, fixed) {
			continue
		}

		if err := writeInPlace(path, fixed); err != nil {
			return nil, err
		}
		outcome.Fixed = append(outcome.Fixed, path)
		outcome.Diagnostics = append(outcome.Diagnostics, fmt.Sprintf("Fixing %s", path))
	}

	return outcome, nil
}

// trimLines strips trailing spaces and tabs from each line, preserving the
// original line terminators.
func trimLines(content []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(content))

	rest := content
	for len(rest) > 0 {
		idx := bytes.IndexByte(rest, '\n')
		var line []byte
		if idx == -1 {
			line, rest = rest, nil
		} else {
			line, rest = rest[:idx], rest[idx+1:]
		}

		// Keep a CR terminator attached to CRLF files.
		hasCR := len(line) > 0 && line[len(line)-1] == '\r'
		if hasCR {
			line = line[:len(line)-1]
		}

		out.Write(bytes.TrimRight(line, " \t"))
		if hasCR {
			out.WriteByte('\r')
		}
		if idx != -1 {
			out.WriteByte('\n')
		}
	}

	return out.Bytes()
}

// writeInPlace rewrites a file preserving its mode.
func writeInPlace(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
