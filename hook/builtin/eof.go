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
		ID:    "end-of-file-fixer",
		Name:  "Fix End of Files",
		Types: []string{identify.TagText},
		Run:   fixEndOfFiles,
	})
}

// fixEndOfFiles ensures every file ends in exactly one newline.
func fixEndOfFiles(ctx context.Context, files []string, args []string) (*Outcome, error) {
	outcome := &Outcome{}

	for _, path := range textFiles(files) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(content) == 0 {
			continue
		}

		terminator := []byte("\n")
		if bytes.Contains(content, []byte("\r\n")) {
			terminator = []byte("\r\n")
		}

		fixed := bytes.TrimRight(content, "\r\n")
		if len(fixed) == 0 {
			// Newline-only file collapses to empty.
			fixed = []byte{}
		} else {
			fixed = append(fixed, terminator...)
		}

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
