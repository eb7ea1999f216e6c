package builtin

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/gatetools/gate/identify"
)

var conflictMarkers = [][]byte{
	[]byte("<<<<<<< "),
	[]byte("======="),
	[]byte(">>>>>>> "),
}

func init() {
	register(&Check{
		ID:    "check-merge-conflict",
		Name:  "Check for Merge Conflicts",
		Types: []string{identify.TagText},
		Run:   checkMergeConflict,
	})
}

// checkMergeConflict reports lines that start with a merge conflict marker.
func checkMergeConflict(ctx context.Context, files []string, args []string) (*Outcome, error) {
	outcome := &Outcome{}

	for _, path := range textFiles(files) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := bytes.TrimRight(scanner.Bytes(), "\r")
			if marker, found := conflictMarkerIn(line); found {
				outcome.Diagnostics = append(outcome.Diagnostics,
					fmt.Sprintf("%s:%d: merge conflict marker %q", path, lineNo, marker))
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
	}

	return outcome, nil
}

// conflictMarkerIn reports the conflict marker a line carries, if any.
// The bare ======= separator only counts when it is the whole line.
func conflictMarkerIn(line []byte) (string, bool) {
	for _, marker := range conflictMarkers {
		if !bytes.HasPrefix(line, marker) {
			continue
		}
		if bytes.Equal(marker, []byte("=======")) && len(line) != len(marker) {
			continue
		}
		return string(bytes.TrimRight(marker, " ")), true
	}
	return "", false
}
