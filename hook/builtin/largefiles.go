package builtin

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gatetools/gate/identify"
)

// defaultMaxKB matches the conventional 500kB threshold for the check.
const defaultMaxKB = 500

func init() {
	register(&Check{
		ID:    "check-added-large-files",
		Name:  "Check for Large Files",
		Types: []string{identify.TagFile},
		Run:   checkAddedLargeFiles,
	})
}

// checkAddedLargeFiles rejects files above a size threshold. The threshold
// can be overridden with --maxkb=N in the hook args.
func checkAddedLargeFiles(ctx context.Context, files []string, args []string) (*Outcome, error) {
	maxKB := int64(defaultMaxKB)
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--maxkb="); ok {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid --maxkb value %q: %w", v, err)
			}
			maxKB = parsed
		}
	}

	outcome := &Outcome{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Lstat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		sizeKB := info.Size() / 1024
		if sizeKB > maxKB {
			outcome.Diagnostics = append(outcome.Diagnostics,
				fmt.Sprintf("%s (%d kB) exceeds %d kB", path, sizeKB, maxKB))
		}
	}

	return outcome, nil
}
