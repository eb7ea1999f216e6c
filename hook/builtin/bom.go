package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/gatetools/gate/identify"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

func init() {
	register(&Check{
		ID:    "fix-byte-order-marker",
		Name:  "Fix UTF-8 Byte Order Marker",
		Types: []string{identify.TagFile},
		Run:   fixByteOrderMarker,
	})
}

// fixByteOrderMarker strips a leading UTF-8 BOM from files.
func fixByteOrderMarker(ctx context.Context, files []string, args []string) (*Outcome, error) {
	outcome := &Outcome{}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if !bytes.HasPrefix(content, utf8BOM) {
			continue
		}

		if err := writeInPlace(path, content[len(utf8BOM):]); err != nil {
			return nil, err
		}
		outcome.Fixed = append(outcome.Fixed, path)
		outcome.Diagnostics = append(outcome.Diagnostics, fmt.Sprintf("%s: removed byte-order marker", path))
	}

	return outcome, nil
}
