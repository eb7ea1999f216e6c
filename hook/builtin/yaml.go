package builtin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

func init() {
	register(&Check{
		ID:    "check-yaml",
		Name:  "Check YAML",
		Types: []string{"yaml"},
		Run:   checkYAML,
	})
}

// checkYAML verifies that each file parses as YAML. Multi-document files
// are checked document by document.
func checkYAML(ctx context.Context, files []string, args []string) (*Outcome, error) {
	outcome := &Outcome{}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		decoder := yaml.NewDecoder(f)
		for {
			var v interface{}
			err := decoder.Decode(&v)
			if err == nil {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			outcome.Diagnostics = append(outcome.Diagnostics, fmt.Sprintf("%s: %v", path, err))
			break
		}
		f.Close()
	}

	return outcome, nil
}
