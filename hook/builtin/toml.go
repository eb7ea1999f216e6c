package builtin

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func init() {
	register(&Check{
		ID:    "check-toml",
		Name:  "Check TOML",
		Types: []string{"toml"},
		Run:   checkTOML,
	})
}

// checkTOML verifies that each file parses as TOML.
func checkTOML(ctx context.Context, files []string, args []string) (*Outcome, error) {
	outcome := &Outcome{}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var v interface{}
		if err := toml.Unmarshal(content, &v); err != nil {
			outcome.Diagnostics = append(outcome.Diagnostics, fmt.Sprintf("%s: %v", path, err))
		}
	}

	return outcome, nil
}
