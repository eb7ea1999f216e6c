package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

func init() {
	register(&Check{
		ID:    "check-json",
		Name:  "Check JSON",
		Types: []string{"json"},
		Run:   checkJSON,
	})
}

// checkJSON verifies that each file parses as JSON.
func checkJSON(ctx context.Context, files []string, args []string) (*Outcome, error) {
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
		if err := json.Unmarshal(content, &v); err != nil {
			outcome.Diagnostics = append(outcome.Diagnostics, fmt.Sprintf("%s: %v", path, err))
		}
	}

	return outcome, nil
}
