// Package builtin implements the checks gate ships natively. They are
// addressed from the configuration through a repo entry with
// `repo: builtin`.
package builtin

import (
	"context"
	"fmt"
	"sort"

	"github.com/gatetools/gate/identify"
)

// Outcome is what a builtin check reports for one invocation.
type Outcome struct {
	// Diagnostics holds one human-readable line per finding.
	Diagnostics []string

	// Fixed lists files the check modified in place. A non-empty list
	// blocks the commit so the fixes can be re-staged.
	Fixed []string
}

// Failed reports whether the outcome blocks the commit.
func (o *Outcome) Failed() bool {
	return len(o.Diagnostics) > 0 || len(o.Fixed) > 0
}

// RunFunc executes a builtin check against the matched files.
type RunFunc func(ctx context.Context, files []string, args []string) (*Outcome, error)

// Check describes one builtin hook.
type Check struct {
	ID    string
	Name  string
	Types []string
	Run   RunFunc
}

var registry = map[string]*Check{}

func register(c *Check) {
	if _, dup := registry[c.ID]; dup {
		panic(fmt.Sprintf("duplicate builtin hook id %q", c.ID))
	}
	registry[c.ID] = c
}

// Lookup returns the builtin check with the given id.
func Lookup(id string) (*Check, bool) {
	c, ok := registry[id]
	return c, ok
}

// IDs returns the sorted ids of all builtin checks.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// textFiles narrows files to those carrying the text tag. Checks that
// rewrite content use it as a second line of defense when a hook spec
// overrides the default types.
func textFiles(files []string) []string {
	var out []string
	for _, f := range files {
		if identify.Matches(f, []string{identify.TagText}) {
			out = append(out, f)
		}
	}
	return out
}
