package builtin

import (
	"context"
	"fmt"

	"github.com/gatetools/gate/identify"
)

func init() {
	register(&Check{
		ID:    "check-executables-have-shebangs",
		Name:  "Check Executables Have Shebangs",
		Types: []string{identify.TagText, identify.TagExecutable},
		Run:   checkExecutablesHaveShebangs,
	})
}

// checkExecutablesHaveShebangs reports executable text files that do not
// start with #!.
func checkExecutablesHaveShebangs(ctx context.Context, files []string, args []string) (*Outcome, error) {
	outcome := &Outcome{}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !identify.Matches(path, []string{identify.TagText, identify.TagExecutable}) {
			continue
		}
		if identify.HasShebang(path) {
			continue
		}

		outcome.Diagnostics = append(outcome.Diagnostics,
			fmt.Sprintf("%s: marked executable but has no (or invalid) shebang", path))
	}

	return outcome, nil
}
