package runner

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/hook"
	"github.com/gatetools/gate/hook/builtin"
	"github.com/kballard/go-shellquote"
)

// execute runs one hook against its matched files and fills in the
// result's status, output, and exit code.
func (r *Runner) execute(ctx context.Context, h *hook.Hook, files []string, result *hook.Result) {
	if h.Source == config.BuiltinRepo {
		r.runBuiltin(ctx, h, files, result)
		return
	}
	r.runCommand(ctx, h, files, result)
}

func (r *Runner) runBuiltin(ctx context.Context, h *hook.Hook, files []string, result *hook.Result) {
	check, ok := builtin.Lookup(h.ID)
	if !ok {
		result.Status = hook.StatusErrored
		result.Output = fmt.Sprintf("unknown builtin hook %q", h.ID)
		return
	}

	// Builtin checks take paths resolvable from the gate process, while
	// the candidate set is repo-relative.
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Join(r.opts.RepoRoot, f)
	}

	outcome, err := check.Run(ctx, paths, h.Args)
	if err != nil {
		result.Status = hook.StatusErrored
		result.Output = err.Error()
		result.ExitCode = 1
		return
	}

	var lines []string
	lines = append(lines, outcome.Diagnostics...)
	for _, fixed := range outcome.Fixed {
		lines = append(lines, "fixed "+fixed)
	}
	result.Output = strings.Join(lines, "\n")

	switch {
	case len(outcome.Fixed) > 0:
		result.Status = hook.StatusFixed
		result.ExitCode = 1
	case len(outcome.Diagnostics) > 0:
		result.Status = hook.StatusFailed
		result.ExitCode = 1
	default:
		result.Status = hook.StatusPassed
	}
}

func (r *Runner) runCommand(ctx context.Context, h *hook.Hook, files []string, result *hook.Result) {
	argv, err := buildArgv(h, r.opts.RepoRoot)
	if err != nil {
		result.Status = hook.StatusErrored
		result.Output = err.Error()
		return
	}
	if h.PassFilenames {
		argv = append(argv, files...)
	}

	cmd, err := r.builder.Build(ctx, argv[0], argv[1:]...)
	if err != nil {
		result.Status = hook.StatusErrored
		result.Output = err.Error()
		return
	}

	execCmd := cmd.Exec()
	execCmd.Dir = r.opts.RepoRoot
	output, err := execCmd.CombinedOutput()
	result.Output = strings.TrimRight(string(output), "\n")

	if err == nil {
		result.Status = hook.StatusPassed
		return
	}

	// A deadline kill surfaces as an ExitError; classify it first.
	if cmd.TimedOut() {
		result.Status = hook.StatusErrored
		result.Output = strings.TrimSpace(result.Output + "\nhook command timed out")
		result.ExitCode = 1
		return
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		result.Status = hook.StatusFailed
		result.ExitCode = exitErr.ExitCode()
		return
	}

	result.Status = hook.StatusErrored
	if result.Output == "" {
		result.Output = err.Error()
	}
	result.ExitCode = 1
}

// buildArgv turns a hook's entry and language into the command line to
// execute. Script and golang entries are anchored in the hook's source
// repository so remote hooks run the files they shipped with.
func buildArgv(h *hook.Hook, repoRoot string) ([]string, error) {
	argv, err := shellquote.Split(h.Entry)
	if err != nil {
		return nil, fmt.Errorf("parse entry of hook %s: %w", h.ID, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("hook %s has an empty entry", h.ID)
	}

	base := h.RepoDir
	if base == "" {
		base = repoRoot
	}

	switch h.Language {
	case config.LanguageScript:
		argv[0] = filepath.Join(base, argv[0])
	case config.LanguageGolang:
		argv = append([]string{"go", "run", filepath.Join(base, argv[0])}, argv[1:]...)
	}

	return append(argv, h.Args...), nil
}
