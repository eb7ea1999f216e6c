// Package runner orchestrates a hook run: it resolves the configured
// hooks, computes the candidate file set, and executes each hook
// sequentially in the order the configuration lists them.
package runner

import (
	"context"
	"time"

	"github.com/gatetools/gate/command"
	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/errors"
	"github.com/gatetools/gate/git"
	"github.com/gatetools/gate/hook"
	"github.com/gatetools/gate/logging"
	"github.com/gatetools/gate/store"
	"github.com/sirupsen/logrus"
)

// Options configures a Runner.
type Options struct {
	// RepoRoot is the root of the git repository being checked.
	RepoRoot string

	// Config is the parsed and validated configuration document.
	Config *config.Config

	// Settings are the user-level settings (may be zero-valued).
	Settings *config.Settings

	// Stage selects which git stage is running (default: pre-commit).
	Stage string

	// AllFiles runs against every tracked file instead of staged ones.
	AllFiles bool

	// Files, when non-empty, is an explicit file list overriding discovery.
	Files []string

	// OnlyHook, when set, restricts the run to the hook with this id.
	OnlyHook string

	// OnResult is invoked after each hook finishes. May be nil.
	OnResult func(hook.Result)

	// Store caches remote hook repositories. May be nil when the
	// configuration has no remote entries.
	Store *store.Store

	// Repo provides git operations; defaults to the CLI implementation.
	Repo git.RepositoryProvider
}

// Runner executes the hooks of one configuration document.
type Runner struct {
	opts    Options
	builder *command.SafeBuilder
	logger  *logrus.Entry
}

// New creates a Runner.
func New(opts Options) *Runner {
	if opts.Stage == "" {
		opts.Stage = hook.StagePreCommit
	}
	if opts.Repo == nil {
		opts.Repo = git.NewCLIRepository()
	}
	if opts.Settings == nil {
		opts.Settings = &config.Settings{}
	}
	return &Runner{
		opts:    opts,
		builder: command.NewSafeBuilder(),
		logger:  logging.NewLogger("runner"),
	}
}

// Run executes all matching hooks and returns the aggregated summary.
// The returned error reports infrastructure failures only; hook failures
// are expressed through the summary.
func (r *Runner) Run(ctx context.Context) (*hook.Summary, error) {
	hooks, err := r.resolve(ctx)
	if err != nil {
		return nil, err
	}

	if r.opts.OnlyHook != "" && len(hooks) == 0 {
		return nil, errors.HookNotFound(r.opts.OnlyHook)
	}

	files, err := r.collectFiles(ctx)
	if err != nil {
		return nil, err
	}

	failFast := r.opts.Config.FailFast
	if r.opts.Settings.FailFast != nil {
		failFast = *r.opts.Settings.FailFast
	}

	summary := &hook.Summary{}
	for i := range hooks {
		h := &hooks[i]

		matched := filterForHook(r.opts.RepoRoot, h, files)

		result := hook.Result{
			ID:    h.ID,
			Name:  h.Name,
			Files: len(matched),
		}

		if len(matched) == 0 && !h.AlwaysRun {
			result.Status = hook.StatusSkipped
			r.report(summary, result)
			continue
		}

		start := time.Now()
		r.execute(ctx, h, matched, &result)
		result.Duration = time.Since(start)

		r.logger.WithFields(logrus.Fields{
			"hook":     h.ID,
			"status":   result.Status,
			"files":    result.Files,
			"duration": result.Duration,
		}).Debug("Hook finished")

		r.report(summary, result)

		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if failFast && !result.Ok() {
			break
		}
	}

	return summary, nil
}

func (r *Runner) report(summary *hook.Summary, result hook.Result) {
	summary.Results = append(summary.Results, result)
	if r.opts.OnResult != nil {
		r.opts.OnResult(result)
	}
}
