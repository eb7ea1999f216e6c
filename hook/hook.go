// Package hook defines the resolved hook model shared by the runner, the
// builtin registry, and remote hook manifests.
package hook

// Stage names mirror the git hooks gate can drive.
const (
	StagePreCommit = "pre-commit"
	StagePrePush   = "pre-push"
	StageManual    = "manual"
)

// Hook is a fully resolved hook, ready to execute: configuration defaults
// applied, source repository located, entry command known.
type Hook struct {
	// ID identifies the hook within its source repository.
	ID string

	// Name is the display label shown while the hook runs.
	Name string

	// Source is the repo marker or URL the hook came from.
	Source string

	// Entry is the command line to execute. Empty for builtin hooks.
	Entry string

	// Language selects how the entry is provisioned (system, script, golang).
	Language string

	// Args are appended to the entry command before any filenames.
	Args []string

	// Types restricts the hook to files carrying all of these tags.
	Types []string

	// Files is a regex a path must match; Exclude removes matches.
	Files   string
	Exclude string

	// PassFilenames controls whether matched files are appended as
	// arguments to the entry command.
	PassFilenames bool

	// AlwaysRun runs the hook even when no files match its filters.
	AlwaysRun bool

	// Stages lists the git stages the hook participates in.
	Stages []string

	// RepoDir is the checkout directory for remote hooks, empty otherwise.
	RepoDir string
}

// RunsInStage reports whether the hook participates in the given stage.
func (h *Hook) RunsInStage(stage string) bool {
	if len(h.Stages) == 0 {
		return stage == StagePreCommit
	}
	for _, s := range h.Stages {
		if s == stage {
			return true
		}
	}
	return false
}
