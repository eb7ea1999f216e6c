package runner

import (
	"context"

	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/errors"
	"github.com/gatetools/gate/hook"
	"github.com/gatetools/gate/hook/builtin"
	"github.com/gatetools/gate/store"
)

// resolve turns the configuration's repo entries into the ordered list of
// hooks participating in this run. Remote repositories are cloned (or
// reused from the cache) as a side effect.
func (r *Runner) resolve(ctx context.Context) ([]hook.Hook, error) {
	var hooks []hook.Hook

	for i := range r.opts.Config.Repos {
		entry := &r.opts.Config.Repos[i]

		if r.opts.OnlyHook != "" && !entryHasHook(entry, r.opts.OnlyHook) {
			continue
		}

		var manifest *store.Manifest
		var repoDir string
		if entry.IsRemote() {
			if r.opts.Store == nil {
				return nil, errors.New(errors.ErrCodeInternal, "no store configured for remote hook repositories")
			}
			dir, err := r.opts.Store.Ensure(ctx, entry.Repo, entry.Rev)
			if err != nil {
				return nil, err
			}
			m, err := store.LoadManifest(dir)
			if err != nil {
				return nil, err
			}
			manifest = m
			repoDir = dir
		}

		for j := range entry.Hooks {
			spec := &entry.Hooks[j]
			if r.opts.OnlyHook != "" && spec.ID != r.opts.OnlyHook {
				continue
			}

			h, err := resolveHook(entry, spec, manifest, repoDir)
			if err != nil {
				return nil, err
			}
			if !h.RunsInStage(r.opts.Stage) {
				continue
			}
			hooks = append(hooks, *h)
		}
	}

	return hooks, nil
}

func entryHasHook(entry *config.RepoEntry, id string) bool {
	for i := range entry.Hooks {
		if entry.Hooks[i].ID == id {
			return true
		}
	}
	return false
}

// resolveHook merges one hook spec with its source definition (builtin
// check or manifest entry). Spec fields always win over source defaults.
func resolveHook(entry *config.RepoEntry, spec *config.HookSpec, manifest *store.Manifest, repoDir string) (*hook.Hook, error) {
	h := &hook.Hook{
		ID:            spec.ID,
		Name:          spec.Name,
		Source:        entry.Repo,
		Entry:         spec.Entry,
		Language:      spec.Language,
		Args:          spec.Args,
		Types:         spec.Types,
		Files:         spec.Files,
		Exclude:       spec.Exclude,
		PassFilenames: spec.PassesFilenames(),
		AlwaysRun:     spec.AlwaysRun,
		Stages:        spec.Stages,
		RepoDir:       repoDir,
	}

	switch {
	case entry.IsBuiltin():
		check, ok := builtin.Lookup(spec.ID)
		if !ok {
			return nil, errors.New(errors.ErrCodeHookNotFound, "unknown builtin hook").
				WithDetail("hook", spec.ID)
		}
		if h.Name == "" || h.Name == h.ID {
			h.Name = check.Name
		}
		if len(h.Types) == 0 {
			h.Types = check.Types
		}

	case entry.IsRemote():
		def, ok := manifest.Lookup(spec.ID)
		if !ok {
			return nil, errors.New(errors.ErrCodeHookNotFound, "hook not published by repository").
				WithDetail("hook", spec.ID).
				WithDetail("repo", entry.Repo)
		}
		if h.Entry == "" {
			h.Entry = def.Entry
		}
		if h.Language == "" {
			h.Language = def.Language
		}
		if h.Name == "" || h.Name == h.ID {
			h.Name = def.Name
		}
		if len(h.Types) == 0 {
			h.Types = def.Types
		}
		if h.Files == "" {
			h.Files = def.Files
		}
		if h.Exclude == "" {
			h.Exclude = def.Exclude
		}
		if spec.PassFilenames == nil {
			h.PassFilenames = def.PassesFilenames()
		}
		if !h.AlwaysRun {
			h.AlwaysRun = def.AlwaysRun
		}
		if len(spec.Stages) == 0 || (len(spec.Stages) == 1 && spec.Stages[0] == hook.StagePreCommit) {
			if len(def.Stages) > 0 {
				h.Stages = def.Stages
			}
		}
	}

	if h.Name == "" {
		h.Name = h.ID
	}
	if h.Language == "" {
		h.Language = config.LanguageSystem
	}

	return h, nil
}
