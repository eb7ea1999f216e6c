package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gatetools/gate/errors"
	"github.com/kballard/go-shellquote"
)

var hookIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

var knownLanguages = map[string]bool{
	LanguageSystem: true,
	LanguageScript: true,
	LanguageGolang: true,
}

var knownStages = map[string]bool{
	"pre-commit": true,
	"pre-push":   true,
	"manual":     true,
}

// Validate checks the configuration document invariants: the repos
// sequence is non-empty, remote entries carry a pinned rev, hook ids are
// unique within an entry, and local hooks have a parseable entry command.
func (c *Config) Validate() error {
	if len(c.Repos) == 0 {
		return errors.New(errors.ErrCodeConfigValidation, "repos must contain at least one entry")
	}

	if c.Exclude != "" {
		if _, err := regexp.Compile(c.Exclude); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, "top-level exclude is not a valid regex").
				WithDetail("exclude", c.Exclude)
		}
	}

	for i := range c.Repos {
		if err := validateRepoEntry(&c.Repos[i]); err != nil {
			return err
		}
	}

	return nil
}

func validateRepoEntry(entry *RepoEntry) error {
	if entry.Repo == "" {
		return errors.New(errors.ErrCodeConfigValidation, "repo entry is missing the repo key")
	}

	if entry.IsRemote() {
		if !strings.Contains(entry.Repo, "://") && !strings.HasPrefix(entry.Repo, "git@") {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("repo '%s' is neither a URL nor the literal 'local' or 'builtin'", entry.Repo)).
				WithDetail("repo", entry.Repo)
		}
		if entry.Rev == "" {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("repo '%s' requires a pinned rev", entry.Repo)).
				WithDetail("repo", entry.Repo)
		}
	} else if entry.Rev != "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("repo '%s' must not carry a rev", entry.Repo)).
			WithDetail("repo", entry.Repo)
	}

	if len(entry.Hooks) == 0 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("repo '%s' declares no hooks", entry.Repo)).
			WithDetail("repo", entry.Repo)
	}

	seen := make(map[string]bool, len(entry.Hooks))
	for i := range entry.Hooks {
		h := &entry.Hooks[i]
		if err := validateHookSpec(entry, h); err != nil {
			return err
		}
		if seen[h.ID] {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("duplicate hook id '%s' in repo '%s'", h.ID, entry.Repo)).
				WithDetail("hook", h.ID).
				WithDetail("repo", entry.Repo)
		}
		seen[h.ID] = true
	}

	return nil
}

func validateHookSpec(entry *RepoEntry, h *HookSpec) error {
	if h.ID == "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook in repo '%s' is missing an id", entry.Repo)).
			WithDetail("repo", entry.Repo)
	}
	if !hookIDRegex.MatchString(h.ID) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("invalid hook id '%s' (must be lowercase letters, digits, dots, underscores, and hyphens)", h.ID)).
			WithDetail("hook", h.ID)
	}

	if entry.IsLocal() {
		if h.Entry == "" {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("local hook '%s' requires an entry command", h.ID)).
				WithDetail("hook", h.ID)
		}
		if h.Language == "" {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("local hook '%s' requires a language", h.ID)).
				WithDetail("hook", h.ID)
		}
	}

	if h.Entry != "" {
		if _, err := shellquote.Split(h.Entry); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("hook '%s' entry is not a valid command line", h.ID)).
				WithDetail("hook", h.ID).
				WithDetail("entry", h.Entry)
		}
	}

	if h.Language != "" && !knownLanguages[h.Language] {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("hook '%s' uses unsupported language '%s'", h.ID, h.Language)).
			WithDetail("hook", h.ID).
			WithDetail("language", h.Language)
	}

	for _, pattern := range []struct{ key, value string }{
		{"files", h.Files},
		{"exclude", h.Exclude},
	} {
		if pattern.value == "" {
			continue
		}
		if _, err := regexp.Compile(pattern.value); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("hook '%s' %s is not a valid regex", h.ID, pattern.key)).
				WithDetail("hook", h.ID).
				WithDetail(pattern.key, pattern.value)
		}
	}

	for _, stage := range h.Stages {
		if !knownStages[stage] {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("hook '%s' uses unknown stage '%s'", h.ID, stage)).
				WithDetail("hook", h.ID).
				WithDetail("stage", stage)
		}
	}

	return nil
}
