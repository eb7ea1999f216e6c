package config

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// Repo source markers. A repo entry either points at a remote hook
// repository by URL, or uses one of these literals.
const (
	// LocalRepo marks an entry whose hooks are defined inline in the
	// configuration document rather than fetched from a hook repository.
	LocalRepo = "local"

	// BuiltinRepo marks an entry whose hooks are implemented natively by
	// the gate binary (trailing-whitespace, check-yaml, ...).
	BuiltinRepo = "builtin"
)

// Languages the runner knows how to provision.
const (
	LanguageSystem = "system" // entry resolved on PATH
	LanguageScript = "script" // entry is a script relative to the hook repo
	LanguageGolang = "golang" // entry run with `go run` inside the hook repo
)

// HookSpec configures a single hook within a repo entry.
type HookSpec struct {
	ID            string   `yaml:"id" jsonschema:"description=Identifier of the hook,required"`
	Name          string   `yaml:"name,omitempty" jsonschema:"description=Display label shown while the hook runs"`
	Entry         string   `yaml:"entry,omitempty" jsonschema:"description=Command line to execute (required for local hooks)"`
	Language      string   `yaml:"language,omitempty" jsonschema:"description=Runtime the driver must provision,enum=system,enum=script,enum=golang"`
	Args          []string `yaml:"args,omitempty" jsonschema:"description=Additional arguments appended to the entry command"`
	Types         []string `yaml:"types,omitempty" jsonschema:"description=File type tags restricting which files trigger the hook"`
	Files         string   `yaml:"files,omitempty" jsonschema:"description=Regex a file path must match to be passed to the hook"`
	Exclude       string   `yaml:"exclude,omitempty" jsonschema:"description=Regex excluding file paths from the hook"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty" jsonschema:"description=When false the entry command is invoked without per-file arguments (default: true)"`
	AlwaysRun     bool     `yaml:"always_run,omitempty" jsonschema:"description=Run the hook even when no files match its filters"`
	Stages        []string `yaml:"stages,omitempty" jsonschema:"description=Git hook stages this hook runs in (default: pre-commit)"`
}

// PassesFilenames reports whether the hook receives per-file arguments.
// Defaults to true when unset.
func (h *HookSpec) PassesFilenames() bool {
	return h.PassFilenames == nil || *h.PassFilenames
}

// RepoEntry is one entry of the top-level repos sequence: a hook source
// plus the ordered hooks taken from it.
type RepoEntry struct {
	Repo  string     `yaml:"repo" jsonschema:"description=Hook source: a git URL or the literal 'local' or 'builtin',required"`
	Rev   string     `yaml:"rev,omitempty" jsonschema:"description=Pinned revision of the hook repository (required for remote sources)"`
	Hooks []HookSpec `yaml:"hooks" jsonschema:"description=Ordered hooks to run from this source,required"`
}

// IsLocal reports whether the entry defines its hooks inline.
func (r *RepoEntry) IsLocal() bool { return r.Repo == LocalRepo }

// IsBuiltin reports whether the entry uses hooks shipped with the binary.
func (r *RepoEntry) IsBuiltin() bool { return r.Repo == BuiltinRepo }

// IsRemote reports whether the entry references an external hook repository.
func (r *RepoEntry) IsRemote() bool { return !r.IsLocal() && !r.IsBuiltin() }

// Config represents the .gate.yaml configuration document.
type Config struct {
	Repos    []RepoEntry `yaml:"repos" jsonschema:"description=Ordered sequence of hook source repositories,required"`
	Exclude  string      `yaml:"exclude,omitempty" jsonschema:"description=Regex excluding file paths from every hook"`
	FailFast bool        `yaml:"fail_fast,omitempty" jsonschema:"description=Stop at the first failing hook"`

	MinimumVersion string `yaml:"minimum_version,omitempty" jsonschema:"description=Minimum gate version required by this configuration"`
}

// SetDefaults fills in defaults for optional fields.
func (c *Config) SetDefaults() {
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			h := &c.Repos[i].Hooks[j]
			if h.Name == "" {
				h.Name = h.ID
			}
			if len(h.Stages) == 0 {
				h.Stages = []string{"pre-commit"}
			}
		}
	}
}
