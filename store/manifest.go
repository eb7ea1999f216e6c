package store

import (
	"os"
	"path/filepath"

	"github.com/gatetools/gate/errors"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the file a hook repository publishes its hooks in.
const ManifestFileName = ".gate-hooks.yaml"

// ManifestHook is one hook definition published by a hook repository.
type ManifestHook struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name,omitempty"`
	Entry         string   `yaml:"entry"`
	Language      string   `yaml:"language"`
	Types         []string `yaml:"types,omitempty"`
	Files         string   `yaml:"files,omitempty"`
	Exclude       string   `yaml:"exclude,omitempty"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty"`
	AlwaysRun     bool     `yaml:"always_run,omitempty"`
	Stages        []string `yaml:"stages,omitempty"`
}

// PassesFilenames reports whether the hook receives per-file arguments.
func (h *ManifestHook) PassesFilenames() bool {
	return h.PassFilenames == nil || *h.PassFilenames
}

// Manifest is the hook inventory of a cloned hook repository.
type Manifest struct {
	Hooks []ManifestHook `yaml:"hooks"`
}

// Lookup returns the manifest hook with the given id.
func (m *Manifest) Lookup(id string) (*ManifestHook, bool) {
	for i := range m.Hooks {
		if m.Hooks[i].ID == id {
			return &m.Hooks[i], true
		}
	}
	return nil, false
}

// LoadManifest reads and validates the hook manifest of a cloned
// repository.
func LoadManifest(repoDir string) (*Manifest, error) {
	path := filepath.Join(repoDir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeManifestError,
				"hook repository has no "+ManifestFileName).
				WithDetail("dir", repoDir)
		}
		return nil, errors.Wrap(err, errors.ErrCodeManifestError, "failed to read hook manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestError, "failed to parse hook manifest")
	}

	if len(manifest.Hooks) == 0 {
		return nil, errors.New(errors.ErrCodeManifestError, "hook manifest declares no hooks").
			WithDetail("dir", repoDir)
	}

	seen := make(map[string]bool, len(manifest.Hooks))
	for i := range manifest.Hooks {
		h := &manifest.Hooks[i]
		if h.ID == "" {
			return nil, errors.New(errors.ErrCodeManifestError, "hook manifest entry is missing an id")
		}
		if seen[h.ID] {
			return nil, errors.New(errors.ErrCodeManifestError, "duplicate hook id in manifest").
				WithDetail("hook", h.ID)
		}
		seen[h.ID] = true
		if h.Entry == "" {
			return nil, errors.New(errors.ErrCodeManifestError, "hook manifest entry is missing an entry command").
				WithDetail("hook", h.ID)
		}
		if h.Name == "" {
			h.Name = h.ID
		}
	}

	return &manifest, nil
}
