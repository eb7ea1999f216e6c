package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty repos",
			yaml:    "repos: []",
			wantErr: "at least one entry",
		},
		{
			name: "remote without rev",
			yaml: `repos:
  - repo: https://example.com/hooks.git
    hooks:
      - id: fmt
`,
			wantErr: "requires a pinned rev",
		},
		{
			name: "local with rev",
			yaml: `repos:
  - repo: local
    rev: v1.0.0
    hooks:
      - id: lint
        entry: make lint
        language: system
`,
			wantErr: "must not carry a rev",
		},
		{
			name: "bare word repo",
			yaml: `repos:
  - repo: hooks
    rev: v1.0.0
    hooks:
      - id: fmt
`,
			wantErr: "neither a URL",
		},
		{
			name: "entry without hooks",
			yaml: `repos:
  - repo: builtin
    hooks: []
`,
			wantErr: "declares no hooks",
		},
		{
			name: "duplicate hook ids",
			yaml: `repos:
  - repo: builtin
    hooks:
      - id: check-yaml
      - id: check-yaml
`,
			wantErr: "duplicate hook id",
		},
		{
			name: "uppercase hook id",
			yaml: `repos:
  - repo: builtin
    hooks:
      - id: Check-YAML
`,
			wantErr: "invalid hook id",
		},
		{
			name: "local hook without entry",
			yaml: `repos:
  - repo: local
    hooks:
      - id: lint
        language: system
`,
			wantErr: "requires an entry command",
		},
		{
			name: "local hook without language",
			yaml: `repos:
  - repo: local
    hooks:
      - id: lint
        entry: make lint
`,
			wantErr: "requires a language",
		},
		{
			name: "unparseable entry",
			yaml: `repos:
  - repo: local
    hooks:
      - id: lint
        entry: "make 'lint"
        language: system
`,
			wantErr: "not a valid command line",
		},
		{
			name: "unsupported language",
			yaml: `repos:
  - repo: local
    hooks:
      - id: lint
        entry: cargo clippy
        language: rust
`,
			wantErr: "unsupported language",
		},
		{
			name: "bad files regex",
			yaml: `repos:
  - repo: local
    hooks:
      - id: lint
        entry: make lint
        language: system
        files: "["
`,
			wantErr: "not a valid regex",
		},
		{
			name: "bad top-level exclude regex",
			yaml: `exclude: "("
repos:
  - repo: builtin
    hooks:
      - id: check-yaml
`,
			wantErr: "not a valid regex",
		},
		{
			name: "unknown stage",
			yaml: `repos:
  - repo: local
    hooks:
      - id: lint
        entry: make lint
        language: system
        stages: [post-merge]
`,
			wantErr: "unknown stage",
		},
		{
			name: "valid ssh remote",
			yaml: `repos:
  - repo: git@example.com:org/hooks.git
    rev: abc1234
    hooks:
      - id: fmt
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.wantErr),
					"error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
