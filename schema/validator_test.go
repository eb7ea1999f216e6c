package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAML(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid config",
			yaml: `repos:
  - repo: builtin
    hooks:
      - id: check-yaml
  - repo: local
    hooks:
      - id: lint
        entry: make lint
        language: system
        pass_filenames: false
`,
		},
		{
			name:    "missing repos",
			yaml:    `fail_fast: true`,
			wantErr: "repos",
		},
		{
			name: "unknown top-level key",
			yaml: `repos:
  - repo: builtin
    hooks:
      - id: check-yaml
minimum_verison: "1.0"
`,
			wantErr: "minimum_verison",
		},
		{
			name: "hook without id",
			yaml: `repos:
  - repo: local
    hooks:
      - entry: make lint
        language: system
`,
			wantErr: "id",
		},
		{
			name: "bad language",
			yaml: `repos:
  - repo: local
    hooks:
      - id: lint
        entry: make lint
        language: rust
`,
			wantErr: "schema validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateYAML([]byte(tt.yaml))
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	doc := map[string]interface{}{
		"repos": []interface{}{
			map[string]interface{}{
				"repo": "https://example.com/hooks.git",
				"rev":  "v1.0.0",
				"hooks": []interface{}{
					map[string]interface{}{"id": "fmt"},
				},
			},
		},
	}
	assert.NoError(t, v.Validate(doc))
}
