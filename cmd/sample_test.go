package cmd

import (
	"testing"

	"github.com/gatetools/gate/config"
	"github.com/gatetools/gate/hook/builtin"
	"github.com/gatetools/gate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The sample configuration must stay loadable and schema-clean, and its
// builtin ids must exist.
func TestSampleConfigIsValid(t *testing.T) {
	validator, err := schema.NewValidator()
	require.NoError(t, err)
	require.NoError(t, validator.ValidateYAML([]byte(sampleConfig)))

	cfg, err := config.LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	for _, repo := range cfg.Repos {
		if !repo.IsBuiltin() {
			continue
		}
		for _, h := range repo.Hooks {
			_, ok := builtin.Lookup(h.ID)
			assert.True(t, ok, "sample references unknown builtin %s", h.ID)
		}
	}
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "local", sourceLabel("local"))
	assert.Equal(t, "builtin", sourceLabel("builtin"))
	assert.Equal(t, "hooks", sourceLabel("https://example.com/org/hooks.git"))
}
