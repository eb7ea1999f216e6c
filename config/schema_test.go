package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema["$schema"])
	assert.Equal(t, "Gate Configuration", schema["title"])

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok, "schema should have properties")
	assert.Contains(t, props, "repos")
	assert.Contains(t, props, "exclude")
	assert.Contains(t, props, "fail_fast")

	required, ok := schema["required"].([]interface{})
	require.True(t, ok, "schema should list required fields")
	assert.Contains(t, required, "repos")
}
