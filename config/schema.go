package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects the Config struct into the JSON Schema that
// editors and the validate command check configuration documents against.
// The schema-generator tool writes its output into the schema package,
// where it is embedded into the binary.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Reject unknown keys so typos surface as validation errors.
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for a flatter schema.
		ExpandedStruct: true,
		// Property names follow the YAML field names.
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Gate Configuration"
	schema.Description = "Schema for .gate.yaml hook configuration files."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
