package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema is the JSON Schema every config file must satisfy before
// it is unmarshalled. Structural mistakes (wrong types, negative counts,
// unknown keys) surface here with a precise path instead of as zero
// values downstream.
const configSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"plugins": {
			"type": "array",
			"items": {"type": "string", "minLength": 1},
			"minItems": 1
		},
		"questions_per_set": {"type": "integer", "minimum": 1},
		"options_per_question": {"type": "integer", "minimum": 2},
		"syllabus": {"type": "string", "minLength": 1},
		"profile_id": {"type": "string"}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSchema checks raw config bytes against configSchema. The schema
// is compiled once per process and cached.
func validateSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(configSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://config.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://config.json")
	})
	if compileErr != nil {
		return compileErr
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
