package bank

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchemaDef is the JSON Schema every catalog file must satisfy.
// Keyword lists ship as a single comma-separated string; the loader
// splits them.
const catalogSchemaDef = `{
  "type": "object",
  "required": ["version", "questions"],
  "properties": {
    "version": {"type": "string"},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "text", "role", "topic", "difficulty"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "text": {"type": "string", "minLength": 1},
          "category": {"type": "string"},
          "role": {"type": "string", "minLength": 1},
          "topic": {"type": "string", "minLength": 1},
          "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
          "expected_keywords": {"type": "string"},
          "ideal_answer": {"type": "string"},
          "time_limit": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateCatalog validates raw catalog JSON against the catalog schema.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := catalogSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

// catalogSchema returns the compiled catalog schema, compiling once.
func catalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(strings.NewReader(catalogSchemaDef))
		if err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}

		compiledSchema, compileErr = c.Compile("schema://catalog.json")
	})
	return compiledSchema, compileErr
}
