package fs

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const boardSchemaURL = "kanban://board.schema.json"

// boardSchema describes the persisted board document. Extra properties are
// tolerated so older or newer writers can share a file.
const boardSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["columns"],
  "properties": {
    "columns": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "cards"],
        "properties": {
          "title": {"type": "string"},
          "cards": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["label"],
              "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "description": {"type": "string"},
                "details": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

var compiledBoardSchema = jsonschema.MustCompileString(boardSchemaURL, boardSchema)

// validateDocument checks raw JSON against the board schema
func validateDocument(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if err := compiledBoardSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	return nil
}
