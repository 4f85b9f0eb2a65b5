package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalid is wrapped by every schema violation returned from Validate.
var ErrInvalid = errors.New("schema validation failed")

// resumeSchema mirrors the rules the builder form enforces before saving.
const resumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["contactInfo"],
  "definitions": {
    "optionalURL": {
      "anyOf": [
        {"type": "string", "maxLength": 0},
        {"type": "string", "format": "uri"}
      ]
    },
    "entry": {
      "type": "object",
      "required": ["title", "organization", "startDate", "description"],
      "properties": {
        "title": {"type": "string", "minLength": 1},
        "organization": {"type": "string", "minLength": 1},
        "startDate": {"type": "string", "minLength": 1},
        "endDate": {"type": "string"},
        "description": {"type": "string", "minLength": 1},
        "current": {"type": "boolean"}
      }
    },
    "entries": {
      "anyOf": [
        {"type": "null"},
        {"type": "array", "items": {"$ref": "#/definitions/entry"}}
      ]
    }
  },
  "properties": {
    "contactInfo": {
      "type": "object",
      "required": ["email"],
      "properties": {
        "email": {"type": "string", "format": "email"},
        "mobile": {"type": "string"},
        "linkedin": {"$ref": "#/definitions/optionalURL"},
        "twitter": {"$ref": "#/definitions/optionalURL"}
      }
    },
    "summary": {"type": "string"},
    "skills": {"type": "string"},
    "experience": {"$ref": "#/definitions/entries"},
    "education": {"$ref": "#/definitions/entries"},
    "projects": {"$ref": "#/definitions/entries"}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(resumeSchema)

// Validate checks a form submission before it is encoded and saved.
func Validate(r Resume) error {
	return validate(schemaLoader, gojsonschema.NewGoLoader(r))
}

// ValidateMap validates a generic map against the résumé schema.
func ValidateMap(m map[string]interface{}) error {
	return validate(schemaLoader, gojsonschema.NewGoLoader(m))
}

func validate(schema, doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(schema, doc)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
