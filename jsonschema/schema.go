package jsonschema

import (
	json "github.com/goccy/go-json"
)

// Schema is a minimal JSON Schema representation used for export.
// Only the keywords a value schema can express are modeled.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`

	// Numeric
	Minimum    *float64 `json:"minimum,omitempty"`
	Maximum    *float64 `json:"maximum,omitempty"`
	MultipleOf *float64 `json:"multipleOf,omitempty"`

	// String
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Enum      []string `json:"enum,omitempty"`

	// Object (catalog projection)
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
}

// Float returns a pointer to v, for Minimum/Maximum/MultipleOf.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for MinLength/MaxLength.
func Int(v int) *int { return &v }

// Marshal renders s as indented JSON.
func Marshal(s *Schema) ([]byte, error) { return json.MarshalIndent(s, "", "  ") }
