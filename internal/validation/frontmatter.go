package validation

import (
	"fmt"
	"strings"
)

// Front matter keys recognised by the site templates.
const (
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldDescription = "description"
	FieldTagline     = "tagline"
	FieldIntro       = "intro"
	FieldImage       = "image"
	FieldImageAlt    = "imageAlt"
	FieldLink        = "link"
	FieldSummary     = "summary"
)

var frontMatterFields = map[string][]string{
	"pages": {FieldTitle, FieldTagline, FieldIntro},
	"blog":  {FieldTitle, FieldDate, FieldDescription, FieldImage, FieldImageAlt},
	"news":  {FieldTitle, FieldDate, FieldSummary, FieldImage, FieldImageAlt, FieldLink},
}

// FrontMatterSchema returns the JSON schema for the known front matter
// fields of kind. Known fields must be scalars (or null when left empty);
// unknown keys are accepted.
func FrontMatterSchema(kind string) (map[string]any, bool) {
	fields, ok := frontMatterFields[strings.TrimSpace(kind)]
	if !ok {
		return nil, false
	}
	properties := make(map[string]any, len(fields))
	for _, field := range fields {
		properties[field] = map[string]any{
			"type": []any{"string", "number", "boolean", "null"},
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}, true
}

// FrontMatterValidator holds one compiled schema per content kind.
type FrontMatterValidator struct {
	schemas map[string]*Schema
}

// NewFrontMatterValidator compiles the schemas for every known kind.
func NewFrontMatterValidator() (*FrontMatterValidator, error) {
	schemas := make(map[string]*Schema, len(frontMatterFields))
	for kind := range frontMatterFields {
		raw, _ := FrontMatterSchema(kind)
		compiled, err := Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("front matter schema %s: %w", kind, err)
		}
		schemas[kind] = compiled
	}
	return &FrontMatterValidator{schemas: schemas}, nil
}

// Validate checks meta against the schema of kind. Unknown kinds pass. The
// content service reports violations as warnings and keeps the document.
func (v *FrontMatterValidator) Validate(kind string, meta map[string]any) error {
	if v == nil {
		return nil
	}
	schema, ok := v.schemas[strings.TrimSpace(kind)]
	if !ok {
		return nil
	}
	return schema.Validate(meta)
}
