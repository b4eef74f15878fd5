package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestFrontMatterValidatorAcceptsScalars(t *testing.T) {
	validator := mustValidator(t)

	meta := map[string]any{
		"title":  "Hello",
		"date":   "2024-01-01",
		"image":  nil,
		"tags":   []any{"go"},
		"weight": int64(3),
	}
	if err := validator.Validate("blog", meta); err != nil {
		t.Fatalf("expected valid front matter, got %v", err)
	}
}

func TestFrontMatterValidatorRejectsStructuredKnownField(t *testing.T) {
	validator := mustValidator(t)

	meta := map[string]any{
		"title": map[string]any{"en": "Hello"},
	}
	err := validator.Validate("pages", meta)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected issues")
	}
	if !strings.Contains(issues[0].Location, "title") {
		t.Fatalf("expected issue at title, got %+v", issues)
	}
}

func TestFrontMatterValidatorIgnoresUnknownKind(t *testing.T) {
	validator := mustValidator(t)

	if err := validator.Validate("events", map[string]any{"title": []any{"x"}}); err != nil {
		t.Fatalf("expected unknown kind to pass, got %v", err)
	}
}

func TestFrontMatterSchemaPerKind(t *testing.T) {
	schema, ok := FrontMatterSchema("news")
	if !ok {
		t.Fatal("expected news schema")
	}
	properties := schema["properties"].(map[string]any)
	for _, field := range []string{FieldLink, FieldSummary, FieldDate} {
		if _, ok := properties[field]; !ok {
			t.Fatalf("expected %s in news schema", field)
		}
	}
	if _, ok := FrontMatterSchema("unknown"); ok {
		t.Fatal("expected no schema for unknown kind")
	}
}

func TestCompileRejectsEmptySchema(t *testing.T) {
	if _, err := Compile(nil); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestPayloadValidationErrorFormatsLocations(t *testing.T) {
	err := &PayloadValidationError{Issues: []ValidationIssue{
		{Location: "/title", Message: "expected string"},
		{Location: ""},
	}}
	if got := err.Error(); got != "#/title: expected string; #" {
		t.Fatalf("unexpected error text %q", got)
	}
}

func mustValidator(t *testing.T) *FrontMatterValidator {
	t.Helper()

	validator, err := NewFrontMatterValidator()
	if err != nil {
		t.Fatalf("NewFrontMatterValidator: %v", err)
	}
	return validator
}
