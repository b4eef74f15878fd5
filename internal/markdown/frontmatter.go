package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrMalformedFrontMatter marks a front matter block that is present but
// cannot be decoded.
var ErrMalformedFrontMatter = errors.New("markdown: malformed front matter")

// FrontMatter holds the decoded metadata of a document. Keys are the raw
// front matter keys; nested maps always use string keys and timestamps are
// kept as text so values stay JSON compatible.
type FrontMatter map[string]any

// Has reports whether key is present with a non-nil value.
func (fm FrontMatter) Has(key string) bool {
	value, ok := fm[key]
	return ok && value != nil
}

// String returns the scalar value of key rendered as text. Missing keys,
// nil values and non-scalar values report false.
func (fm FrontMatter) String(key string) (string, bool) {
	value, ok := fm[key]
	if !ok || value == nil {
		return "", false
	}
	switch typed := value.(type) {
	case string:
		return typed, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(typed), true
	default:
		return "", false
	}
}

// Text returns the trimmed scalar value of key, or fallback when the key is
// missing or blank.
func (fm FrontMatter) Text(key, fallback string) string {
	value, ok := fm.String(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

// ParseFrontMatter extracts metadata and the Markdown body from source.
// Documents without front matter yield empty metadata and the full source as
// body. A front matter block that fails to decode, or that is opened but
// never closed, is reported as ErrMalformedFrontMatter.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var raw map[string]any

	parse := frontmatter.Parse
	opened := opensFrontMatter(source)
	if opened {
		parse = frontmatter.MustParse
	}

	body, err := parse(bytes.NewReader(source), &raw)
	if err != nil {
		if opened && errors.Is(err, frontmatter.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: missing closing delimiter", ErrMalformedFrontMatter)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedFrontMatter, err)
	}

	meta := make(FrontMatter, len(raw))
	for key, value := range raw {
		meta[key] = normalizeValue(value)
	}
	return meta, body, nil
}

// openingDelimiters are the start lines recognised by the front matter decoder.
var openingDelimiters = map[string]struct{}{
	"---":     {},
	"---yaml": {},
	"---toml": {},
	"---json": {},
	"+++":     {},
	";;;":     {},
	"{":       {},
}

// opensFrontMatter reports whether the first non-blank line of source starts
// a front matter block.
func opensFrontMatter(source []byte) bool {
	rest := source
	for len(rest) > 0 {
		line := rest
		if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
			line, rest = rest[:idx], rest[idx+1:]
		} else {
			rest = nil
		}
		trimmed := string(bytes.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		_, ok := openingDelimiters[trimmed]
		return ok
	}
	return false
}

func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = normalizeValue(v)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[fmt.Sprint(k)] = normalizeValue(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = normalizeValue(v)
		}
		return out
	case time.Time:
		return FormatTimestamp(typed)
	case int:
		return int64(typed)
	default:
		return value
	}
}

// FormatTimestamp renders a decoded timestamp back to text: date-only values
// keep the 2006-01-02 layout, anything else uses RFC 3339.
func FormatTimestamp(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 && t.Location() == time.UTC {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
