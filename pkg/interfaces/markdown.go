package interfaces

// MarkdownParser defines how a Markdown body is converted into HTML. Parsers
// must be deterministic: the same input and options always yield the same
// bytes.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering, keeping option names readable
// for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	// Extensions lists goldmark extension names (gfm, table, footnote, ...).
	Extensions []string
	// Sanitize runs rendered HTML through a UGC sanitising policy.
	Sanitize bool
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
	// SafeMode omits raw HTML embedded in the Markdown source.
	SafeMode bool
}
