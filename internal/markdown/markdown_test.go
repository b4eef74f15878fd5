package markdown

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

func TestParseFrontMatterSplitsMetadataAndBody(t *testing.T) {
	source := []byte("---\ntitle: Hello\ndate: 2024-05-01\ntags:\n  - go\n  - cms\nextra:\n  nested: true\n---\n# Hi\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if got := meta.Text("title", ""); got != "Hello" {
		t.Fatalf("expected title Hello, got %q", got)
	}
	if got := meta.Text("date", ""); got != "2024-05-01" {
		t.Fatalf("expected date text 2024-05-01, got %q", got)
	}
	if _, ok := meta["extra"].(map[string]any); !ok {
		t.Fatalf("expected nested map with string keys, got %T", meta["extra"])
	}
	if strings.TrimSpace(string(body)) != "# Hi" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	source := []byte("# Plain\n\nNo metadata here.\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(meta) != 0 {
		t.Fatalf("expected empty metadata, got %v", meta)
	}
	if !bytes.Equal(bytes.TrimSpace(body), bytes.TrimSpace(source)) {
		t.Fatalf("expected full source as body, got %q", body)
	}
}

func TestParseFrontMatterMalformed(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	if !errors.Is(err, ErrMalformedFrontMatter) {
		t.Fatalf("expected ErrMalformedFrontMatter, got %v", err)
	}
}

func TestParseFrontMatterUnclosedBlock(t *testing.T) {
	sources := map[string]string{
		"yaml":          "---\ntitle: A\n# Hi",
		"leading blank": "\n\n---\ntitle: A\n\n# Hi\n",
		"toml":          "+++\ntitle = \"A\"\n# Hi\n",
		"json":          "{\n  \"title\": \"A\"\n# Hi\n",
	}
	for name, source := range sources {
		meta, body, err := ParseFrontMatter([]byte(source))
		if !errors.Is(err, ErrMalformedFrontMatter) {
			t.Fatalf("%s: expected ErrMalformedFrontMatter, got meta=%v body=%q err=%v", name, meta, body, err)
		}
		if !strings.Contains(err.Error(), "missing closing delimiter") {
			t.Fatalf("%s: unexpected error text %q", name, err)
		}
	}
}

func TestParseFrontMatterBodyRuleIsNotAnOpening(t *testing.T) {
	source := []byte("# Title\n\n---\n\nmore text\n")
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(meta) != 0 || !bytes.Equal(body, source) {
		t.Fatalf("expected body untouched, got meta=%v body=%q", meta, body)
	}
}

func TestFrontMatterTextFallbacks(t *testing.T) {
	meta := FrontMatter{
		"blank":  "   ",
		"number": int64(42),
		"list":   []any{"a"},
		"nil":    nil,
	}

	cases := []struct {
		key  string
		want string
	}{
		{key: "blank", want: "default"},
		{key: "number", want: "42"},
		{key: "list", want: "default"},
		{key: "nil", want: "default"},
		{key: "missing", want: "default"},
	}

	for _, tc := range cases {
		if got := meta.Text(tc.key, "default"); got != tc.want {
			t.Fatalf("Text(%q): expected %q, got %q", tc.key, tc.want, got)
		}
	}

	if meta.Has("nil") {
		t.Fatal("expected nil value to report absent")
	}
	if !meta.Has("list") {
		t.Fatal("expected list to be present")
	}
}

func TestGoldmarkParserRendersHeading(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	out, err := parser.Parse([]byte("# Hi\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Hi</h1>") {
		t.Fatalf("expected heading, got %q", html)
	}
}

func TestGoldmarkParserIsDeterministic(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	source := []byte("## Title\n\n- [x] done\n- [ ] todo\n\nVisit https://example.com\n")

	first, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected identical output\nfirst:  %q\nsecond: %q", first, second)
	}
	if !strings.Contains(string(first), `type="checkbox"`) {
		t.Fatalf("expected task list rendering, got %q", first)
	}
	if !strings.Contains(string(first), `href="https://example.com"`) {
		t.Fatalf("expected linkified URL, got %q", first)
	}
}

func TestGoldmarkParserPassesRawHTMLByDefault(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	out, err := parser.Parse([]byte("<div class=\"note\">trusted</div>\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(out), `<div class="note">trusted</div>`) {
		t.Fatalf("expected raw HTML passthrough, got %q", out)
	}
}

func TestGoldmarkParserSafeModeOmitsRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	out, err := parser.ParseWithOptions([]byte("<div>raw</div>\n"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(out), "<div>") {
		t.Fatalf("expected raw HTML to be omitted, got %q", out)
	}
}

func TestGoldmarkParserSanitizeStripsScripts(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Sanitize: true})

	out, err := parser.Parse([]byte("# Title\n\n<script>alert(1)</script>\n\nText\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<script") {
		t.Fatalf("expected script to be removed, got %q", html)
	}
	if !strings.Contains(html, `id="title"`) {
		t.Fatalf("expected heading id to survive sanitising, got %q", html)
	}
}

func TestMergeOptions(t *testing.T) {
	base := interfaces.ParseOptions{Extensions: []string{"gfm"}, HardWraps: true}
	merged := MergeOptions(base, interfaces.ParseOptions{Extensions: []string{"footnote"}, Sanitize: true})

	if len(merged.Extensions) != 1 || merged.Extensions[0] != "footnote" {
		t.Fatalf("expected override extensions, got %v", merged.Extensions)
	}
	if !merged.HardWraps || !merged.Sanitize || merged.SafeMode {
		t.Fatalf("unexpected toggles %+v", merged)
	}
}

func TestGoldmarkParserOverridesKeepDefaults(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Sanitize: true, HardWraps: true})

	out, err := parser.ParseWithOptions([]byte("line one\nline two\n\n<script>alert(1)</script>\n"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<script") {
		t.Fatalf("expected default sanitising to apply, got %q", html)
	}
	if !strings.Contains(html, "<br") {
		t.Fatalf("expected default hard wraps to apply, got %q", html)
	}
}

func TestCollectExtensionsIgnoresUnknownAndDuplicates(t *testing.T) {
	exts := collectExtensions([]string{"GFM", "gfm", "unknown", " footnote "})
	if len(exts) != 2 {
		t.Fatalf("expected 2 extensions, got %d", len(exts))
	}
	if !KnownExtension("Tables") || KnownExtension("mermaid") {
		t.Fatal("unexpected KnownExtension result")
	}
}
