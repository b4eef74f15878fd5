package ditesting

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-sitecontent/internal/di"
	"github.com/goliatone/go-sitecontent/internal/runtimeconfig"
)

// FixedTime is the clock reading used by NewContainer.
var FixedTime = time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.UTC)

// Files returns a small English/Arabic site: two pages, two posts (one
// translated) and one news item.
func Files() fstest.MapFS {
	return fstest.MapFS{
		"pages/en/home.md":  {Data: []byte("---\ntitle: Welcome\ntagline: Hello\n---\n# Home\n")},
		"pages/en/about.md": {Data: []byte("---\ntitle: About\n---\nAbout us.\n")},
		"pages/ar/home.md":  {Data: []byte("---\ntitle: أهلا\n---\n# الرئيسية\n")},
		"blog/en/first.md":  {Data: []byte("---\ntitle: First\ndate: 2024-01-01\ndescription: One\n---\nFirst post.\n")},
		"blog/en/second.md": {Data: []byte("---\ntitle: Second\ndate: 2024-02-01\n---\nSecond post.\n")},
		"blog/ar/first.md":  {Data: []byte("---\ntitle: الأول\ndate: 2024-01-01\n---\nالمقال الأول.\n")},
		"news/en/launch.md": {Data: []byte("---\ntitle: Launch\nlink: https://example.com/launch\n---\nWe launched.\n")},
	}
}

// NewContainer builds a container over files with a fixed clock. Options
// are applied after the defaults so tests can override them.
func NewContainer(t testing.TB, files fstest.MapFS, opts ...di.Option) *di.Container {
	t.Helper()
	if files == nil {
		files = Files()
	}
	cfg := runtimeconfig.DefaultConfig()
	cfg.Routes.BaseURL = "https://example.com"

	base := []di.Option{
		di.WithContentFS(files),
		di.WithClock(func() time.Time { return FixedTime }),
	}
	container, err := di.NewContainer(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("di.NewContainer: %v", err)
	}
	return container
}
