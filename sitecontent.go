// Package sitecontent resolves the Markdown pages, blog posts and news items
// of a bilingual site into typed records, falling back to the default
// locale when a translation is missing.
package sitecontent

import (
	"context"

	contentcmd "github.com/goliatone/go-sitecontent/internal/commands/content"
	"github.com/goliatone/go-sitecontent/internal/content"
	"github.com/goliatone/go-sitecontent/internal/di"
	"github.com/goliatone/go-sitecontent/internal/i18n"
	"github.com/goliatone/go-sitecontent/internal/locale"
	"github.com/goliatone/go-sitecontent/internal/routes"
)

// ContentService exports the content resolution contract.
type ContentService = content.Service

type (
	Locale      = locale.Locale
	PageContent = content.PageContent
	BlogSummary = content.BlogSummary
	BlogPost    = content.BlogPost
	NewsItem    = content.NewsItem
	Route       = routes.Route
)

// Option customises the underlying container.
type Option = di.Option

var (
	WithLoggerProvider    = di.WithLoggerProvider
	WithContentFS         = di.WithContentFS
	WithMetricsRegisterer = di.WithMetricsRegisterer
	WithClock             = di.WithClock
	WithCommandRegistry   = di.WithCommandRegistry
	WithContentService    = di.WithContentService
)

// LocaleCookie is the cookie routing collaborators use to persist the
// visitor's locale.
const LocaleCookie = locale.Cookie

var (
	ErrPageNotFound     = content.ErrPageNotFound
	ErrMalformedContent = content.ErrMalformedContent
)

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the configured content service.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Locales returns the configured locale set.
func (m *Module) Locales() *locale.Set {
	return m.container.Locales()
}

// Translator returns the UI dictionary translator.
func (m *Module) Translator() *i18n.Translator {
	return m.container.Translator()
}

// Commands returns the preview, list and routes command handlers.
func (m *Module) Commands() *contentcmd.HandlerSet {
	return m.container.Commands()
}

// StaticRoutes enumerates every statically generated URL.
func (m *Module) StaticRoutes(ctx context.Context) ([]Route, error) {
	return m.container.RouteService().StaticRoutes(ctx)
}
