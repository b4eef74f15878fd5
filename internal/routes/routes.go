package routes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-sitecontent/internal/locale"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/store"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Route names registered in every locale group.
const (
	RouteHome = "home"
	RoutePage = "page"
	RouteBlog = "blog"
	RoutePost = "post"
)

// SiteGroup is the root urlkit group holding one child group per locale.
const SiteGroup = "site"

const slugParam = "slug"

var ErrRouteUnavailable = errors.New("routes: route unavailable")

// Config configures route enumeration.
type Config struct {
	// BaseURL prefixes every generated URL. Empty yields root relative URLs.
	BaseURL string
	// HomeSlug is the page slug served at the locale root.
	HomeSlug string
	// PagesDir and BlogDir name the content directories enumerated for routes.
	PagesDir string
	BlogDir  string
}

// Route is one statically generated URL.
type Route struct {
	Name   string        `json:"name"`
	Locale locale.Locale `json:"locale"`
	Slug   string        `json:"slug,omitempty"`
	URL    string        `json:"url"`
}

// Option configures the route service.
type Option func(*Service)

// WithLogger overrides the route logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service builds locale prefixed URLs with a go-urlkit route manager and
// enumerates the full static route set.
type Service struct {
	manager  *urlkit.RouteManager
	locales  *locale.Set
	docs     *store.Store
	homeSlug string
	pagesDir string
	blogDir  string
	logger   interfaces.Logger
}

// RouteConfig returns the urlkit configuration for locales: a site group at
// baseURL and a /<locale> child group per locale sharing the same paths.
func RouteConfig(baseURL string, locales *locale.Set) *urlkit.Config {
	paths := map[string]string{
		RouteHome: "/",
		RoutePage: "/:" + slugParam,
		RouteBlog: "/blog",
		RoutePost: "/blog/:" + slugParam,
	}
	children := make([]urlkit.GroupConfig, 0, len(locales.Locales()))
	for _, loc := range locales.Locales() {
		childPaths := make(map[string]string, len(paths))
		for name, path := range paths {
			childPaths[name] = path
		}
		children = append(children, urlkit.GroupConfig{
			Name:  loc.String(),
			Path:  "/" + loc.String(),
			Paths: childPaths,
		})
	}
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    SiteGroup,
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths:   paths,
				Groups:  children,
			},
		},
	}
}

// New constructs a route service over the documents of docs.
func New(cfg Config, docs *store.Store, opts ...Option) *Service {
	if cfg.HomeSlug == "" {
		cfg.HomeSlug = "home"
	}
	if cfg.PagesDir == "" {
		cfg.PagesDir = "pages"
	}
	if cfg.BlogDir == "" {
		cfg.BlogDir = "blog"
	}
	locales := docs.Locales()
	s := &Service{
		manager:  urlkit.NewRouteManager(RouteConfig(cfg.BaseURL, locales)),
		locales:  locales,
		docs:     docs,
		homeSlug: cfg.HomeSlug,
		pagesDir: cfg.PagesDir,
		blogDir:  cfg.BlogDir,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// URL builds the URL of route in the group of loc. Unknown locales use the
// default locale group.
func (s *Service) URL(loc string, route string, params map[string]any) (string, error) {
	resolved := s.locales.Resolve(loc)
	group, err := s.localeGroup(resolved)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}
	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s: %v", ErrRouteUnavailable, resolved, route, err)
	}
	return url, nil
}

// StaticRoutes enumerates every locale crossed with the home page, each
// other page, the blog index and every blog post known in any locale. Slugs
// come from the union across locales so a route exists even when only the
// default locale holds the document.
func (s *Service) StaticRoutes(ctx context.Context) ([]Route, error) {
	pages, err := s.docs.ListSlugsAllLocales(ctx, s.pagesDir)
	if err != nil {
		return nil, err
	}
	posts, err := s.docs.ListSlugsAllLocales(ctx, s.blogDir)
	if err != nil {
		return nil, err
	}

	var routes []Route
	for _, loc := range s.locales.Locales() {
		add := func(name, slug string) error {
			var params map[string]any
			if slug != "" {
				params = map[string]any{slugParam: slug}
			}
			url, err := s.URL(loc.String(), name, params)
			if err != nil {
				return err
			}
			routes = append(routes, Route{Name: name, Locale: loc, Slug: slug, URL: url})
			return nil
		}

		if err := add(RouteHome, ""); err != nil {
			return nil, err
		}
		for _, page := range pages {
			if page == s.homeSlug {
				continue
			}
			if err := add(RoutePage, page); err != nil {
				return nil, err
			}
		}
		if err := add(RouteBlog, ""); err != nil {
			return nil, err
		}
		for _, post := range posts {
			if err := add(RoutePost, post); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Debug("routes.static.enumerated", "count", len(routes), "pages", len(pages), "posts", len(posts))
	return routes, nil
}

func (s *Service) localeGroup(loc locale.Locale) (*urlkit.Group, error) {
	root, err := lookupGroup(s.manager, SiteGroup)
	if err != nil {
		return nil, err
	}
	return lookupChildGroup(root, loc.String())
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("%w: urlkit group is nil", ErrRouteUnavailable)
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("%w: route %q: %v", ErrRouteUnavailable, route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("%w: route manager not configured", ErrRouteUnavailable)
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("%w: route group %q not found", ErrRouteUnavailable, name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: parent group is nil", ErrRouteUnavailable)
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("%w: child group %q not found", ErrRouteUnavailable, name)
		}
	}()
	group = parent.Group(name)
	return group, nil
}
