package contentcmd

import (
	"context"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-sitecontent/internal/commands"
	"github.com/goliatone/go-sitecontent/internal/content"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/routes"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

const (
	previewOperation = "content.preview"
	listOperation    = "content.list"
	routesOperation  = "routes.list"
)

var (
	_ command.Commander[PreviewDocumentCommand] = (*PreviewDocumentHandler)(nil)
	_ command.Commander[ListCollectionCommand]  = (*ListCollectionHandler)(nil)
	_ command.Commander[ListRoutesCommand]      = (*ListRoutesHandler)(nil)
)

// RouteLister is the subset of the route service used by ListRoutesHandler.
type RouteLister interface {
	StaticRoutes(ctx context.Context) ([]routes.Route, error)
}

// PreviewDocumentHandler resolves one document through the content service.
type PreviewDocumentHandler struct {
	inner *commands.Handler[PreviewDocumentCommand]
}

// NewPreviewDocumentHandler constructs a handler wired to the provided content service.
func NewPreviewDocumentHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PreviewDocumentCommand]) *PreviewDocumentHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PreviewDocumentCommand) error {
		kind, err := content.ParseKind(msg.Kind)
		if err != nil {
			return err
		}
		slug := strings.TrimSpace(msg.Slug)

		doc := Document{Kind: kind}
		switch kind {
		case content.KindPages:
			doc.Page, err = service.PageContent(ctx, slug, msg.Locale)
		case content.KindBlog:
			doc.Post, err = service.BlogPost(ctx, slug, msg.Locale)
		case content.KindNews:
			doc.News, err = service.NewsItem(ctx, slug, msg.Locale)
		}
		if err != nil {
			return err
		}
		if !doc.Found() {
			baseLogger.Debug("content.command.preview.absent", "kind", kind, "slug", slug)
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(doc)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewDocumentCommand]{
		commands.WithLogger[PreviewDocumentCommand](baseLogger),
		commands.WithOperation[PreviewDocumentCommand](previewOperation),
		commands.WithMessageFields(func(msg PreviewDocumentCommand) map[string]any {
			return map[string]any{
				"kind":   msg.Kind,
				"slug":   msg.Slug,
				"locale": msg.Locale,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewDocumentHandler{
		inner: commands.NewHandler[PreviewDocumentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewDocumentCommand].Execute.
func (h *PreviewDocumentHandler) Execute(ctx context.Context, msg PreviewDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ListCollectionHandler lists blog posts or news items.
type ListCollectionHandler struct {
	inner *commands.Handler[ListCollectionCommand]
}

// NewListCollectionHandler constructs a handler wired to the provided content service.
func NewListCollectionHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ListCollectionCommand]) *ListCollectionHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ListCollectionCommand) error {
		kind, err := content.ParseKind(msg.Kind)
		if err != nil {
			return err
		}

		result := Collection{Kind: kind, Locale: msg.Locale}
		switch {
		case msg.SlugsOnly && kind == content.KindBlog:
			result.Slugs, err = service.BlogPostSlugs(ctx, msg.Locale)
			result.Slugs = limit(result.Slugs, msg.Limit)
		case msg.SlugsOnly:
			result.Slugs, err = service.NewsItemSlugs(ctx, msg.Locale)
			result.Slugs = limit(result.Slugs, msg.Limit)
		case kind == content.KindBlog:
			result.Posts, err = service.AllBlogPosts(ctx, msg.Locale)
			result.Posts = limit(result.Posts, msg.Limit)
		default:
			result.News, err = service.AllNewsItems(ctx, msg.Locale)
			result.News = limit(result.News, msg.Limit)
		}
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"kind":  kind,
			"posts": len(result.Posts),
			"news":  len(result.News),
			"slugs": len(result.Slugs),
		}).Debug("content.command.list.completed")
		if msg.ResultCallback != nil {
			msg.ResultCallback(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListCollectionCommand]{
		commands.WithLogger[ListCollectionCommand](baseLogger),
		commands.WithOperation[ListCollectionCommand](listOperation),
		commands.WithMessageFields(func(msg ListCollectionCommand) map[string]any {
			return map[string]any{
				"kind":   msg.Kind,
				"locale": msg.Locale,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ListCollectionHandler{
		inner: commands.NewHandler[ListCollectionCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ListCollectionCommand].Execute.
func (h *ListCollectionHandler) Execute(ctx context.Context, msg ListCollectionCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ListRoutesHandler enumerates static routes, optionally for a single locale.
type ListRoutesHandler struct {
	inner *commands.Handler[ListRoutesCommand]
}

// NewListRoutesHandler constructs a handler wired to the provided route lister.
func NewListRoutesHandler(lister RouteLister, logger interfaces.Logger, opts ...commands.HandlerOption[ListRoutesCommand]) *ListRoutesHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ListRoutesCommand) error {
		all, err := lister.StaticRoutes(ctx)
		if err != nil {
			return err
		}
		filter := strings.TrimSpace(msg.Locale)
		if filter != "" {
			selected := make([]routes.Route, 0, len(all))
			for _, route := range all {
				if route.Locale.String() == filter {
					selected = append(selected, route)
				}
			}
			all = selected
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(all)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListRoutesCommand]{
		commands.WithLogger[ListRoutesCommand](baseLogger),
		commands.WithOperation[ListRoutesCommand](routesOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ListRoutesHandler{
		inner: commands.NewHandler[ListRoutesCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ListRoutesCommand].Execute.
func (h *ListRoutesHandler) Execute(ctx context.Context, msg ListRoutesCommand) error {
	return h.inner.Execute(ctx, msg)
}

func limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
