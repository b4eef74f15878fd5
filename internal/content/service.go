package content

import (
	"context"
	"runtime"
	"time"

	"github.com/goliatone/go-sitecontent/internal/locale"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/internal/metrics"
	"github.com/goliatone/go-sitecontent/internal/store"
	"github.com/goliatone/go-sitecontent/internal/validation"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Service resolves site content for templates. Every call reads the
// documents from the store again; nothing is cached between calls.
type Service interface {
	// PageContent resolves a page. A page missing in every locale is an
	// error wrapping ErrPageNotFound.
	PageContent(ctx context.Context, slug, locale string) (*PageContent, error)
	// BlogPost resolves a post, returning nil without error when absent.
	BlogPost(ctx context.Context, slug, locale string) (*BlogPost, error)
	// NewsItem resolves a news item, returning nil without error when absent.
	NewsItem(ctx context.Context, slug, locale string) (*NewsItem, error)
	// BlogPostSlugs lists post slugs of one locale, or of every locale
	// when locale is empty.
	BlogPostSlugs(ctx context.Context, locale string) ([]string, error)
	// NewsItemSlugs lists news slugs of one locale, or of every locale
	// when locale is empty.
	NewsItemSlugs(ctx context.Context, locale string) ([]string, error)
	// AllBlogPosts lists post summaries for locale, newest first.
	AllBlogPosts(ctx context.Context, locale string) ([]BlogSummary, error)
	// AllNewsItems lists news items for locale, newest first.
	AllNewsItems(ctx context.Context, locale string) ([]NewsItem, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp documents without a date.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLogger overrides the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParser overrides the Markdown renderer.
func WithParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithFrontMatterValidator overrides the front matter schema check.
func WithFrontMatterValidator(validator *validation.FrontMatterValidator) ServiceOption {
	return func(s *service) {
		if validator != nil {
			s.validator = validator
		}
	}
}

// WithRecorder wires a metrics recorder.
func WithRecorder(recorder metrics.Recorder) ServiceOption {
	return func(s *service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithWorkers bounds the number of concurrent resolutions of a listing.
// Non-positive values use runtime.NumCPU.
func WithWorkers(workers int) ServiceOption {
	return func(s *service) {
		s.workers = workers
	}
}

// service implements Service.
type service struct {
	store     *store.Store
	locales   *locale.Set
	parser    interfaces.MarkdownParser
	validator *validation.FrontMatterValidator
	recorder  metrics.Recorder
	logger    interfaces.Logger
	now       func() time.Time
	workers   int
}

// NewService constructs a content service reading from documents.
func NewService(documents *store.Store, opts ...ServiceOption) Service {
	s := &service{
		store:    documents,
		locales:  documents.Locales(),
		parser:   markdown.NewGoldmarkParser(interfaces.ParseOptions{}),
		recorder: metrics.NoopRecorder{},
		logger:   logging.NoOp(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.validator == nil {
		validator, err := validation.NewFrontMatterValidator()
		if err != nil {
			s.logger.Warn("content.validator.unavailable", "error", err)
		} else {
			s.validator = validator
		}
	}

	return s
}

func (s *service) PageContent(ctx context.Context, slug, requested string) (*PageContent, error) {
	res, err := s.resolve(ctx, KindPages, slug, requested)
	if err != nil {
		return nil, err
	}
	if !res.found {
		return nil, pageNotFoundError(slug, requested)
	}
	return res.page(), nil
}

func (s *service) BlogPost(ctx context.Context, slug, requested string) (*BlogPost, error) {
	res, err := s.resolve(ctx, KindBlog, slug, requested)
	if err != nil || !res.found {
		return nil, err
	}
	post := res.blogPost()
	return &post, nil
}

func (s *service) NewsItem(ctx context.Context, slug, requested string) (*NewsItem, error) {
	res, err := s.resolve(ctx, KindNews, slug, requested)
	if err != nil || !res.found {
		return nil, err
	}
	item := res.newsItem()
	return &item, nil
}

func (s *service) BlogPostSlugs(ctx context.Context, requested string) ([]string, error) {
	return s.slugs(ctx, KindBlog, requested)
}

func (s *service) NewsItemSlugs(ctx context.Context, requested string) ([]string, error) {
	return s.slugs(ctx, KindNews, requested)
}

func (s *service) slugs(ctx context.Context, kind Kind, requested string) ([]string, error) {
	if requested == "" {
		return s.store.ListSlugsAllLocales(ctx, kind.String())
	}
	return s.store.ListSlugs(ctx, kind.String(), s.locales.Resolve(requested))
}

func (s *service) AllBlogPosts(ctx context.Context, requested string) ([]BlogSummary, error) {
	started := time.Now()
	resolved, err := s.collect(ctx, KindBlog, requested)
	if err != nil {
		return nil, err
	}
	summaries := make([]BlogSummary, 0, len(resolved))
	for _, res := range resolved {
		summaries = append(summaries, res.blogPost().Summary())
	}
	s.recorder.ObserveListing(KindBlog.String(), len(summaries), time.Since(started))
	return summaries, nil
}

func (s *service) AllNewsItems(ctx context.Context, requested string) ([]NewsItem, error) {
	started := time.Now()
	resolved, err := s.collect(ctx, KindNews, requested)
	if err != nil {
		return nil, err
	}
	items := make([]NewsItem, 0, len(resolved))
	for _, res := range resolved {
		items = append(items, res.newsItem())
	}
	s.recorder.ObserveListing(KindNews.String(), len(items), time.Since(started))
	return items, nil
}

func (s *service) effectiveWorkerCount(jobCount int) int {
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if jobCount > 0 && workers > jobCount {
		return jobCount
	}
	return workers
}
