package di

import (
	"io/fs"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	contentcmd "github.com/goliatone/go-sitecontent/internal/commands/content"
	"github.com/goliatone/go-sitecontent/internal/content"
	"github.com/goliatone/go-sitecontent/internal/i18n"
	"github.com/goliatone/go-sitecontent/internal/locale"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/logging/gologger"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/internal/metrics"
	"github.com/goliatone/go-sitecontent/internal/routes"
	"github.com/goliatone/go-sitecontent/internal/runtimeconfig"
	"github.com/goliatone/go-sitecontent/internal/store"
	"github.com/goliatone/go-sitecontent/internal/validation"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Container wires module dependencies from a validated runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	contentFS      fs.FS
	registerer     prom.Registerer
	clock          func() time.Time
	registry       contentcmd.CommandRegistry

	locales    *locale.Set
	documents  *store.Store
	parser     *markdown.GoldmarkParser
	validator  *validation.FrontMatterValidator
	recorder   metrics.Recorder
	translator *i18n.Translator

	contentSvc content.Service
	routeSvc   *routes.Service
	commands   *contentcmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider derived from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithContentFS serves documents from fsys instead of Config.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.contentFS = fsys
	}
}

// WithMetricsRegisterer registers the Prometheus collectors on reg. It has
// no effect unless Config.Metrics.Enabled is set.
func WithMetricsRegisterer(reg prom.Registerer) Option {
	return func(c *Container) {
		c.registerer = reg
	}
}

// WithClock overrides the clock used to date undated documents.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithCommandRegistry registers the command handlers on reg.
func WithCommandRegistry(reg contentcmd.CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// WithContentService overrides the default content service binding.
func WithContentService(svc content.Service) Option {
	return func(c *Container) {
		c.contentSvc = svc
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureStore(); err != nil {
		return nil, err
	}
	if err := c.configureContent(); err != nil {
		return nil, err
	}
	c.routeSvc = routes.New(routes.Config{
		BaseURL:  cfg.Routes.BaseURL,
		HomeSlug: cfg.Routes.HomeSlug,
		PagesDir: content.KindPages.String(),
		BlogDir:  content.KindBlog.String(),
	}, c.documents, routes.WithLogger(logging.RoutesLogger(c.loggerProvider)))

	dicts, err := i18n.DefaultDictionaries()
	if err != nil {
		return nil, err
	}
	c.translator = i18n.NewTranslator(c.locales, dicts)

	c.commands, err = contentcmd.RegisterContentCommands(c.registry, c.contentSvc, c.routeSvc, c.loggerProvider)
	if err != nil {
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "").Debug("container.configured",
		"content_dir", cfg.ContentDir,
		"locales", len(c.locales.Locales()),
		"metrics", cfg.Metrics.Enabled,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Logging.LoggingEnabled() {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureStore() error {
	locales, err := c.Config.LocaleSet()
	if err != nil {
		return err
	}
	c.locales = locales

	storeLogger := store.WithLogger(logging.StoreLogger(c.loggerProvider))
	if c.contentFS != nil {
		c.documents = store.New(c.contentFS, locales, storeLogger)
		return nil
	}
	documents, err := store.NewFromDir(c.Config.ContentDir, locales, storeLogger)
	if err != nil {
		return err
	}
	c.documents = documents
	return nil
}

func (c *Container) configureContent() error {
	c.parser = markdown.NewGoldmarkParser(c.Config.Markdown.ParseOptions())

	validator, err := validation.NewFrontMatterValidator()
	if err != nil {
		return err
	}
	c.validator = validator

	c.recorder = metrics.NoopRecorder{}
	if c.Config.Metrics.Enabled {
		c.recorder = metrics.NewPrometheusRecorder(c.registerer)
	}

	if c.contentSvc != nil {
		return nil
	}
	c.contentSvc = content.NewService(c.documents,
		content.WithLogger(logging.ContentLogger(c.loggerProvider)),
		content.WithParser(c.parser),
		content.WithFrontMatterValidator(c.validator),
		content.WithRecorder(c.recorder),
		content.WithWorkers(c.Config.Workers),
		content.WithClock(c.clock),
	)
	return nil
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Locales returns the configured locale set.
func (c *Container) Locales() *locale.Set {
	return c.locales
}

// Store returns the document store.
func (c *Container) Store() *store.Store {
	return c.documents
}

// ContentService returns the content resolution service.
func (c *Container) ContentService() content.Service {
	return c.contentSvc
}

// RouteService returns the static route service.
func (c *Container) RouteService() *routes.Service {
	return c.routeSvc
}

// Translator returns the UI dictionary translator.
func (c *Container) Translator() *i18n.Translator {
	return c.translator
}

// Recorder returns the metrics recorder in use.
func (c *Container) Recorder() metrics.Recorder {
	return c.recorder
}

// Commands returns the content command handlers.
func (c *Container) Commands() *contentcmd.HandlerSet {
	return c.commands
}
