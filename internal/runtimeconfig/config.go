package runtimeconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitecontent/internal/locale"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// ErrConfigInvalid wraps every configuration validation failure.
var ErrConfigInvalid = errors.New("sitecontent config: invalid")

var baseURLPattern = regexp.MustCompile(`^https?://[^/\s]+`)

// Config aggregates the settings of the content pipeline.
type Config struct {
	// ContentDir is the root holding pages/, blog/ and news/.
	ContentDir    string
	DefaultLocale string
	Locales       []LocaleConfig
	Markdown      MarkdownConfig
	// Workers bounds concurrent resolutions per listing. Zero uses the CPU count.
	Workers int
	Routes  RoutesConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// LocaleConfig declares one supported locale.
type LocaleConfig struct {
	Code      string
	Direction string
	Native    string
	English   string
	Short     string
}

// MarkdownConfig maps onto interfaces.ParseOptions.
type MarkdownConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
	Sanitize   bool
}

// RoutesConfig configures static route enumeration.
type RoutesConfig struct {
	BaseURL  string
	HomeSlug string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// MetricsConfig toggles the Prometheus recorder.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the English/Arabic site configuration.
func DefaultConfig() Config {
	return Config{
		ContentDir:    "content",
		DefaultLocale: string(locale.English),
		Locales: []LocaleConfig{
			{Code: "en", Direction: "ltr", Native: "English", English: "English", Short: "EN"},
			{Code: "ar", Direction: "rtl", Native: "العربية", English: "Arabic", Short: "AR"},
		},
		Routes: RoutesConfig{
			HomeSlug: "home",
		},
		Logging: LoggingConfig{
			Provider: "none",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks field level rules and then the consistency of the locale
// set. Every failure wraps ErrConfigInvalid.
func (cfg Config) Validate() error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.ContentDir, validation.Required),
		validation.Field(&cfg.DefaultLocale, validation.Required),
		validation.Field(&cfg.Locales, validation.Required),
		validation.Field(&cfg.Workers, validation.Min(0)),
		validation.Field(&cfg.Markdown),
		validation.Field(&cfg.Routes),
		validation.Field(&cfg.Logging),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	if _, err := cfg.LocaleSet(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return nil
}

// Validate checks a single locale declaration.
func (l LocaleConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Code, validation.Required),
		validation.Field(&l.Direction, validation.Required, validation.In("ltr", "rtl")),
	)
}

// Validate rejects extension names the renderer does not know.
func (m MarkdownConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Extensions, validation.Each(validation.By(knownExtension))),
	)
}

// Validate checks the base URL shape when one is set.
func (r RoutesConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BaseURL, validation.Match(baseURLPattern)),
	)
}

// Validate checks the logging provider, level and format.
func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Provider, validation.By(supportedProvider)),
		validation.Field(&l.Level, validation.By(supportedLevel)),
		validation.Field(&l.Format, validation.By(supportedFormat)),
	)
}

// LocaleSet builds the locale set declared by the configuration.
func (cfg Config) LocaleSet() (*locale.Set, error) {
	defs := make([]locale.Definition, 0, len(cfg.Locales))
	for _, l := range cfg.Locales {
		defs = append(defs, locale.Definition{
			Code:      locale.Locale(strings.TrimSpace(l.Code)),
			Direction: locale.Direction(strings.ToLower(strings.TrimSpace(l.Direction))),
			Label: locale.Label{
				Native:  l.Native,
				English: l.English,
				Short:   l.Short,
			},
		})
	}
	return locale.NewSet(defs, locale.Locale(strings.TrimSpace(cfg.DefaultLocale)))
}

// ParseOptions converts the Markdown settings into renderer options.
func (m MarkdownConfig) ParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), m.Extensions...),
		HardWraps:  m.HardWraps,
		SafeMode:   m.SafeMode,
		Sanitize:   m.Sanitize,
	}
}

// LoggingEnabled reports whether a real logging provider is configured.
func (l LoggingConfig) LoggingEnabled() bool {
	return normalizeProvider(l.Provider) == "gologger"
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func knownExtension(value any) error {
	name, _ := value.(string)
	if !markdown.KnownExtension(name) {
		return validation.NewError("validation_markdown_extension", fmt.Sprintf("unknown markdown extension %q", name))
	}
	return nil
}

func supportedProvider(value any) error {
	provider, _ := value.(string)
	switch normalizeProvider(provider) {
	case "", "none", "gologger":
		return nil
	default:
		return validation.NewError("validation_logging_provider", "must be none or gologger")
	}
}

func supportedLevel(value any) error {
	level, _ := value.(string)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return validation.NewError("validation_logging_level", "is not a supported log level")
	}
}

func supportedFormat(value any) error {
	format, _ := value.(string)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json", "console", "pretty":
		return nil
	default:
		return validation.NewError("validation_logging_format", "must be json, console or pretty")
	}
}
