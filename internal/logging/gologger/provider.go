package gologger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// ErrUnsupportedFormat is returned for formats go-logger cannot emit.
var ErrUnsupportedFormat = errors.New("logging: unsupported go-logger format")

// Field keys added to every entry emitted through the provider.
const (
	// FieldEventScope holds the first segment of a dotted event name, so
	// "content.resolve.fallback" is filed under "content".
	FieldEventScope = "event_scope"
	// FieldDocument holds the kind/locale/slug path of the document being
	// resolved once all three coordinates are known.
	FieldDocument = "document"
)

// Config is the logging section of the runtime configuration as consumed by
// go-logger. Focus entries name sitecontent modules, with or without the
// "sitecontent." prefix.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Provider hands out go-logger children nested under the sitecontent root.
type Provider struct {
	root *glog.BaseLogger
}

var _ interfaces.LoggerProvider = (*Provider)(nil)

// NewProvider builds the go-logger root. Unknown formats are rejected;
// unknown levels keep the go-logger default.
func NewProvider(cfg Config) (*Provider, error) {
	options, err := loggerOptions(cfg)
	if err != nil {
		return nil, err
	}

	root := glog.NewLogger(options...)
	if focus := focusModules(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}, nil
}

func loggerOptions(cfg Config) ([]glog.Option, error) {
	var options []glog.Option
	if level := levelFor(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}
	return options, nil
}

// GetLogger returns the go-logger child for module. Short names such as
// "content" resolve to "sitecontent.content".
func (p *Provider) GetLogger(module string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	return newEntryLogger(p.root.GetLogger(QualifyModule(module)))
}

// QualifyModule nests module under logging.RootModule.
func QualifyModule(module string) string {
	module = strings.Trim(strings.TrimSpace(module), ".")
	switch {
	case module == "", module == logging.RootModule:
		return logging.RootModule
	case strings.HasPrefix(module, logging.RootModule+"."):
		return module
	default:
		return logging.RootModule + "." + module
	}
}

func focusModules(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		qualified := QualifyModule(name)
		if _, ok := seen[qualified]; ok {
			continue
		}
		seen[qualified] = struct{}{}
		out = append(out, qualified)
	}
	return out
}

func levelFor(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return ""
	}
}

// documentRef accumulates the coordinates bound by logging.WithDocumentContext.
type documentRef struct {
	kind   string
	locale string
	slug   string
}

func (d documentRef) bind(fields map[string]any) documentRef {
	if v, ok := fields[logging.FieldContentKind].(string); ok {
		d.kind = v
	}
	if v, ok := fields[logging.FieldLocale].(string); ok {
		d.locale = v
	}
	if v, ok := fields[logging.FieldSlug].(string); ok {
		d.slug = v
	}
	return d
}

func (d documentRef) path() string {
	if d.kind == "" || d.locale == "" || d.slug == "" {
		return ""
	}
	return d.kind + "/" + d.locale + "/" + d.slug
}

// entryLogger tags each entry with its event scope and folds document
// coordinates into a single path field.
type entryLogger struct {
	inner glog.Logger
	doc   documentRef
}

func newEntryLogger(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &entryLogger{inner: inner}
}

func (l *entryLogger) Trace(msg string, args ...any) {
	l.inner.Trace(msg, withScope(msg, args)...)
}

func (l *entryLogger) Debug(msg string, args ...any) {
	l.inner.Debug(msg, withScope(msg, args)...)
}

func (l *entryLogger) Info(msg string, args ...any) {
	l.inner.Info(msg, withScope(msg, args)...)
}

func (l *entryLogger) Warn(msg string, args ...any) {
	l.inner.Warn(msg, withScope(msg, args)...)
}

func (l *entryLogger) Error(msg string, args ...any) {
	l.inner.Error(msg, withScope(msg, args)...)
}

func (l *entryLogger) Fatal(msg string, args ...any) {
	l.inner.Fatal(msg, withScope(msg, args)...)
}

// EventScope returns the leading segment of a dotted event name, or "" for
// undotted messages.
func EventScope(event string) string {
	idx := strings.IndexByte(event, '.')
	if idx <= 0 {
		return ""
	}
	return event[:idx]
}

func withScope(event string, args []any) []any {
	scope := EventScope(event)
	if scope == "" {
		return args
	}
	out := make([]any, 0, len(args)+2)
	out = append(out, FieldEventScope, scope)
	return append(out, args...)
}

func (l *entryLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}

	doc := l.doc.bind(fields)
	copied := make(map[string]any, len(fields)+1)
	maps.Copy(copied, fields)
	if path := doc.path(); path != "" && path != l.doc.path() {
		copied[FieldDocument] = path
	}

	with, ok := l.inner.(glog.FieldsLogger)
	if !ok {
		return &entryLogger{inner: l.inner, doc: doc}
	}
	return &entryLogger{inner: with.WithFields(copied), doc: doc}
}

func (l *entryLogger) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return &entryLogger{inner: l.inner.WithContext(ctx), doc: l.doc}
}
