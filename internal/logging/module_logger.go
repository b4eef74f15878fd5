package logging

import (
	"context"
	"maps"
	"strings"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// RootModule is the logger name every module logger is nested under.
const RootModule = "sitecontent"

const (
	storeModule    = "sitecontent.store"
	contentModule  = "sitecontent.content"
	routesModule   = "sitecontent.routes"
	commandsModule = "sitecontent.commands"
)

// Structured field keys attached by WithDocumentContext.
const (
	FieldContentKind = "content_kind"
	FieldSlug        = "slug"
	FieldLocale      = "locale"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = RootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// StoreLogger returns the logger namespace reserved for filesystem lookups.
func StoreLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storeModule)
}

// ContentLogger returns the logger namespace reserved for content resolution.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// RoutesLogger returns the logger namespace reserved for route enumeration.
func RoutesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, routesModule)
}

// CommandsLogger returns the logger namespace for a command module.
func CommandsLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := ModuleLogger(provider, commandsModule+"."+name)
	return WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}

// WithDocumentContext enriches the logger with the document coordinates.
// Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, kind, slug, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		fields[FieldContentKind] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[FieldSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[FieldLocale] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Nil or empty maps are a no-op.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
