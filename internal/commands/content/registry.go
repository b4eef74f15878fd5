package contentcmd

import (
	"errors"

	"github.com/goliatone/go-sitecontent/internal/commands"
	"github.com/goliatone/go-sitecontent/internal/content"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterContentCommands.
type HandlerSet struct {
	Preview *PreviewDocumentHandler
	List    *ListCollectionHandler
	Routes  *ListRoutesHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	previewOpts []commands.HandlerOption[PreviewDocumentCommand]
	listOpts    []commands.HandlerOption[ListCollectionCommand]
	routesOpts  []commands.HandlerOption[ListRoutesCommand]
}

// WithPreviewHandlerOptions forwards options to the PreviewDocumentHandler constructor.
func WithPreviewHandlerOptions(opts ...commands.HandlerOption[PreviewDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.previewOpts = append(cfg.previewOpts, opts...)
	}
}

// WithListHandlerOptions forwards options to the ListCollectionHandler constructor.
func WithListHandlerOptions(opts ...commands.HandlerOption[ListCollectionCommand]) Option {
	return func(cfg *options) {
		cfg.listOpts = append(cfg.listOpts, opts...)
	}
}

// WithRoutesHandlerOptions forwards options to the ListRoutesHandler constructor.
func WithRoutesHandlerOptions(opts ...commands.HandlerOption[ListRoutesCommand]) Option {
	return func(cfg *options) {
		cfg.routesOpts = append(cfg.routesOpts, opts...)
	}
}

// RegisterContentCommands builds the content and route handlers and
// registers them with reg when it is non-nil.
func RegisterContentCommands(reg CommandRegistry, service content.Service, lister RouteLister, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("content command registration: service is nil")
	}
	if lister == nil {
		return nil, errors.New("content command registration: route lister is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := logging.CommandsLogger(provider, "content")

	set := &HandlerSet{
		Preview: NewPreviewDocumentHandler(service, logger, cfg.previewOpts...),
		List:    NewListCollectionHandler(service, logger, cfg.listOpts...),
		Routes:  NewListRoutesHandler(lister, logger, cfg.routesOpts...),
	}

	if reg != nil {
		for _, handler := range []any{set.Preview, set.List, set.Routes} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
