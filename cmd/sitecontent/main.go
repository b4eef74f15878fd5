package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-sitecontent/cmd/sitecontent/internal/bootstrap"
	contentcmd "github.com/goliatone/go-sitecontent/internal/commands/content"
	"github.com/goliatone/go-sitecontent/internal/routes"
)

const usage = `usage: sitecontent <command> [flags]

commands:
  preview  resolve one document (--kind, --slug, --locale)
  list     list blog posts or news items (--kind, --locale, --limit, --slugs)
  routes   enumerate static routes (--locale)`

var errUsage = errors.New(usage)

type moduleOptions struct {
	bootstrap.Options
}

type handlerSet struct {
	preview command.Commander[contentcmd.PreviewDocumentCommand]
	list    command.Commander[contentcmd.ListCollectionCommand]
	routes  command.Commander[contentcmd.ListRoutesCommand]
}

type moduleResources struct {
	handlers handlerSet
}

var moduleBuilder = buildModule

var stdout io.Writer = os.Stdout

func buildModule(opts moduleOptions) (*moduleResources, error) {
	module, err := bootstrap.BuildModule(opts.Options)
	if err != nil {
		return nil, err
	}
	set := module.Commands()
	return &moduleResources{
		handlers: handlerSet{
			preview: set.Preview,
			list:    set.List,
			routes:  set.Routes,
		},
	}, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatalf("sitecontent: %v", err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	name := args[0]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var (
		contentDir    = fs.String("content-dir", "content", "Path to the content root holding pages/, blog/ and news/")
		defaultLocale = fs.String("default-locale", "en", "Default locale used for fallback documents")
		baseURL       = fs.String("base-url", "", "Base URL prefixed to generated routes")
		workers       = fs.Int("workers", 0, "Concurrent resolutions per listing (0 uses the CPU count)")
		verbose       = fs.Bool("verbose", false, "Enable debug logging through go-logger")
		kind          = fs.String("kind", "", "Content kind: pages, blog or news")
		slug          = fs.String("slug", "", "Document slug")
		loc           = fs.String("locale", "", "Requested locale")
		limit         = fs.Int("limit", 0, "Maximum number of listed items (0 lists everything)")
		slugsOnly     = fs.Bool("slugs", false, "List slugs instead of rendered records")
	)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var exec func(context.Context, handlerSet) error
	switch name {
	case "preview":
		exec = func(ctx context.Context, h handlerSet) error {
			return h.preview.Execute(ctx, contentcmd.PreviewDocumentCommand{
				Kind:   *kind,
				Slug:   *slug,
				Locale: *loc,
				ResultCallback: func(doc contentcmd.Document) {
					writeJSON(doc)
				},
			})
		}
	case "list":
		exec = func(ctx context.Context, h handlerSet) error {
			return h.list.Execute(ctx, contentcmd.ListCollectionCommand{
				Kind:      *kind,
				Locale:    *loc,
				Limit:     *limit,
				SlugsOnly: *slugsOnly,
				ResultCallback: func(c contentcmd.Collection) {
					writeJSON(c)
				},
			})
		}
	case "routes":
		exec = func(ctx context.Context, h handlerSet) error {
			return h.routes.Execute(ctx, contentcmd.ListRoutesCommand{
				Locale: *loc,
				ResultCallback: func(list []routes.Route) {
					writeJSON(list)
				},
			})
		}
	default:
		return fmt.Errorf("%w\nunknown command %q", errUsage, name)
	}

	resources, err := moduleBuilder(moduleOptions{Options: bootstrap.Options{
		ContentDir:    *contentDir,
		DefaultLocale: *defaultLocale,
		BaseURL:       *baseURL,
		Workers:       *workers,
		Verbose:       *verbose,
	}})
	if err != nil {
		return err
	}
	return exec(context.Background(), resources.handlers)
}

func writeJSON(value any) {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		log.Printf("sitecontent: encode output: %v", err)
	}
}
