package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	sitecontent "github.com/goliatone/go-sitecontent"
	contentcmd "github.com/goliatone/go-sitecontent/internal/commands/content"
	"github.com/goliatone/go-sitecontent/internal/content"
	ditesting "github.com/goliatone/go-sitecontent/internal/di/testing"
	"github.com/goliatone/go-sitecontent/internal/locale"
	"github.com/goliatone/go-sitecontent/internal/routes"
)

type stubPreviewHandler struct {
	last contentcmd.PreviewDocumentCommand
}

func (s *stubPreviewHandler) Execute(_ context.Context, msg contentcmd.PreviewDocumentCommand) error {
	s.last = msg
	if msg.ResultCallback != nil {
		msg.ResultCallback(contentcmd.Document{
			Kind: content.KindPages,
			Page: &content.PageContent{Slug: msg.Slug, Title: "About", Locale: locale.English, IsFallback: true},
		})
	}
	return nil
}

type stubListHandler struct {
	last contentcmd.ListCollectionCommand
	err  error
}

func (s *stubListHandler) Execute(_ context.Context, msg contentcmd.ListCollectionCommand) error {
	s.last = msg
	return s.err
}

type stubRoutesHandler struct {
	calls int
}

func (s *stubRoutesHandler) Execute(_ context.Context, msg contentcmd.ListRoutesCommand) error {
	s.calls++
	if msg.ResultCallback != nil {
		msg.ResultCallback([]routes.Route{{Name: routes.RouteHome, Locale: locale.Arabic, URL: "/ar"}})
	}
	return nil
}

type stubs struct {
	preview *stubPreviewHandler
	list    *stubListHandler
	routes  *stubRoutesHandler
	opts    moduleOptions
}

func withStubModule(t *testing.T) (*stubs, *bytes.Buffer) {
	t.Helper()
	original := moduleBuilder
	originalOut := stdout

	s := &stubs{
		preview: &stubPreviewHandler{},
		list:    &stubListHandler{},
		routes:  &stubRoutesHandler{},
	}
	moduleBuilder = func(opts moduleOptions) (*moduleResources, error) {
		s.opts = opts
		return &moduleResources{handlers: handlerSet{preview: s.preview, list: s.list, routes: s.routes}}, nil
	}
	var buf bytes.Buffer
	stdout = &buf

	t.Cleanup(func() {
		moduleBuilder = original
		stdout = originalOut
	})
	return s, &buf
}

func TestRunPreviewWritesJSON(t *testing.T) {
	s, out := withStubModule(t)

	if err := run([]string{"preview", "--kind", "pages", "--slug", "about", "--locale", "ar", "--content-dir", "site"}); err != nil {
		t.Fatalf("run preview: %v", err)
	}
	if s.preview.last.Slug != "about" || s.preview.last.Locale != "ar" || s.preview.last.Kind != "pages" {
		t.Fatalf("unexpected command %+v", s.preview.last)
	}
	if s.opts.ContentDir != "site" {
		t.Fatalf("expected content dir to propagate, got %q", s.opts.ContentDir)
	}

	var doc struct {
		Kind string `json:"kind"`
		Page struct {
			Title      string `json:"title"`
			IsFallback bool   `json:"isFallback"`
		} `json:"page"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if doc.Kind != "pages" || doc.Page.Title != "About" || !doc.Page.IsFallback {
		t.Fatalf("unexpected output %+v", doc)
	}
}

func TestRunListForwardsFlags(t *testing.T) {
	s, _ := withStubModule(t)

	if err := run([]string{"list", "--kind", "news", "--limit", "2", "--slugs"}); err != nil {
		t.Fatalf("run list: %v", err)
	}
	if s.list.last.Kind != "news" || s.list.last.Limit != 2 || !s.list.last.SlugsOnly {
		t.Fatalf("unexpected command %+v", s.list.last)
	}
}

func TestRunListPropagatesErrors(t *testing.T) {
	s, _ := withStubModule(t)
	s.list.err = errors.New("broken document")

	if err := run([]string{"list", "--kind", "blog"}); err == nil || !strings.Contains(err.Error(), "broken document") {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestRunRoutes(t *testing.T) {
	s, out := withStubModule(t)

	if err := run([]string{"routes"}); err != nil {
		t.Fatalf("run routes: %v", err)
	}
	if s.routes.calls != 1 {
		t.Fatalf("expected one routes call, got %d", s.routes.calls)
	}
	if !strings.Contains(out.String(), `"url": "/ar"`) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	withStubModule(t)

	if err := run(nil); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if err := run([]string{"publish"}); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRunAgainstFixtureModule(t *testing.T) {
	original := moduleBuilder
	originalOut := stdout
	t.Cleanup(func() {
		moduleBuilder = original
		stdout = originalOut
	})
	moduleBuilder = func(opts moduleOptions) (*moduleResources, error) {
		opts.ModuleOptions = append(opts.ModuleOptions, sitecontent.WithContentFS(ditesting.Files()))
		return buildModule(opts)
	}
	var out bytes.Buffer
	stdout = &out

	if err := run([]string{"list", "--kind", "blog", "--locale", "ar"}); err != nil {
		t.Fatalf("run list: %v", err)
	}

	var got contentcmd.Collection
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(got.Posts) != 2 || got.Posts[0].Slug != "second" || !got.Posts[0].IsFallback {
		t.Fatalf("unexpected listing %+v", got.Posts)
	}
}
