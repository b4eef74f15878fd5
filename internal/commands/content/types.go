package contentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitecontent/internal/content"
	"github.com/goliatone/go-sitecontent/internal/routes"
)

const (
	previewDocumentMessageType = "sitecontent.content.preview"
	listCollectionMessageType  = "sitecontent.content.list"
	listRoutesMessageType      = "sitecontent.routes.list"
)

// Document carries exactly one resolved record. Every pointer is nil when a
// post or news item is absent in all locales.
type Document struct {
	Kind content.Kind         `json:"kind"`
	Page *content.PageContent `json:"page,omitempty"`
	Post *content.BlogPost    `json:"post,omitempty"`
	News *content.NewsItem    `json:"news,omitempty"`
}

// Found reports whether the document resolved in any locale.
func (d Document) Found() bool {
	return d.Page != nil || d.Post != nil || d.News != nil
}

// Collection carries a listing for one kind and locale.
type Collection struct {
	Kind   content.Kind          `json:"kind"`
	Locale string                `json:"locale"`
	Posts  []content.BlogSummary `json:"posts,omitempty"`
	News   []content.NewsItem    `json:"news,omitempty"`
	Slugs  []string              `json:"slugs,omitempty"`
}

// PreviewDocumentCommand resolves a single document with locale fallback.
type PreviewDocumentCommand struct {
	Kind           string         `json:"kind"`
	Slug           string         `json:"slug"`
	Locale         string         `json:"locale,omitempty"`
	ResultCallback func(Document) `json:"-"`
}

// Type implements command.Message.
func (PreviewDocumentCommand) Type() string { return previewDocumentMessageType }

// Validate ensures kind and slug are usable before the handler runs.
func (m PreviewDocumentCommand) Validate() error {
	errs := validation.Errors{}
	if _, err := content.ParseKind(m.Kind); err != nil {
		errs["kind"] = validation.NewError("sitecontent.content.preview.kind_invalid", "kind must be one of pages, blog or news")
	}
	if strings.TrimSpace(m.Slug) == "" {
		errs["slug"] = validation.NewError("sitecontent.content.preview.slug_required", "slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListCollectionCommand lists blog or news records for a locale. SlugsOnly
// skips rendering and returns the slug listing instead; an empty Locale
// then lists the union across locales.
type ListCollectionCommand struct {
	Kind           string           `json:"kind"`
	Locale         string           `json:"locale,omitempty"`
	Limit          int              `json:"limit,omitempty"`
	SlugsOnly      bool             `json:"slugs_only,omitempty"`
	ResultCallback func(Collection) `json:"-"`
}

// Type implements command.Message.
func (ListCollectionCommand) Type() string { return listCollectionMessageType }

// Validate rejects pages, which have no collection listing, and negative limits.
func (m ListCollectionCommand) Validate() error {
	errs := validation.Errors{}
	kind, err := content.ParseKind(m.Kind)
	switch {
	case err != nil:
		errs["kind"] = validation.NewError("sitecontent.content.list.kind_invalid", "kind must be blog or news")
	case kind == content.KindPages:
		errs["kind"] = validation.NewError("sitecontent.content.list.kind_unlisted", "pages cannot be listed")
	}
	if m.Limit < 0 {
		errs["limit"] = validation.NewError("sitecontent.content.list.limit_invalid", "limit must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListRoutesCommand enumerates the static route set.
type ListRoutesCommand struct {
	Locale         string               `json:"locale,omitempty"`
	ResultCallback func([]routes.Route) `json:"-"`
}

// Type implements command.Message.
func (ListRoutesCommand) Type() string { return listRoutesMessageType }

// Validate implements command.Message validation; every field is optional.
func (ListRoutesCommand) Validate() error { return nil }
