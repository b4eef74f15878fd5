package content

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitecontent/internal/identity"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/internal/metrics"
	"github.com/goliatone/go-sitecontent/internal/store"
	"github.com/goliatone/go-sitecontent/internal/validation"
)

// synthesizedDateLayout matches the ISO-8601 form with milliseconds used for
// documents that carry no date.
const synthesizedDateLayout = "2006-01-02T15:04:05.000Z"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2, 2006 15:04",
	"2006/01/02",
}

// resolution is the outcome of resolving one (kind, slug, locale) request.
// When found is false the remaining fields are zero.
type resolution struct {
	found  bool
	kind   Kind
	slug   string
	lookup store.Lookup
	meta   markdown.FrontMatter
	body   string
	date   string
	at     time.Time
}

// resolve is the single lookup primitive behind every accessor. Absence is
// reported through resolution.found; only read, parse and render failures
// return an error.
func (s *service) resolve(ctx context.Context, kind Kind, slug, requested string) (resolution, error) {
	loc := s.locales.Resolve(requested)
	logger := logging.WithDocumentContext(s.logger, kind.String(), slug, loc.String())

	lookup, err := s.store.Read(ctx, kind.String(), slug, loc, true)
	if err != nil {
		s.recorder.ObserveResolution(kind.String(), metrics.OutcomeError)
		logger.Error("content.resolve.read_failed", "error", err)
		return resolution{}, err
	}
	if !lookup.Found {
		s.recorder.ObserveResolution(kind.String(), metrics.OutcomeMissing)
		logger.Debug("content.resolve.missing")
		return resolution{kind: kind, slug: slug, lookup: lookup}, nil
	}

	meta, body, err := markdown.ParseFrontMatter(lookup.Raw)
	if err != nil {
		s.recorder.ObserveResolution(kind.String(), metrics.OutcomeError)
		logger.Error("content.resolve.malformed", "path", lookup.Path, "error", err)
		return resolution{}, malformedContentError(lookup.Path, err)
	}
	// Structured values under known keys are kept in the metadata; the typed
	// accessors treat them as absent.
	if err := s.validator.Validate(kind.String(), meta); err != nil {
		logger.Warn("content.resolve.schema_warning", "path", lookup.Path, "issues", validation.Issues(err))
	}

	html, err := s.parser.Parse(body)
	if err != nil {
		s.recorder.ObserveResolution(kind.String(), metrics.OutcomeError)
		logger.Error("content.resolve.render_failed", "path", lookup.Path, "error", err)
		return resolution{}, renderError(lookup.Path, err)
	}

	res := resolution{
		found:  true,
		kind:   kind,
		slug:   slug,
		lookup: lookup,
		meta:   meta,
		body:   string(html),
	}
	if kind != KindPages {
		res.date, res.at = s.documentDate(meta)
	}

	if lookup.Fallback {
		s.recorder.ObserveResolution(kind.String(), metrics.OutcomeFallback)
		logger.Debug("content.resolve.fallback", "served", lookup.Locale)
	} else {
		s.recorder.ObserveResolution(kind.String(), metrics.OutcomeFound)
	}
	return res, nil
}

// documentDate returns the raw date text and its parsed instant. A missing
// or blank date is stamped from the service clock.
func (s *service) documentDate(meta markdown.FrontMatter) (string, time.Time) {
	raw := meta.Text(validation.FieldDate, "")
	if raw == "" {
		now := s.now().UTC()
		return now.Format(synthesizedDateLayout), now
	}
	return raw, ParseDate(raw)
}

// ParseDate parses a front matter date. The zero time is returned when no
// supported layout matches.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// id is derived from the served document, so a fallback shares the ID of
// the default locale copy.
func (r resolution) id() uuid.UUID {
	return identity.DocumentUUID(r.kind.String(), r.lookup.Locale.String(), r.slug)
}

func (r resolution) page() *PageContent {
	return &PageContent{
		ID:         r.id(),
		Slug:       r.slug,
		Title:      r.meta.Text(validation.FieldTitle, DefaultPageTitle),
		Tagline:    r.meta.Text(validation.FieldTagline, ""),
		Intro:      r.meta.Text(validation.FieldIntro, ""),
		Body:       r.body,
		Locale:     r.lookup.Locale,
		IsFallback: r.lookup.Fallback,
	}
}

func (r resolution) blogPost() BlogPost {
	return BlogPost{
		BlogSummary: BlogSummary{
			ID:          r.id(),
			Slug:        r.slug,
			Title:       r.meta.Text(validation.FieldTitle, r.slug),
			Description: r.meta.Text(validation.FieldDescription, ""),
			Date:        r.date,
			PublishedAt: r.at,
			Locale:      r.lookup.Locale,
			IsFallback:  r.lookup.Fallback,
			Image:       r.meta.Text(validation.FieldImage, ""),
			ImageAlt:    r.meta.Text(validation.FieldImageAlt, ""),
		},
		Body: r.body,
	}
}

func (r resolution) newsItem() NewsItem {
	return NewsItem{
		ID:          r.id(),
		Slug:        r.slug,
		Title:       r.meta.Text(validation.FieldTitle, r.slug),
		Summary:     r.meta.Text(validation.FieldSummary, ""),
		Date:        r.date,
		PublishedAt: r.at,
		Locale:      r.lookup.Locale,
		IsFallback:  r.lookup.Fallback,
		Image:       r.meta.Text(validation.FieldImage, ""),
		ImageAlt:    r.meta.Text(validation.FieldImageAlt, ""),
		Link:        r.meta.Text(validation.FieldLink, ""),
		Body:        r.body,
	}
}
