package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-sitecontent/internal/locale"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Extension is the file suffix of content documents.
const Extension = ".md"

const readFailedCode = "CONTENT_READ_FAILED"

// ErrContentRootInvalid is returned when the content root is missing or is
// not a directory.
var ErrContentRootInvalid = errors.New("store: content root invalid")

// Lookup is the outcome of a document read. Found is false when the document
// is absent in both the requested and the fallback locale.
type Lookup struct {
	Found     bool
	Raw       []byte
	Path      string
	Locale    locale.Locale
	Requested locale.Locale
	Fallback  bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger overrides the store logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store reads content documents laid out as <dir>/<locale>/<slug>.md.
// It keeps no state between calls; every read hits the filesystem.
type Store struct {
	fsys    fs.FS
	locales *locale.Set
	logger  interfaces.Logger
}

// New returns a store over fsys.
func New(fsys fs.FS, locales *locale.Set, opts ...Option) *Store {
	if locales == nil {
		locales = locale.DefaultSet()
	}
	s := &Store{
		fsys:    fsys,
		locales: locales,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// NewFromDir returns a store rooted at a directory on disk.
func NewFromDir(root string, locales *locale.Set, opts ...Option) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrContentRootInvalid, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrContentRootInvalid, root)
	}
	return New(os.DirFS(root), locales, opts...), nil
}

// Locales returns the locale set the store partitions documents by.
func (s *Store) Locales() *locale.Set {
	return s.locales
}

// Read loads <dir>/<loc>/<slug>.md. When the file is absent, allowFallback
// is set and loc is not the default locale, the default locale copy is tried.
// Absence in both locations yields a Lookup with Found false and a nil error.
// Any other failure is returned as a read error and never reported as absence.
func (s *Store) Read(ctx context.Context, dir, slugValue string, loc locale.Locale, allowFallback bool) (Lookup, error) {
	requested := s.locales.Resolve(string(loc))
	result := Lookup{Requested: requested}

	if !safeSlug(slugValue) {
		s.logger.Warn("store.read.unsafe_slug", "dir", dir, "slug", slugValue, "locale", requested)
		return result, nil
	}

	raw, filePath, found, err := s.readOne(ctx, dir, slugValue, requested)
	if err != nil {
		return result, err
	}

	served := requested
	if !found && allowFallback && requested != s.locales.Default() {
		served = s.locales.Default()
		raw, filePath, found, err = s.readOne(ctx, dir, slugValue, served)
		if err != nil {
			return result, err
		}
	}

	if !found {
		s.logger.Debug("store.read.missing", "dir", dir, "slug", slugValue, "locale", requested)
		return result, nil
	}

	result.Found = true
	result.Raw = raw
	result.Path = filePath
	result.Locale = served
	result.Fallback = served != requested
	if result.Fallback {
		s.logger.Debug("store.read.fallback", "dir", dir, "slug", slugValue, "requested", requested, "served", served)
	}
	return result, nil
}

func (s *Store) readOne(ctx context.Context, dir, slugValue string, loc locale.Locale) ([]byte, string, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", false, err
	}
	filePath := DocumentPath(dir, loc, slugValue)
	raw, err := fs.ReadFile(s.fsys, filePath)
	if err == nil {
		return raw, filePath, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, filePath, false, nil
	}
	return nil, filePath, false, goerrors.Wrap(err, goerrors.CategoryInternal, "content read failed: "+filePath).
		WithTextCode(readFailedCode)
}

// ListSlugs returns the slugs of the documents directly under <dir>/<loc>,
// sorted ascending. A missing locale directory yields an empty list.
func (s *Store) ListSlugs(ctx context.Context, dir string, loc locale.Locale) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	localeDir := path.Join(dir, string(loc))
	entries, err := fs.ReadDir(s.fsys, localeDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "content list failed: "+localeDir).
			WithTextCode(readFailedCode)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, Extension) {
			continue
		}
		value := strings.TrimSuffix(name, Extension)
		if value == "" {
			continue
		}
		if !slug.IsValid(value) {
			s.logger.Debug("store.list.noncanonical_slug", "dir", localeDir, "slug", value)
		}
		slugs = append(slugs, value)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// ListSlugsAllLocales returns the union of ListSlugs across every supported
// locale, deduplicated and sorted ascending.
func (s *Store) ListSlugsAllLocales(ctx context.Context, dir string) ([]string, error) {
	seen := map[string]struct{}{}
	for _, loc := range s.locales.Locales() {
		slugs, err := s.ListSlugs(ctx, dir, loc)
		if err != nil {
			return nil, err
		}
		for _, value := range slugs {
			seen[value] = struct{}{}
		}
	}
	union := make([]string, 0, len(seen))
	for value := range seen {
		union = append(union, value)
	}
	sort.Strings(union)
	return union, nil
}

// DocumentPath returns the slash separated path of a document inside the
// content filesystem.
func DocumentPath(dir string, loc locale.Locale, slugValue string) string {
	return path.Join(dir, string(loc), slugValue+Extension)
}

func safeSlug(value string) bool {
	if strings.TrimSpace(value) == "" || value == "." || value == ".." {
		return false
	}
	return !strings.ContainsAny(value, `/\`)
}
