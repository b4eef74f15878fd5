// Package i18n serves the per-locale UI dictionary strings that accompany
// resolved content (navigation labels, empty states, notices).
package i18n

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-sitecontent/internal/locale"
)

// ErrTranslationMissing is returned alongside the key when neither the
// requested nor the default locale defines it.
var ErrTranslationMissing = errors.New("i18n: translation missing")

//go:embed dictionaries.json
var defaultDictionaries []byte

// Dictionaries maps a locale code to its flat key/value strings.
type Dictionaries map[string]map[string]string

// DefaultDictionaries decodes the built-in site dictionaries.
func DefaultDictionaries() (Dictionaries, error) {
	return Decode(bytes.NewReader(defaultDictionaries))
}

// Decode reads dictionaries from JSON.
func Decode(r io.Reader) (Dictionaries, error) {
	var dicts Dictionaries
	if err := json.NewDecoder(r).Decode(&dicts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("i18n: decode dictionaries: %w", err)
	}
	if dicts == nil {
		dicts = Dictionaries{}
	}
	return dicts, nil
}

// Translator looks up UI strings with default-locale fallback.
type Translator struct {
	locales *locale.Set
	dicts   Dictionaries
}

// NewTranslator builds a translator over the supplied dictionaries.
func NewTranslator(locales *locale.Set, dicts Dictionaries) *Translator {
	if locales == nil {
		locales = locale.DefaultSet()
	}
	if dicts == nil {
		dicts = Dictionaries{}
	}
	return &Translator{locales: locales, dicts: dicts}
}

// Translate returns the string for key in the resolved locale, falling back
// to the default locale. Args are applied with fmt.Sprintf when present.
// When no dictionary defines key, the key itself is returned together with
// ErrTranslationMissing.
func (t *Translator) Translate(loc, key string, args ...any) (string, error) {
	resolved := t.locales.Resolve(loc)

	value, ok := t.lookup(resolved, key)
	if !ok && resolved != t.locales.Default() {
		value, ok = t.lookup(t.locales.Default(), key)
	}
	if !ok {
		return key, fmt.Errorf("%w: %s/%s", ErrTranslationMissing, resolved, key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(value, args...), nil
	}
	return value, nil
}

// MustTranslate is Translate without the error, for template helpers.
func (t *Translator) MustTranslate(loc, key string, args ...any) string {
	value, _ := t.Translate(loc, key, args...)
	return value
}

// FallbackNotice renders the notice shown when content was served in a
// different locale than requested. Locale names come from the requested
// locale's dictionary so the sentence reads naturally to the visitor.
func (t *Translator) FallbackNotice(requested, served locale.Locale) string {
	return t.MustTranslate(string(requested), "content.fallbackNotice",
		t.locales.Label(requested).Native,
		t.locales.Label(served).Native,
	)
}

func (t *Translator) lookup(loc locale.Locale, key string) (string, bool) {
	dict, ok := t.dicts[string(loc)]
	if !ok {
		return "", false
	}
	value, ok := dict[key]
	return value, ok
}
