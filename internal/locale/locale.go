// Package locale implements the fixed, ordered set of site locales and the
// resolver that canonicalises locale tags against it.
package locale

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Locale is a supported language tag such as "en" or "ar".
type Locale string

func (l Locale) String() string { return string(l) }

// Direction is the text direction associated with a locale.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Cookie is the cookie name routing collaborators use to persist the
// visitor's locale.
const Cookie = "NEXT_LOCALE"

// ErrInvalidSet is returned when a locale set definition is inconsistent.
var ErrInvalidSet = errors.New("locale: invalid locale set")

// Label carries the human readable names of a locale.
type Label struct {
	Native  string `json:"native"`
	English string `json:"english"`
	Short   string `json:"short"`
}

// Definition describes one supported locale.
type Definition struct {
	Code      Locale    `json:"code"`
	Direction Direction `json:"direction"`
	Label     Label     `json:"label"`
}

// Validate checks a single definition.
func (d Definition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Code, validation.Required),
		validation.Field(&d.Direction, validation.Required, validation.In(LeftToRight, RightToLeft)),
	)
}

// Set is an immutable, ordered collection of locales with one default member.
// It is safe for concurrent use.
type Set struct {
	defs     []Definition
	index    map[Locale]int
	fallback Locale
}

// NewSet validates the definitions and builds a Set. The default locale must
// be one of the definitions.
func NewSet(defs []Definition, defaultLocale Locale) (*Set, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: at least one locale is required", ErrInvalidSet)
	}

	set := &Set{
		defs:     make([]Definition, 0, len(defs)),
		index:    make(map[Locale]int, len(defs)),
		fallback: defaultLocale,
	}
	for i, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("%w: locales[%d]: %v", ErrInvalidSet, i, err)
		}
		if _, dup := set.index[def.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate locale %q", ErrInvalidSet, def.Code)
		}
		set.index[def.Code] = len(set.defs)
		set.defs = append(set.defs, def)
	}

	if _, ok := set.index[defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: default locale %q is not a member", ErrInvalidSet, defaultLocale)
	}
	return set, nil
}

// DefaultDefinitions returns the English/Arabic definitions of the site.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Code:      English,
			Direction: LeftToRight,
			Label:     Label{Native: "English", English: "English", Short: "EN"},
		},
		{
			Code:      Arabic,
			Direction: RightToLeft,
			Label:     Label{Native: "العربية", English: "Arabic", Short: "AR"},
		},
	}
}

// DefaultSet returns the English/Arabic set with English as default.
func DefaultSet() *Set {
	set, err := NewSet(DefaultDefinitions(), English)
	if err != nil {
		panic(err)
	}
	return set
}

// IsLocale reports whether input is a supported locale. The comparison is
// exact and case-sensitive.
func (s *Set) IsLocale(input string) bool {
	_, ok := s.index[Locale(input)]
	return ok
}

// Resolve returns input as a Locale when supported and the default locale
// otherwise. An empty input stands for "no locale requested".
func (s *Set) Resolve(input string) Locale {
	if s.IsLocale(input) {
		return Locale(input)
	}
	return s.fallback
}

// Default returns the designated default locale.
func (s *Set) Default() Locale {
	return s.fallback
}

// Locales returns the supported locales in declaration order.
func (s *Set) Locales() []Locale {
	out := make([]Locale, len(s.defs))
	for i, def := range s.defs {
		out[i] = def.Code
	}
	return out
}

// Definitions returns a copy of the locale definitions in declaration order.
func (s *Set) Definitions() []Definition {
	return append([]Definition(nil), s.defs...)
}

// Definition returns the definition for l after resolution, so unknown
// locales yield the default definition.
func (s *Set) Definition(l Locale) Definition {
	return s.defs[s.index[s.Resolve(string(l))]]
}

// Direction returns the text direction of l.
func (s *Set) Direction(l Locale) Direction {
	return s.Definition(l).Direction
}

// Label returns the display labels of l.
func (s *Set) Label(l Locale) Label {
	return s.Definition(l).Label
}
