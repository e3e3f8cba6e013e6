// Package namedata holds the immutable reference tables the name generator
// reads from: gendered base-name pools, keyword element lists, Hangul
// transliterations and meaning glosses.
//
// A Store is safe for unlimited concurrent readers. Tables can come from the
// builtin curated set (Builtin) or from PostgreSQL (Repository.Load).
package namedata

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultElementCount is the size of the fallback element pool used when no
// keyword matches.
const DefaultElementCount = 8

// Category groups keywords for the keyword guide.
type Category struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// Tables is the plain-data form of the reference tables.
type Tables struct {
	MaleNames           []string            `json:"male_names"`
	FemaleNames         []string            `json:"female_names"`
	Keywords            map[string][]string `json:"keywords"`
	Transliterations    map[string]string   `json:"transliterations"`
	Meanings            map[string]string   `json:"meanings"`
	KeywordPhrases      map[string]string   `json:"keyword_phrases"`
	DefaultElements     []string            `json:"default_elements"`
	ReligiousAttributes []string            `json:"religious_attributes"`
	PoeticFallbacks     []string            `json:"poetic_fallbacks"`
	Categories          []Category          `json:"categories"`
}

// Store is a validated, read-only view over Tables.
type Store struct {
	male       []string
	female     []string
	combined   []string
	keywords   map[string][]string
	translit   map[string]string
	meanings   map[string]string
	phrases    map[string]string
	defaults   []string
	religious  []string
	poetic     []string
	categories []Category
}

var (
	builtinOnce  sync.Once
	builtinStore *Store
)

// Builtin returns the process-wide store built from the curated tables.
func Builtin() *Store {
	builtinOnce.Do(func() {
		store, err := New(builtinTables())
		if err != nil {
			panic(fmt.Sprintf("builtin name tables are invalid: %v", err))
		}
		builtinStore = store
	})
	return builtinStore
}

// BuiltinTables returns a copy of the curated tables, e.g. for seeding a database.
func BuiltinTables() Tables {
	return builtinTables()
}

// New validates t and returns a Store holding a private copy of it.
func New(t Tables) (*Store, error) {
	if err := validate(t); err != nil {
		return nil, err
	}

	s := &Store{
		male:      slices.Clone(t.MaleNames),
		female:    slices.Clone(t.FemaleNames),
		keywords:  make(map[string][]string, len(t.Keywords)),
		translit:  cloneMap(t.Transliterations),
		meanings:  cloneMap(t.Meanings),
		phrases:   make(map[string]string, len(t.KeywordPhrases)),
		defaults:  slices.Clone(t.DefaultElements),
		religious: slices.Clone(t.ReligiousAttributes),
		poetic:    slices.Clone(t.PoeticFallbacks),
	}
	s.combined = slices.Concat(s.male, s.female)

	for keyword, elements := range t.Keywords {
		s.keywords[NormalizeKeyword(keyword)] = slices.Clone(elements)
	}
	for keyword, phrase := range t.KeywordPhrases {
		s.phrases[NormalizeKeyword(keyword)] = phrase
	}
	for _, c := range t.Categories {
		s.categories = append(s.categories, Category{Label: c.Label, Keywords: slices.Clone(c.Keywords)})
	}

	return s, nil
}

func validate(t Tables) error {
	if len(t.MaleNames) == 0 {
		return errors.NewDataError("male name pool is empty", "base_names", nil)
	}
	if len(t.FemaleNames) == 0 {
		return errors.NewDataError("female name pool is empty", "base_names", nil)
	}
	for _, name := range t.FemaleNames {
		if slices.Contains(t.MaleNames, name) {
			return errors.NewDataError(fmt.Sprintf("base name %q appears in both gender pools", name), "base_names", nil)
		}
	}
	if len(t.DefaultElements) != DefaultElementCount {
		return errors.NewDataError(
			fmt.Sprintf("default element pool must have %d entries, got %d", DefaultElementCount, len(t.DefaultElements)),
			"default_elements", nil)
	}
	if len(t.ReligiousAttributes) == 0 {
		return errors.NewDataError("religious attribute list is empty", "religious_attributes", nil)
	}
	if len(t.PoeticFallbacks) == 0 {
		return errors.NewDataError("poetic fallback list is empty", "poetic_fallbacks", nil)
	}
	for keyword, elements := range t.Keywords {
		if strings.TrimSpace(keyword) == "" {
			return errors.NewDataError("keyword must not be blank", "keyword_elements", nil)
		}
		if len(elements) == 0 {
			return errors.NewDataError(fmt.Sprintf("keyword %q has no elements", keyword), "keyword_elements", nil)
		}
	}
	return nil
}

// BaseNames returns the base-name pool for gender. Any gender other than male
// or female gets the male pool followed by the female pool.
func (s *Store) BaseNames(gender domain.Gender) []string {
	switch gender {
	case domain.GenderMale:
		return s.male
	case domain.GenderFemale:
		return s.female
	default:
		return s.combined
	}
}

// MaleNames returns the male base-name pool.
func (s *Store) MaleNames() []string {
	return s.male
}

// Elements returns the elements for an already-normalized keyword.
func (s *Store) Elements(keyword string) ([]string, bool) {
	elements, ok := s.keywords[keyword]
	return elements, ok
}

// HasKeyword reports whether the normalized keyword is known.
func (s *Store) HasKeyword(keyword string) bool {
	_, ok := s.keywords[keyword]
	return ok
}

// DefaultElements returns a copy of the fallback element pool.
func (s *Store) DefaultElements() []string {
	return slices.Clone(s.defaults)
}

// Transliterate returns the Hangul rendering of token, or token itself when unmapped.
func (s *Store) Transliterate(token string) string {
	if v, ok := s.translit[token]; ok {
		return v
	}
	return token
}

// Meaning returns the gloss recorded for token.
func (s *Store) Meaning(token string) (string, bool) {
	m, ok := s.meanings[token]
	return m, ok
}

// KeywordPhrase returns the hand-authored phrase for a normalized keyword.
func (s *Store) KeywordPhrase(keyword string) (string, bool) {
	p, ok := s.phrases[keyword]
	return p, ok
}

func (s *Store) ReligiousAttributes() []string {
	return s.religious
}

func (s *Store) PoeticFallbacks() []string {
	return s.poetic
}

// Categories returns the keyword guide categories in display order.
func (s *Store) Categories() []Category {
	out := make([]Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = Category{Label: c.Label, Keywords: slices.Clone(c.Keywords)}
	}
	return out
}

// Tables returns a deep copy of the store contents.
func (s *Store) Tables() Tables {
	keywords := make(map[string][]string, len(s.keywords))
	for k, v := range s.keywords {
		keywords[k] = slices.Clone(v)
	}
	return Tables{
		MaleNames:           slices.Clone(s.male),
		FemaleNames:         slices.Clone(s.female),
		Keywords:            keywords,
		Transliterations:    cloneMap(s.translit),
		Meanings:            cloneMap(s.meanings),
		KeywordPhrases:      cloneMap(s.phrases),
		DefaultElements:     slices.Clone(s.defaults),
		ReligiousAttributes: slices.Clone(s.religious),
		PoeticFallbacks:     slices.Clone(s.poetic),
		Categories:          s.Categories(),
	}
}

// NormalizeKeyword lower-cases a keyword for table lookup. Surrounding
// whitespace is significant, so " star" does not match "star".
func NormalizeKeyword(keyword string) string {
	return cases.Lower(language.Und).String(keyword)
}

func cloneMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
