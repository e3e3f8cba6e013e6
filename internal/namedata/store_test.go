package namedata

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/pkg/errors"
)

func TestBuiltinStoreIsValid(t *testing.T) {
	store := Builtin()
	if store == nil {
		t.Fatalf("expected builtin store")
	}
	if Builtin() != store {
		t.Fatalf("expected Builtin to return the same instance")
	}

	if got := len(store.DefaultElements()); got != DefaultElementCount {
		t.Fatalf("expected %d default elements, got %d", DefaultElementCount, got)
	}

	elements, ok := store.Elements("star")
	if !ok || !slices.Equal(elements, []string{"Najm", "Kawkab", "Thuraya", "Nujum"}) {
		t.Fatalf("unexpected star elements: %v", elements)
	}
}

func TestBaseNamesByGender(t *testing.T) {
	store := Builtin()

	male := store.BaseNames(domain.GenderMale)
	female := store.BaseNames(domain.GenderFemale)
	combined := store.BaseNames(domain.GenderAny)

	if len(combined) != len(male)+len(female) {
		t.Fatalf("expected combined pool to be male+female, got %d", len(combined))
	}
	if !slices.Equal(combined[:len(male)], male) || !slices.Equal(combined[len(male):], female) {
		t.Fatalf("expected combined pool ordered male then female")
	}
	for _, name := range female {
		if slices.Contains(male, name) {
			t.Fatalf("gender pools overlap on %s", name)
		}
	}
}

func TestTransliterateFallsBackToToken(t *testing.T) {
	store := Builtin()
	if got := store.Transliterate("Najm"); got != "나즘" {
		t.Fatalf("expected 나즘, got %s", got)
	}
	if got := store.Transliterate("ibn"); got != "ibn" {
		t.Fatalf("expected identity fallback, got %s", got)
	}
}

func TestDefaultElementsReturnsCopy(t *testing.T) {
	store := Builtin()
	defaults := store.DefaultElements()
	defaults[0] = "Mutated"

	if store.DefaultElements()[0] == "Mutated" {
		t.Fatalf("expected DefaultElements to return a copy")
	}
}

func TestNewCopiesInput(t *testing.T) {
	tables := BuiltinTables()
	store, err := New(tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tables.Keywords["star"][0] = "Changed"
	tables.MaleNames[0] = "Changed"

	if elements, _ := store.Elements("star"); elements[0] != "Najm" {
		t.Fatalf("store shares keyword slices with input")
	}
	if store.MaleNames()[0] != "Abdul" {
		t.Fatalf("store shares base-name slice with input")
	}
}

func TestNewNormalizesKeywordKeys(t *testing.T) {
	tables := BuiltinTables()
	tables.Keywords["COMET"] = []string{"Najm"}
	tables.KeywordPhrases["Comet"] = "혜성 같은"

	store, err := New(tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.HasKeyword("comet") {
		t.Fatalf("expected normalized keyword")
	}
	if phrase, ok := store.KeywordPhrase("comet"); !ok || phrase != "혜성 같은" {
		t.Fatalf("expected normalized phrase, got %q", phrase)
	}
}

func TestNormalizeKeywordOnlyLowerCases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Star", "star"},
		{"STAR", "star"},
		{" star", " star"},
		{"star ", "star "},
		{"Émeraude", "émeraude"},
		{"별", "별"},
	}
	for _, tc := range cases {
		if got := NormalizeKeyword(tc.in); got != tc.want {
			t.Errorf("NormalizeKeyword(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	cases := map[string]func(*Tables){
		"empty male pool":     func(t *Tables) { t.MaleNames = nil },
		"empty female pool":   func(t *Tables) { t.FemaleNames = nil },
		"overlapping pools":   func(t *Tables) { t.FemaleNames = append(t.FemaleNames, "Omar") },
		"short default pool":  func(t *Tables) { t.DefaultElements = t.DefaultElements[:3] },
		"no religious attrs":  func(t *Tables) { t.ReligiousAttributes = nil },
		"no poetic fallbacks": func(t *Tables) { t.PoeticFallbacks = nil },
		"empty keyword":       func(t *Tables) { t.Keywords["void"] = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tables := BuiltinTables()
			mutate(&tables)

			_, err := New(tables)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var dataErr *errors.DataError
			if !stderrors.As(err, &dataErr) {
				t.Fatalf("expected DataError, got %T", err)
			}
		})
	}
}

func TestTablesRoundTrip(t *testing.T) {
	store := Builtin()
	rebuilt, err := New(store.Tables())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rebuilt.Categories()) != len(store.Categories()) {
		t.Fatalf("categories lost in Tables copy")
	}
	if rebuilt.Transliterate("Kawkab") != "카우카브" {
		t.Fatalf("transliterations lost in Tables copy")
	}
}

func TestKeywordOrderFollowsCategories(t *testing.T) {
	tables := BuiltinTables()
	tables.Keywords["zzz"] = []string{"Najm"}

	order := keywordOrder(tables)
	if len(order) != len(tables.Keywords) {
		t.Fatalf("expected %d keywords, got %d", len(tables.Keywords), len(order))
	}
	if order[0] != "star" {
		t.Fatalf("expected first categorized keyword first, got %s", order[0])
	}
	if order[len(order)-1] != "zzz" {
		t.Fatalf("expected uncategorized keyword last, got %s", order[len(order)-1])
	}
}

func TestElementKeysUnionsTables(t *testing.T) {
	tables := Tables{
		Transliterations: map[string]string{"Najm": "나즘", "Badr": "바드르"},
		Meanings:         map[string]string{"Najm": "별", "Qamar": "달"},
	}
	got := elementKeys(tables)
	want := []string{"Badr", "Najm", "Qamar"}
	if !slices.Equal(got, want) {
		t.Fatalf("elementKeys() = %v, want %v", got, want)
	}
}
