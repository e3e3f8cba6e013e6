package namegen

import (
	"slices"
	"testing"

	"github.com/kapu/arabic-name-bot-go/internal/namedata"
)

func TestResolve(t *testing.T) {
	store := namedata.Builtin()
	defaults := store.DefaultElements()

	cases := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{"empty keywords use defaults", nil, defaults},
		{"unknown keywords use defaults", []string{"spaceship", "void"}, defaults},
		{"single keyword", []string{"star"}, []string{"Najm", "Kawkab", "Thuraya", "Nujum"}},
		{"case insensitive", []string{"STAR"}, []string{"Najm", "Kawkab", "Thuraya", "Nujum"}},
		{"surrounding whitespace does not match", []string{" star"}, defaults},
		{
			"shared elements are kept per keyword",
			[]string{"brave", "strong"},
			[]string{"Shuja", "Qawi", "Jasur", "Battal", "Hamza", "Usama", "Qawi", "Aziz", "Shahir", "Qadur", "Jalil", "Majid"},
		},
		{"unknown keywords are skipped", []string{"void", "horse"}, []string{"Faras", "Jawad", "Hisan", "Asil"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(store, tc.keywords)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Resolve(%v) = %v, want %v", tc.keywords, got, tc.want)
			}
		})
	}
}

func TestResolveDefaultPoolHasEightElements(t *testing.T) {
	got := Resolve(namedata.Builtin(), []string{})
	want := []string{"Nour", "Amin", "Karim", "Jamil", "Salim", "Fadil", "Rashid", "Nadir"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected default pool %v, got %v", want, got)
	}
}

func TestResolveDoesNotAliasStore(t *testing.T) {
	store := namedata.Builtin()

	got := Resolve(store, []string{"star"})
	got[0] = "Mutated"

	if again := Resolve(store, []string{"star"}); again[0] != "Najm" {
		t.Fatalf("Resolve leaked store slice")
	}
}
