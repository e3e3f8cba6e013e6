package namegen

import (
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
)

// Resolve returns the union of the elements mapped to each keyword, in keyword
// order. Elements shared by several matched keywords are kept once per keyword,
// which weights sampling toward them. When nothing matches the default pool is
// returned.
func Resolve(store *namedata.Store, keywords []string) []string {
	elements := make([]string, 0, len(keywords)*6)
	for _, keyword := range keywords {
		if matched, ok := store.Elements(namedata.NormalizeKeyword(keyword)); ok {
			elements = append(elements, matched...)
		}
	}

	if len(elements) == 0 {
		return store.DefaultElements()
	}
	return elements
}

// matchedKeywords returns the keywords (as given) that have a table entry.
func matchedKeywords(store *namedata.Store, keywords []string) []string {
	matched := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if store.HasKeyword(namedata.NormalizeKeyword(keyword)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
