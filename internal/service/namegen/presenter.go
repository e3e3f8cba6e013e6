package namegen

import (
	"fmt"
	"strings"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
)

const (
	fallbackMeaningPhrase = "고귀하고 아름다운"
	meaningSeparator      = ", "
)

// Transliterate renders each whitespace-separated token of name through the
// store's Hangul table, passing unknown tokens through unchanged.
func Transliterate(store *namedata.Store, name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		parts[i] = store.Transliterate(part)
	}
	return strings.Join(parts, " ")
}

// DisplayName formats name as "Arabic (한글)".
func DisplayName(store *namedata.Store, name string) string {
	return fmt.Sprintf("%s (%s)", name, Transliterate(store, name))
}

// Present turns a raw composed name into the record returned to callers.
func Present(store *namedata.Store, raw string, keywords []string, style domain.Style, gender domain.Gender) domain.GeneratedName {
	return domain.GeneratedName{
		Name:                DisplayName(store, raw),
		ArabicName:          raw,
		KoreanPronunciation: Transliterate(store, raw),
		Meaning:             describe(store, keywords, style),
		Style:               style,
		GenderSuggested:     gender.Suggested(),
	}
}

func describe(store *namedata.Store, keywords []string, style domain.Style) string {
	phrases := make([]string, 0, len(keywords))
	for _, keyword := range matchedKeywords(store, keywords) {
		if phrase, ok := store.KeywordPhrase(namedata.NormalizeKeyword(keyword)); ok {
			phrases = append(phrases, phrase)
			continue
		}
		phrases = append(phrases, fmt.Sprintf("%s의 특성을 지닌", keyword))
	}

	if len(phrases) == 0 {
		phrases = append(phrases, fallbackMeaningPhrase)
	}

	return fmt.Sprintf("%s %s 스타일의 아랍 이름", strings.Join(phrases, meaningSeparator), style)
}
