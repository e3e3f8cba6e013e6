package namegen

import (
	"fmt"
	"strings"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
)

const (
	sonGloss        = "~의 아들"
	daughterGloss   = "~의 딸"
	uniqueNameGloss = "고유한 의미를 가진 이름"
	nameCulture     = "아랍 문화에서 이름은 개인의 정체성과 가족의 역사를 나타내는 중요한 의미를 가집니다."
)

// Interpret glosses each whitespace-separated part of name and joins the
// glosses into one overall sentence.
func Interpret(store *namedata.Store, name string) domain.NameMeaning {
	parts := strings.Fields(name)
	analysis := make([]string, 0, len(parts))
	glosses := make([]string, 0, len(parts))

	for _, part := range parts {
		gloss := glossPart(store, part)
		analysis = append(analysis, part+": "+gloss)
		glosses = append(glosses, gloss)
	}

	overall := fmt.Sprintf("'%s'은(는) %s라는 의미를 담은 아름다운 아랍 이름입니다.", name, strings.Join(glosses, ", "))

	return domain.NameMeaning{
		Name:                DisplayName(store, name),
		ArabicName:          name,
		KoreanPronunciation: Transliterate(store, name),
		PartsAnalysis:       analysis,
		OverallMeaning:      overall,
		CulturalNote:        nameCulture,
	}
}

func glossPart(store *namedata.Store, part string) string {
	if meaning, ok := store.Meaning(part); ok {
		return meaning
	}

	switch part {
	case connectorSon:
		return sonGloss
	case connectorDaughter:
		return daughterGloss
	}

	if base, ok := strings.CutPrefix(part, royalPrefix); ok {
		if meaning, known := store.Meaning(base); known {
			return "그 " + meaning
		}
		return "그 " + base
	}

	return uniqueNameGloss
}
