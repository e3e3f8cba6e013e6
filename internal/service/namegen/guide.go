package namegen

import (
	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
)

const (
	guideUsageTip      = "아랍 문화의 아름다운 의미를 담은 키워드들을 조합해보세요!"
	guideCulturalNote  = "아랍 이름은 종종 하나님의 99가지 이름, 자연의 아름다움, 또는 고귀한 품성과 연관됩니다."
	guideDisplayFormat = "모든 이름은 '아랍어 (한글음차)' 형식으로 표시됩니다."
)

// KeywordGuide returns the categorized keyword list together with the valid
// style and gender values.
func KeywordGuide(store *namedata.Store) domain.KeywordGuide {
	categories := store.Categories()
	out := make([]domain.KeywordCategory, len(categories))
	for i, c := range categories {
		out[i] = domain.KeywordCategory{Label: c.Label, Keywords: c.Keywords}
	}

	return domain.KeywordGuide{
		Categories:    out,
		Styles:        domain.AllStyles(),
		Genders:       domain.AllGenders(),
		UsageTip:      guideUsageTip,
		CulturalNote:  guideCulturalNote,
		DisplayFormat: guideDisplayFormat,
	}
}
