package namegen

import (
	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
)

const (
	royalPrefix       = "Al-"
	connectorSon      = "ibn"
	connectorDaughter = "bint"
	servantPrefix     = "Abdul"
	poeticJoiner      = "al-"
)

// Compose builds one candidate name from elements using the given style.
//
// Styles outside the closed set fall through to the religious construction;
// callers that need strict validation check domain.Style.IsValid first.
func Compose(store *namedata.Store, rng Rand, elements []string, gender domain.Gender, style domain.Style) string {
	if len(elements) == 0 {
		elements = store.DefaultElements()
	}
	if rng == nil {
		rng = globalRand{}
	}

	switch style {
	case domain.StyleTraditional:
		return pick(rng, store.BaseNames(gender)) + " " + pick(rng, elements)

	case domain.StyleModern:
		return pick(rng, elements)

	case domain.StyleRoyal:
		connector := connectorSon
		if gender == domain.GenderFemale {
			connector = connectorDaughter
		}
		element := pick(rng, elements)
		father := pick(rng, store.MaleNames())
		return royalPrefix + element + " " + connector + " " + father

	case domain.StylePoetic:
		return composePoetic(store, rng, elements)

	default:
		if gender != domain.GenderFemale {
			return servantPrefix + " " + pick(rng, store.ReligiousAttributes())
		}
		element := pick(rng, elements)
		return element + " " + pick(rng, store.ReligiousAttributes())
	}
}

func composePoetic(store *namedata.Store, rng Rand, elements []string) string {
	first := pick(rng, elements)
	second := pick(rng, elements)
	if first != second {
		return first + " " + second
	}

	alternatives := make([]string, 0, len(elements))
	for _, e := range elements {
		if e != first {
			alternatives = append(alternatives, e)
		}
	}
	if len(alternatives) > 0 {
		return first + " " + pick(rng, alternatives)
	}
	return first + " " + poeticJoiner + pick(rng, store.PoeticFallbacks())
}
