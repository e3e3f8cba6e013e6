package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Gender selects the base-name pool used when composing a name.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderAny    Gender = "any"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderAny:
		return true
	default:
		return false
	}
}

// Suggested returns the gender label reported on a generated name.
func (g Gender) Suggested() string {
	if g == GenderAny {
		return "unisex"
	}
	return string(g)
}

// AllGenders lists genders in the order they are advertised to users.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderAny}
}

var genderAliases = map[string]Gender{
	"male":   GenderMale,
	"m":      GenderMale,
	"남":      GenderMale,
	"남성":     GenderMale,
	"남자":     GenderMale,
	"female": GenderFemale,
	"f":      GenderFemale,
	"여":      GenderFemale,
	"여성":     GenderFemale,
	"여자":     GenderFemale,
	"any":    GenderAny,
	"무관":     GenderAny,
	"공용":     GenderAny,
}

// LookupGender resolves a gender token. ok is false for unrecognized input.
func LookupGender(value string) (Gender, bool) {
	g, ok := genderAliases[strings.ToLower(strings.TrimSpace(value))]
	return g, ok
}

// ParseGender resolves a gender token, treating anything unrecognized as GenderAny.
func ParseGender(value string) Gender {
	if g, ok := LookupGender(value); ok {
		return g
	}
	return GenderAny
}

// Style is one of the closed set of name construction strategies.
type Style string

const (
	StyleTraditional Style = "traditional"
	StyleModern      Style = "modern"
	StyleRoyal       Style = "royal"
	StylePoetic      Style = "poetic"
	StyleReligious   Style = "religious"
)

func (s Style) String() string {
	return string(s)
}

func (s Style) IsValid() bool {
	switch s {
	case StyleTraditional, StyleModern, StyleRoyal, StylePoetic, StyleReligious:
		return true
	default:
		return false
	}
}

// AllStyles lists styles in the order they are advertised to users.
func AllStyles() []Style {
	return []Style{StyleTraditional, StyleModern, StyleRoyal, StylePoetic, StyleReligious}
}

var styleAliases = map[string]Style{
	"traditional": StyleTraditional,
	"전통":          StyleTraditional,
	"전통적":         StyleTraditional,
	"modern":      StyleModern,
	"현대":          StyleModern,
	"현대적":         StyleModern,
	"royal":       StyleRoyal,
	"왕족":          StyleRoyal,
	"poetic":      StylePoetic,
	"시적":          StylePoetic,
	"religious":   StyleReligious,
	"종교":          StyleReligious,
	"종교적":         StyleReligious,
}

// ParseStyle resolves a style token. ok is false for unrecognized input.
func ParseStyle(value string) (Style, bool) {
	s, ok := styleAliases[strings.ToLower(strings.TrimSpace(value))]
	return s, ok
}

const (
	MinNameCount     = 1
	MaxNameCount     = 10
	DefaultNameCount = 3
)

// GenerationRequest is the input of one batch generation call.
type GenerationRequest struct {
	Keywords []string
	Gender   Gender
	Style    Style
	Count    int
}

// EffectiveCount clamps Count into [MinNameCount, MaxNameCount].
func (r GenerationRequest) EffectiveCount() int {
	if r.Count > MaxNameCount {
		return MaxNameCount
	}
	if r.Count < MinNameCount {
		return MinNameCount
	}
	return r.Count
}

// GeneratedName is one composed name with its pronunciation and gloss.
type GeneratedName struct {
	Name                string `json:"name"`
	ArabicName          string `json:"arabic_name"`
	KoreanPronunciation string `json:"korean_pronunciation"`
	Meaning             string `json:"meaning"`
	Style               Style  `json:"style"`
	GenderSuggested     string `json:"gender_suggested"`
}

// GenerationResult is the response of generate_arabic_name.
type GenerationResult struct {
	Names        []GeneratedName `json:"names"`
	KeywordsUsed []string        `json:"keywords_used"`
	Style        Style           `json:"style"`
	Gender       Gender          `json:"gender"`
	TotalCount   int             `json:"total_count"`
	Note         string          `json:"note"`

	// BatchID correlates one generation call across log lines. It is not part
	// of the JSON result.
	BatchID string `json:"-"`
}

// NameMeaning is the response of get_arabic_name_meaning.
type NameMeaning struct {
	Name                string   `json:"name"`
	ArabicName          string   `json:"arabic_name"`
	KoreanPronunciation string   `json:"korean_pronunciation"`
	PartsAnalysis       []string `json:"parts_analysis"`
	OverallMeaning      string   `json:"overall_meaning"`
	CulturalNote        string   `json:"cultural_note"`
}

// KeywordCategory groups suggested keywords under a display label.
type KeywordCategory struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// KeywordCategories is an ordered category list. It encodes as a JSON object
// keyed by label, with keys in list order.
type KeywordCategories []KeywordCategory

func (c KeywordCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(category.Label)
		if err != nil {
			return nil, err
		}
		keywords := category.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		values, err := json.Marshal(keywords)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// KeywordGuide is the response of suggest_arabic_name_keywords.
type KeywordGuide struct {
	Categories    KeywordCategories `json:"categories"`
	Styles        []Style           `json:"styles"`
	Genders       []Gender          `json:"genders"`
	UsageTip      string            `json:"usage_tip"`
	CulturalNote  string            `json:"cultural_note"`
	DisplayFormat string            `json:"display_format"`
}
