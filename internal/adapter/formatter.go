package adapter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
)

var styleLabels = map[domain.Style]string{
	domain.StyleTraditional: "전통",
	domain.StyleModern:      "현대",
	domain.StyleRoyal:       "왕족",
	domain.StylePoetic:      "시적",
	domain.StyleReligious:   "종교",
}

var genderLabels = map[domain.Gender]string{
	domain.GenderMale:   "남성",
	domain.GenderFemale: "여성",
	domain.GenderAny:    "성별 무관",
}

var commandLabels = map[string]string{
	domain.CommandGenerateName.String(): "이름 생성",
	domain.CommandNameMeaning.String():  "이름 풀이",
	domain.CommandNameKeywords.String(): "키워드 안내",
	domain.CommandHelp.String():         "도움말",
	domain.CommandStats.String():        "통계",
}

// ResponseFormatter formats bot responses
type ResponseFormatter struct {
	prefix string
}

// NewResponseFormatter creates a new ResponseFormatter
func NewResponseFormatter(prefix string) *ResponseFormatter {
	if strings.TrimSpace(prefix) == "" {
		prefix = "!"
	}
	return &ResponseFormatter{prefix: prefix}
}

type generationView struct {
	Total       int
	StyleLabel  string
	GenderLabel string
	Keywords    []string
	Names       []domain.GeneratedName
	Note        string
}

// FormatGeneration formats a generated batch of names
func (f *ResponseFormatter) FormatGeneration(result domain.GenerationResult) string {
	if len(result.Names) == 0 {
		return f.FormatError("이름을 만들지 못했습니다. 다른 키워드로 다시 시도해주세요.")
	}

	view := generationView{
		Total:       result.TotalCount,
		StyleLabel:  StyleLabel(result.Style),
		GenderLabel: GenderLabel(result.Gender),
		Keywords:    result.KeywordsUsed,
		Names:       result.Names,
		Note:        result.Note,
	}

	rendered, err := executeFormatterTemplate("generation", view)
	if err != nil {
		return f.fallbackGeneration(view)
	}
	return rendered
}

func (f *ResponseFormatter) fallbackGeneration(view generationView) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🌙 아랍 이름 %d개\n", view.Total))
	for i, name := range view.Names {
		sb.WriteString(fmt.Sprintf("\n%d. %s\n   %s", i+1, name.Name, name.Meaning))
	}
	return sb.String()
}

// FormatMeaning formats a name interpretation
func (f *ResponseFormatter) FormatMeaning(meaning domain.NameMeaning) string {
	rendered, err := executeFormatterTemplate("meaning", meaning)
	if err != nil {
		return fmt.Sprintf("📖 %s\n\n%s", meaning.Name, meaning.OverallMeaning)
	}
	return rendered
}

type keywordGuideView struct {
	Categories    []domain.KeywordCategory
	Styles        []string
	Genders       []string
	UsageTip      string
	CulturalNote  string
	DisplayFormat string
}

// FormatKeywordGuide formats the keyword suggestion list
func (f *ResponseFormatter) FormatKeywordGuide(guide domain.KeywordGuide) string {
	view := keywordGuideView{
		Categories:    guide.Categories,
		Styles:        make([]string, 0, len(guide.Styles)),
		Genders:       make([]string, 0, len(guide.Genders)),
		UsageTip:      guide.UsageTip,
		CulturalNote:  guide.CulturalNote,
		DisplayFormat: guide.DisplayFormat,
	}
	for _, style := range guide.Styles {
		view.Styles = append(view.Styles, fmt.Sprintf("%s(%s)", StyleLabel(style), style))
	}
	for _, gender := range guide.Genders {
		view.Genders = append(view.Genders, fmt.Sprintf("%s(%s)", GenderLabel(gender), gender))
	}

	rendered, err := executeFormatterTemplate("keywords", view)
	if err != nil {
		return f.FormatError("키워드 목록을 표시할 수 없습니다.")
	}
	return rendered
}

// FormatHelp formats help message
func (f *ResponseFormatter) FormatHelp() string {
	rendered, err := executeFormatterTemplate("help", struct{ Prefix string }{Prefix: f.prefix})
	if err != nil {
		return fmt.Sprintf("🌙 아랍 이름 작명 봇\n%s아랍이름 [키워드...]", f.prefix)
	}
	return rendered
}

// FormatStats formats per-command usage counters
func (f *ResponseFormatter) FormatStats(counts map[string]int64) string {
	if len(counts) == 0 {
		return "📊 아직 집계된 사용 기록이 없습니다."
	}

	commands := make([]string, 0, len(counts))
	var total int64
	for command, count := range counts {
		commands = append(commands, command)
		total += count
	}
	sort.Slice(commands, func(i, j int) bool {
		if counts[commands[i]] == counts[commands[j]] {
			return commands[i] < commands[j]
		}
		return counts[commands[i]] > counts[commands[j]]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 사용 통계 (총 %d회)\n", total))
	for _, command := range commands {
		label, ok := commandLabels[command]
		if !ok {
			label = command
		}
		sb.WriteString(fmt.Sprintf("\n- %s: %d회", label, counts[command]))
	}
	return sb.String()
}

// FormatCooldown formats the message shown while a sender is rate limited
func (f *ResponseFormatter) FormatCooldown(remaining time.Duration) string {
	seconds := int((remaining + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return fmt.Sprintf("⏳ 잠시 후 다시 시도해주세요. (%d초 남음)", seconds)
}

// FormatMeaningUsage formats the usage hint for an empty interpretation request
func (f *ResponseFormatter) FormatMeaningUsage() string {
	return fmt.Sprintf("📖 풀이할 이름을 입력해주세요.\n예) %s이름풀이 Najm ibn Shuja", f.prefix)
}

// FormatError formats error message
func (f *ResponseFormatter) FormatError(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

// StyleLabel returns the Korean display label of a style.
func StyleLabel(style domain.Style) string {
	if label, ok := styleLabels[style]; ok {
		return label
	}
	return string(style)
}

// GenderLabel returns the Korean display label of a gender.
func GenderLabel(gender domain.Gender) string {
	if label, ok := genderLabels[gender]; ok {
		return label
	}
	return string(gender)
}
