package adapter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kapu/arabic-name-bot-go/internal/constants"
	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/iris"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
	"github.com/kapu/arabic-name-bot-go/internal/util"
)

var controlCharsPattern = regexp.MustCompile(`[\x00-\x1F\x7F]`)

// MessageAdapter converts KakaoTalk messages to bot commands
type MessageAdapter struct {
	prefix string
}

// NewMessageAdapter creates a new MessageAdapter
func NewMessageAdapter(prefix string) *MessageAdapter {
	return &MessageAdapter{prefix: prefix}
}

// ParsedCommand represents a parsed command
type ParsedCommand struct {
	Type       domain.CommandType
	Params     map[string]any
	RawMessage string
}

// ParseMessage parses a KakaoTalk message into a command
func (ma *MessageAdapter) ParseMessage(message *iris.Message) *ParsedCommand {
	if message == nil || message.Msg == "" {
		return ma.createUnknownCommand("")
	}

	text := sanitize(message.Msg)
	if !strings.HasPrefix(text, ma.prefix) {
		return ma.createUnknownCommand(text)
	}

	parts := strings.Fields(strings.TrimSpace(text[len(ma.prefix):]))
	if len(parts) == 0 {
		return ma.createUnknownCommand(text)
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch {
	case ma.isGenerateCommand(command):
		return &ParsedCommand{
			Type:       domain.CommandGenerateName,
			Params:     ma.parseGenerateArgs(args),
			RawMessage: text,
		}
	case ma.isMeaningCommand(command):
		params := make(map[string]any)
		if name := strings.Join(args, " "); name != "" {
			params["name"] = util.TruncateString(name, constants.InputLimits.MaxNameLength)
		}
		return &ParsedCommand{
			Type:       domain.CommandNameMeaning,
			Params:     params,
			RawMessage: text,
		}
	case ma.isKeywordsCommand(command):
		return &ParsedCommand{
			Type:       domain.CommandNameKeywords,
			Params:     make(map[string]any),
			RawMessage: text,
		}
	case ma.isStatsCommand(command):
		return &ParsedCommand{
			Type:       domain.CommandStats,
			Params:     make(map[string]any),
			RawMessage: text,
		}
	case ma.isHelpCommand(command):
		return &ParsedCommand{
			Type:       domain.CommandHelp,
			Params:     make(map[string]any),
			RawMessage: text,
		}
	}

	return ma.createUnknownCommand(text)
}

// Command matchers

func (ma *MessageAdapter) isGenerateCommand(cmd string) bool {
	return util.Contains([]string{"아랍이름", "이름생성", "작명", "arabicname", "name"}, cmd)
}

func (ma *MessageAdapter) isMeaningCommand(cmd string) bool {
	return util.Contains([]string{"이름풀이", "이름뜻", "뜻", "meaning"}, cmd)
}

func (ma *MessageAdapter) isKeywordsCommand(cmd string) bool {
	return util.Contains([]string{"이름키워드", "키워드", "keywords"}, cmd)
}

func (ma *MessageAdapter) isStatsCommand(cmd string) bool {
	return util.Contains([]string{"이름통계", "통계", "stats"}, cmd)
}

func (ma *MessageAdapter) isHelpCommand(cmd string) bool {
	return util.Contains([]string{"도움말", "도움", "help", "명령어", "commands"}, cmd)
}

// parseGenerateArgs sorts free arguments into style, gender, count and keywords.
// Later style/gender/count tokens override earlier ones.
func (ma *MessageAdapter) parseGenerateArgs(args []string) map[string]any {
	keywords := make([]string, 0, len(args))
	params := make(map[string]any)

	for _, arg := range args {
		token := strings.Trim(arg, ",")
		if token == "" {
			continue
		}
		if style, ok := domain.ParseStyle(token); ok {
			params["style"] = style
			continue
		}
		if gender, ok := domain.LookupGender(token); ok {
			params["gender"] = gender
			continue
		}
		if count, ok := parseCount(token); ok {
			params["count"] = count
			continue
		}
		if len(keywords) >= constants.InputLimits.MaxKeywords {
			continue
		}
		keyword := namedata.NormalizeKeyword(token)
		if english, ok := koreanKeywords[keyword]; ok {
			keyword = english
		}
		keywords = append(keywords, keyword)
	}

	params["keywords"] = keywords
	return params
}

// parseCount accepts "5", "5개" and "5명".
func parseCount(token string) (int, bool) {
	token = strings.TrimSuffix(strings.TrimSuffix(token, "개"), "명")
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (ma *MessageAdapter) createUnknownCommand(text string) *ParsedCommand {
	return &ParsedCommand{
		Type:       domain.CommandUnknown,
		Params:     make(map[string]any),
		RawMessage: text,
	}
}

func sanitize(input string) string {
	normalized := util.CollapseSpaces(controlCharsPattern.ReplaceAllString(input, " "))

	runes := []rune(normalized)
	if len(runes) > constants.InputLimits.MaxMessageLength {
		return string(runes[:constants.InputLimits.MaxMessageLength])
	}
	return normalized
}
