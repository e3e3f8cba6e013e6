package command

import (
	"strconv"
	"strings"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
)

func stringParam(params map[string]any, key string) string {
	switch v := params[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case domain.Style:
		return string(v)
	case domain.Gender:
		return string(v)
	default:
		return ""
	}
}

func stringSliceParam(params map[string]any, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return strings.Fields(strings.ReplaceAll(v, ",", " "))
	default:
		return nil
	}
}

func intParam(params map[string]any, key string, fallback int) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func genderParam(params map[string]any) domain.Gender {
	if g, ok := params["gender"].(domain.Gender); ok && g.IsValid() {
		return g
	}
	return domain.ParseGender(stringParam(params, "gender"))
}

func styleParam(params map[string]any) domain.Style {
	if s, ok := params["style"].(domain.Style); ok && s.IsValid() {
		return s
	}
	if s, ok := domain.ParseStyle(stringParam(params, "style")); ok {
		return s
	}
	return domain.StyleTraditional
}
