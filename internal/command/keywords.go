package command

import (
	"context"
	"fmt"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
)

type NameKeywordsCommand struct {
	deps *Dependencies
}

func NewNameKeywordsCommand(deps *Dependencies) *NameKeywordsCommand {
	return &NameKeywordsCommand{deps: deps}
}

func (c *NameKeywordsCommand) Name() string {
	return domain.CommandNameKeywords.String()
}

func (c *NameKeywordsCommand) Description() string {
	return "이름에 쓸 수 있는 키워드를 안내합니다"
}

func (c *NameKeywordsCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ map[string]any) error {
	if c.deps == nil || c.deps.Generator == nil || c.deps.Formatter == nil {
		return fmt.Errorf("keywords command dependencies not configured")
	}

	c.deps.recordUsage(ctx, c.Name())
	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatKeywordGuide(c.deps.Generator.KeywordGuide()))
}
