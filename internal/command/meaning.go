package command

import (
	"context"
	"fmt"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
)

type NameMeaningCommand struct {
	deps *Dependencies
}

func NewNameMeaningCommand(deps *Dependencies) *NameMeaningCommand {
	return &NameMeaningCommand{deps: deps}
}

func (c *NameMeaningCommand) Name() string {
	return domain.CommandNameMeaning.String()
}

func (c *NameMeaningCommand) Description() string {
	return "아랍 이름의 뜻을 풀이합니다"
}

func (c *NameMeaningCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps == nil || c.deps.Generator == nil || c.deps.Formatter == nil {
		return fmt.Errorf("meaning command dependencies not configured")
	}

	name := stringParam(params, "name")
	if name == "" {
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatMeaningUsage())
	}

	meaning := c.deps.Generator.Interpret(name)
	c.deps.recordUsage(ctx, c.Name())
	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatMeaning(meaning))
}
