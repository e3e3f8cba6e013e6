package command

import (
	"context"
	"fmt"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"go.uber.org/zap"
)

type StatsCommand struct {
	deps *Dependencies
}

func NewStatsCommand(deps *Dependencies) *StatsCommand {
	return &StatsCommand{deps: deps}
}

func (c *StatsCommand) Name() string {
	return domain.CommandStats.String()
}

func (c *StatsCommand) Description() string {
	return "명령어 사용 통계를 조회합니다"
}

func (c *StatsCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, _ map[string]any) error {
	if c.deps == nil || c.deps.SendError == nil || c.deps.SendMessage == nil {
		return fmt.Errorf("message callbacks not configured")
	}
	if c.deps.Usage == nil {
		return c.deps.SendError(cmdCtx.Room, "통계 기능이 활성화되지 않았습니다.")
	}

	counts, err := c.deps.Usage.UsageCounts(ctx)
	if err != nil {
		c.deps.logger().Error("Failed to load usage counts", zap.Error(err))
		return c.deps.SendError(cmdCtx.Room, "통계 조회 중 오류가 발생했습니다.")
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatStats(counts))
}
