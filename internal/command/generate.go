package command

import (
	"context"
	"fmt"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"go.uber.org/zap"
)

type GenerateNameCommand struct {
	deps *Dependencies
}

func NewGenerateNameCommand(deps *Dependencies) *GenerateNameCommand {
	return &GenerateNameCommand{deps: deps}
}

func (c *GenerateNameCommand) Name() string {
	return domain.CommandGenerateName.String()
}

func (c *GenerateNameCommand) Description() string {
	return "키워드로 아랍 이름을 만듭니다"
}

func (c *GenerateNameCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if c.deps == nil || c.deps.Generator == nil || c.deps.Formatter == nil {
		return fmt.Errorf("generate command dependencies not configured")
	}

	if allowed, err := c.acquireCooldown(ctx, cmdCtx); err != nil {
		return err
	} else if !allowed {
		return nil
	}

	defaultCount := c.deps.DefaultCount
	if defaultCount <= 0 {
		defaultCount = domain.DefaultNameCount
	}

	req := domain.GenerationRequest{
		Keywords: stringSliceParam(params, "keywords"),
		Gender:   genderParam(params),
		Style:    styleParam(params),
		Count:    intParam(params, "count", defaultCount),
	}

	result := c.deps.Generator.Generate(ctx, req)
	c.deps.recordUsage(ctx, c.Name())

	c.deps.logger().Info("Names generated",
		zap.String("batch_id", result.BatchID),
		zap.String("room", cmdCtx.Room),
		zap.Strings("keywords", result.KeywordsUsed),
		zap.String("style", result.Style.String()),
		zap.Int("requested", req.EffectiveCount()),
		zap.Int("total", result.TotalCount),
	)

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatGeneration(result))
}

// acquireCooldown reports whether the sender may generate now. Cache failures fail open.
func (c *GenerateNameCommand) acquireCooldown(ctx context.Context, cmdCtx *domain.CommandContext) (bool, error) {
	if c.deps.Usage == nil || c.deps.Cooldown <= 0 {
		return true, nil
	}

	subject := cmdCtx.SenderKey()
	allowed, err := c.deps.Usage.AcquireCooldown(ctx, subject, c.deps.Cooldown)
	if err != nil {
		c.deps.logger().Warn("Cooldown check failed", zap.String("subject", subject), zap.Error(err))
		return true, nil
	}
	if allowed {
		return true, nil
	}

	remaining, err := c.deps.Usage.CooldownRemaining(ctx, subject)
	if err != nil || remaining <= 0 {
		remaining = c.deps.Cooldown
	}
	return false, c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatCooldown(remaining))
}
