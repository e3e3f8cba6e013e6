package command

import (
	"context"
	"time"

	"github.com/kapu/arabic-name-bot-go/internal/adapter"
	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"go.uber.org/zap"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error
}

// NameGenerator is the engine surface the chat commands depend on.
type NameGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult
	Interpret(name string) domain.NameMeaning
	KeywordGuide() domain.KeywordGuide
}

// UsageTracker throttles senders and counts command usage.
type UsageTracker interface {
	AcquireCooldown(ctx context.Context, subject string, ttl time.Duration) (bool, error)
	CooldownRemaining(ctx context.Context, subject string) (time.Duration, error)
	IncrementUsage(ctx context.Context, command string) error
	UsageCounts(ctx context.Context) (map[string]int64, error)
}

type Dependencies struct {
	Generator    NameGenerator
	Usage        UsageTracker // nil disables cooldowns and stats
	Formatter    *adapter.ResponseFormatter
	SendMessage  func(room, message string) error
	SendError    func(room, message string) error
	Logger       *zap.Logger
	Cooldown     time.Duration
	DefaultCount int
}

func (d *Dependencies) logger() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// recordUsage bumps the usage counter. Failures only get logged.
func (d *Dependencies) recordUsage(ctx context.Context, name string) {
	if d == nil || d.Usage == nil {
		return
	}
	if err := d.Usage.IncrementUsage(ctx, name); err != nil {
		d.logger().Warn("Failed to record usage", zap.String("command", name), zap.Error(err))
	}
}
