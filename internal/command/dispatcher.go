package command

import (
	"context"

	"github.com/kapu/arabic-name-bot-go/internal/domain"
)

// CommandEvent is one parsed chat command waiting to be executed.
type CommandEvent struct {
	Type   domain.CommandType
	Params map[string]any
}

// Dispatcher executes command events against the registry.
type Dispatcher interface {
	Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error)
}

// NormalizeFunc converts a domain command type plus params into the registry key
// and normalized parameter map used for execution.
type NormalizeFunc func(domain.CommandType, map[string]any) (string, map[string]any)

// NormalizeCommand keys commands by their CommandType string and keeps params as is.
func NormalizeCommand(cmdType domain.CommandType, params map[string]any) (string, map[string]any) {
	return cmdType.String(), params
}

type sequentialDispatcher struct {
	registry  *Registry
	normalize NormalizeFunc
}

// NewSequentialDispatcher creates a dispatcher that executes command events in
// the order they are received.
func NewSequentialDispatcher(registry *Registry, normalize NormalizeFunc) Dispatcher {
	if normalize == nil {
		normalize = NormalizeCommand
	}
	return &sequentialDispatcher{registry: registry, normalize: normalize}
}

func (d *sequentialDispatcher) Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error) {
	if d == nil || d.registry == nil {
		return 0, nil
	}

	executed := 0
	for _, event := range events {
		if event.Type == domain.CommandUnknown || !event.Type.IsValid() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return executed, err
		}

		key, params := d.normalize(event.Type, cloneParams(event.Params))
		if err := d.registry.Execute(ctx, cmdCtx, key, params); err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}

func cloneParams(src map[string]any) map[string]any {
	if len(src) == 0 {
		return map[string]any{}
	}
	clone := make(map[string]any, len(src))
	for k, v := range src {
		clone[k] = v
	}
	return clone
}
