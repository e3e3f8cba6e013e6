package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/kapu/arabic-name-bot-go/internal/adapter"
	"github.com/kapu/arabic-name-bot-go/internal/command"
	"github.com/kapu/arabic-name-bot-go/internal/config"
	"github.com/kapu/arabic-name-bot-go/internal/constants"
	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/iris"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// MessageSender delivers replies to a chat room.
type MessageSender interface {
	SendMessage(ctx context.Context, room, message string) error
}

// MessageSource pushes incoming chat messages to registered callbacks.
type MessageSource interface {
	Connect(ctx context.Context) error
	OnMessage(callback iris.MessageCallback) func()
	Disconnect() error
}

type Dependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	IrisClient     MessageSender
	IrisWebSocket  MessageSource
	MessageAdapter *adapter.MessageAdapter
	Formatter      *adapter.ResponseFormatter
	Generator      command.NameGenerator
	Usage          command.UsageTracker // optional
	Closers        []func() error
}

// Bot routes chat messages from Iris to the name commands.
type Bot struct {
	cfg        *config.Config
	logger     *zap.Logger
	client     MessageSender
	ws         MessageSource
	adapter    *adapter.MessageAdapter
	formatter  *adapter.ResponseFormatter
	registry   *command.Registry
	dispatcher command.Dispatcher
	workers    *pool.Pool
	closers    []func() error

	mu          sync.Mutex
	unsubscribe func()
	shutdown    bool
	submitting  sync.WaitGroup
}

func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil {
		return nil, fmt.Errorf("bot dependencies must not be nil")
	}
	if deps.Config == nil || deps.IrisClient == nil || deps.IrisWebSocket == nil ||
		deps.MessageAdapter == nil || deps.Formatter == nil || deps.Generator == nil {
		return nil, fmt.Errorf("bot dependencies incomplete")
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := deps.Config.Bot.Workers
	if workers <= 0 {
		workers = 1
	}

	b := &Bot{
		cfg:       deps.Config,
		logger:    logger,
		client:    deps.IrisClient,
		ws:        deps.IrisWebSocket,
		adapter:   deps.MessageAdapter,
		formatter: deps.Formatter,
		registry:  command.NewRegistry(),
		workers:   pool.New().WithMaxGoroutines(workers),
		closers:   deps.Closers,
	}

	cmdDeps := &command.Dependencies{
		Generator:    deps.Generator,
		Usage:        deps.Usage,
		Formatter:    deps.Formatter,
		SendMessage:  b.sendMessage,
		SendError:    b.sendError,
		Logger:       logger,
		Cooldown:     deps.Config.Generate.Cooldown,
		DefaultCount: deps.Config.Generate.DefaultCount,
	}
	b.registry.RegisterDefaults(cmdDeps)
	b.dispatcher = command.NewSequentialDispatcher(b.registry, command.NormalizeCommand)

	logger.Info("Bot initialized",
		zap.Strings("commands", b.registry.Names()),
		zap.Int("workers", workers),
		zap.Int("rooms", len(deps.Config.Kakao.Rooms)),
	)

	return b, nil
}

// Start connects to Iris and serves messages until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.shutdown {
		b.mu.Unlock()
		return fmt.Errorf("bot already shut down")
	}
	b.unsubscribe = b.ws.OnMessage(func(message *iris.Message) {
		b.enqueue(ctx, message)
	})
	b.mu.Unlock()

	if err := b.ws.Connect(ctx); err != nil {
		// The websocket keeps retrying in the background.
		b.logger.Warn("Initial Iris connection failed", zap.Error(err))
	}

	b.logger.Info("Bot is running", zap.String("prefix", b.cfg.Bot.Prefix))
	<-ctx.Done()
	return nil
}

func (b *Bot) enqueue(ctx context.Context, message *iris.Message) {
	b.mu.Lock()
	if b.shutdown || ctx.Err() != nil {
		b.mu.Unlock()
		return
	}
	b.submitting.Add(1)
	b.mu.Unlock()
	defer b.submitting.Done()

	// Go blocks while every worker is busy.
	b.workers.Go(func() {
		b.HandleMessage(ctx, message)
	})
}

// HandleMessage parses one chat message and executes the matching command.
func (b *Bot) HandleMessage(ctx context.Context, message *iris.Message) {
	if message == nil {
		return
	}
	if !b.cfg.AllowsRoom(message.Room) {
		return
	}

	parsed := b.adapter.ParseMessage(message)
	if parsed.Type == domain.CommandUnknown {
		return
	}

	sender := message.SenderName()
	if sender == "" {
		sender = message.UserID()
	}
	cmdCtx := domain.NewCommandContext(message.Room, message.Room, sender, parsed.RawMessage, true)

	execCtx, cancel := context.WithTimeout(ctx, constants.CommandTimeout.Execute)
	defer cancel()

	b.logger.Debug("Executing command",
		zap.String("command", parsed.Type.String()),
		zap.String("room", cmdCtx.Room),
		zap.String("sender", cmdCtx.Sender),
	)

	if _, err := b.dispatcher.Publish(execCtx, cmdCtx, command.CommandEvent{
		Type:   parsed.Type,
		Params: parsed.Params,
	}); err != nil {
		b.logger.Error("Command execution failed",
			zap.String("command", parsed.Type.String()),
			zap.String("room", cmdCtx.Room),
			zap.Error(err),
		)
		_ = b.sendError(cmdCtx.Room, "명령 처리 중 오류가 발생했습니다.")
	}
}

func (b *Bot) sendMessage(room, message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), constants.IrisConfig.RequestTimeout)
	defer cancel()
	return b.client.SendMessage(ctx, room, message)
}

func (b *Bot) sendError(room, message string) error {
	return b.sendMessage(room, b.formatter.FormatError(message))
}

// Shutdown stops intake, waits for in-flight commands and releases resources.
func (b *Bot) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	if b.shutdown {
		b.mu.Unlock()
		return nil
	}
	b.shutdown = true
	unsubscribe := b.unsubscribe
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if err := b.ws.Disconnect(); err != nil {
		b.logger.Warn("Failed to disconnect Iris websocket", zap.Error(err))
	}

	done := make(chan struct{})
	go func() {
		// Wait must not run concurrently with Go.
		b.submitting.Wait()
		b.workers.Wait()
		close(done)
	}()

	var waitErr error
	select {
	case <-done:
	case <-ctx.Done():
		waitErr = fmt.Errorf("waiting for in-flight commands: %w", ctx.Err())
	}

	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			b.logger.Warn("Failed to close resource", zap.Error(err))
		}
	}

	b.logger.Info("Bot shut down")
	return waitErr
}
