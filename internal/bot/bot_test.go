package bot

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kapu/arabic-name-bot-go/internal/adapter"
	"github.com/kapu/arabic-name-bot-go/internal/config"
	"github.com/kapu/arabic-name-bot-go/internal/iris"
	"github.com/kapu/arabic-name-bot-go/internal/service/namegen"
	"go.uber.org/zap"
)

type sentMessage struct {
	room string
	text string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (f *fakeSender) SendMessage(_ context.Context, room, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{room: room, text: message})
	return nil
}

func (f *fakeSender) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

type fakeSource struct {
	mu           sync.Mutex
	callback     iris.MessageCallback
	connected    chan struct{}
	disconnected bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{connected: make(chan struct{})}
}

func (f *fakeSource) Connect(context.Context) error {
	close(f.connected)
	return nil
}

func (f *fakeSource) OnMessage(cb iris.MessageCallback) func() {
	f.mu.Lock()
	f.callback = cb
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.callback = nil
		f.mu.Unlock()
	}
}

func (f *fakeSource) Disconnect() error {
	f.mu.Lock()
	f.disconnected = true
	f.mu.Unlock()
	return nil
}

func (f *fakeSource) emit(msg *iris.Message) {
	f.mu.Lock()
	cb := f.callback
	f.mu.Unlock()
	if cb != nil {
		cb(msg)
	}
}

func testConfig(rooms ...string) *config.Config {
	return &config.Config{
		Kakao:    config.KakaoConfig{Rooms: rooms},
		Generate: config.GenerateConfig{DefaultCount: 3},
		Bot:      config.BotConfig{Prefix: "!", Workers: 2},
	}
}

func newTestBot(t *testing.T, cfg *config.Config) (*Bot, *fakeSender, *fakeSource) {
	t.Helper()
	sender := &fakeSender{}
	source := newFakeSource()
	b, err := NewBot(&Dependencies{
		Config:         cfg,
		Logger:         zap.NewNop(),
		IrisClient:     sender,
		IrisWebSocket:  source,
		MessageAdapter: adapter.NewMessageAdapter(cfg.Bot.Prefix),
		Formatter:      adapter.NewResponseFormatter(cfg.Bot.Prefix),
		Generator:      namegen.NewGenerator(nil, namegen.Options{}),
	})
	if err != nil {
		t.Fatalf("NewBot returned error: %v", err)
	}
	return b, sender, source
}

func TestNewBotRejectsIncompleteDependencies(t *testing.T) {
	if _, err := NewBot(nil); err == nil {
		t.Fatalf("expected error for nil dependencies")
	}
	if _, err := NewBot(&Dependencies{Config: testConfig()}); err == nil {
		t.Fatalf("expected error for incomplete dependencies")
	}
}

func TestHandleMessageRepliesToGenerateCommand(t *testing.T) {
	b, sender, _ := newTestBot(t, testConfig())

	b.HandleMessage(context.Background(), &iris.Message{Msg: "!아랍이름 star brave 남자 왕족 2", Room: "room-1"})

	sent := sender.messages()
	if len(sent) != 1 {
		t.Fatalf("expected one reply, got %d", len(sent))
	}
	if sent[0].room != "room-1" || !strings.Contains(sent[0].text, "아랍 이름 2개") {
		t.Fatalf("unexpected reply %+v", sent[0])
	}
	if !strings.Contains(sent[0].text, "Al-") {
		t.Fatalf("royal style names should carry the Al- prefix: %q", sent[0].text)
	}
}

func TestHandleMessageIgnoresNonCommandsAndForeignRooms(t *testing.T) {
	b, sender, _ := newTestBot(t, testConfig("allowed"))

	b.HandleMessage(context.Background(), &iris.Message{Msg: "안녕하세요", Room: "allowed"})
	b.HandleMessage(context.Background(), &iris.Message{Msg: "!도움말", Room: "other"})
	b.HandleMessage(context.Background(), nil)

	if len(sender.messages()) != 0 {
		t.Fatalf("expected no replies, got %v", sender.messages())
	}

	b.HandleMessage(context.Background(), &iris.Message{Msg: "!도움말", Room: "allowed"})
	if len(sender.messages()) != 1 {
		t.Fatalf("expected help reply in allowed room")
	}
}

func TestStartServesUntilShutdown(t *testing.T) {
	b, sender, source := newTestBot(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- b.Start(ctx) }()

	select {
	case <-source.connected:
	case <-time.After(2 * time.Second):
		t.Fatalf("bot did not connect")
	}

	source.emit(&iris.Message{Msg: "!이름풀이 Najm ibn Shuja", Room: "room-1"})
	source.emit(&iris.Message{Msg: "!이름키워드", Room: "room-1"})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()
	if err := b.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
	cancel()

	if err := <-errCh; err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if !source.disconnected {
		t.Fatalf("expected websocket to be disconnected")
	}
	if len(sender.messages()) != 2 {
		t.Fatalf("expected both in-flight commands to finish, got %d", len(sender.messages()))
	}

	// Messages after shutdown are dropped.
	source.emit(&iris.Message{Msg: "!도움말", Room: "room-1"})
	if len(sender.messages()) != 2 {
		t.Fatalf("messages after shutdown must be ignored")
	}
}

type blockingSender struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingSender) SendMessage(context.Context, string, string) error {
	s.once.Do(func() { close(s.started) })
	<-s.release
	return nil
}

func TestShutdownHonorsDeadlineWhileWorkersAreSaturated(t *testing.T) {
	cfg := testConfig()
	cfg.Bot.Workers = 1
	sender := &blockingSender{started: make(chan struct{}), release: make(chan struct{})}
	b, err := NewBot(&Dependencies{
		Config:         cfg,
		Logger:         zap.NewNop(),
		IrisClient:     sender,
		IrisWebSocket:  newFakeSource(),
		MessageAdapter: adapter.NewMessageAdapter(cfg.Bot.Prefix),
		Formatter:      adapter.NewResponseFormatter(cfg.Bot.Prefix),
		Generator:      namegen.NewGenerator(nil, namegen.Options{}),
	})
	if err != nil {
		t.Fatalf("NewBot returned error: %v", err)
	}

	ctx := context.Background()
	b.enqueue(ctx, &iris.Message{Msg: "!도움말", Room: "room-1"})
	select {
	case <-sender.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("first command never reached the sender")
	}

	// The only worker is busy, so this submission blocks inside the pool.
	queued := make(chan struct{})
	go func() {
		defer close(queued)
		b.enqueue(ctx, &iris.Message{Msg: "!도움말", Room: "room-1"})
	}()
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = b.Shutdown(shutdownCtx)
	elapsed := time.Since(start)

	close(sender.release)
	<-queued

	if err == nil {
		t.Fatalf("expected deadline error while commands are still running")
	}
	if elapsed > time.Second {
		t.Fatalf("Shutdown took %s, expected it to return near its deadline", elapsed)
	}
}
