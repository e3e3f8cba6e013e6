package command

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kapu/arabic-name-bot-go/internal/adapter"
	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/service/namegen"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	requests []domain.GenerationRequest
	result   domain.GenerationResult
	meanings []string
}

func (f *fakeGenerator) Generate(_ context.Context, req domain.GenerationRequest) domain.GenerationResult {
	f.requests = append(f.requests, req)
	return f.result
}

func (f *fakeGenerator) Interpret(name string) domain.NameMeaning {
	f.meanings = append(f.meanings, name)
	return domain.NameMeaning{Name: name, OverallMeaning: "뜻"}
}

func (f *fakeGenerator) KeywordGuide() domain.KeywordGuide {
	return domain.KeywordGuide{UsageTip: "tip"}
}

type fakeUsage struct {
	allow      bool
	acquireErr error
	remaining  time.Duration
	subjects   []string
	counts     map[string]int64
	countsErr  error
}

func (f *fakeUsage) AcquireCooldown(_ context.Context, subject string, _ time.Duration) (bool, error) {
	f.subjects = append(f.subjects, subject)
	return f.allow, f.acquireErr
}

func (f *fakeUsage) CooldownRemaining(context.Context, string) (time.Duration, error) {
	return f.remaining, nil
}

func (f *fakeUsage) IncrementUsage(_ context.Context, command string) error {
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[command]++
	return nil
}

func (f *fakeUsage) UsageCounts(context.Context) (map[string]int64, error) {
	return f.counts, f.countsErr
}

type outbox struct {
	messages []string
	errors   []string
}

func newTestDeps(gen NameGenerator, usage UsageTracker) (*Dependencies, *outbox) {
	out := &outbox{}
	deps := &Dependencies{
		Generator: gen,
		Formatter: adapter.NewResponseFormatter("!"),
		SendMessage: func(_ string, message string) error {
			out.messages = append(out.messages, message)
			return nil
		},
		SendError: func(_ string, message string) error {
			out.errors = append(out.errors, message)
			return nil
		},
		Logger:       zap.NewNop(),
		DefaultCount: 3,
	}
	if usage != nil {
		deps.Usage = usage
		deps.Cooldown = 30 * time.Second
	}
	return deps, out
}

func testContext() *domain.CommandContext {
	return domain.NewCommandContext("room-1", "테스트방", "kapu", "!아랍이름", true)
}

func TestGenerateNameCommandBuildsRequestFromParams(t *testing.T) {
	gen := &fakeGenerator{result: domain.GenerationResult{
		Names:      []domain.GeneratedName{{Name: "Najm (나즘)", Meaning: "별"}},
		Style:      domain.StyleRoyal,
		Gender:     domain.GenderMale,
		TotalCount: 1,
	}}
	deps, out := newTestDeps(gen, nil)

	err := NewGenerateNameCommand(deps).Execute(context.Background(), testContext(), map[string]any{
		"keywords": []string{"star", "brave"},
		"gender":   domain.GenderMale,
		"style":    "royal",
		"count":    5,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(gen.requests) != 1 {
		t.Fatalf("expected one request, got %d", len(gen.requests))
	}
	req := gen.requests[0]
	if req.Gender != domain.GenderMale || req.Style != domain.StyleRoyal || req.Count != 5 {
		t.Fatalf("unexpected request %+v", req)
	}
	if strings.Join(req.Keywords, ",") != "star,brave" {
		t.Fatalf("unexpected keywords %v", req.Keywords)
	}
	if len(out.messages) != 1 || !strings.Contains(out.messages[0], "Najm (나즘)") {
		t.Fatalf("unexpected output %v", out.messages)
	}
}

func TestGenerateNameCommandDefaults(t *testing.T) {
	gen := &fakeGenerator{}
	deps, out := newTestDeps(gen, nil)

	if err := NewGenerateNameCommand(deps).Execute(context.Background(), testContext(), map[string]any{}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	req := gen.requests[0]
	if req.Gender != domain.GenderAny || req.Style != domain.StyleTraditional || req.Count != 3 {
		t.Fatalf("unexpected defaults %+v", req)
	}
	if len(out.messages) != 1 || !strings.HasPrefix(out.messages[0], "❌") {
		t.Fatalf("empty batch should render an error message, got %v", out.messages)
	}
}

func TestGenerateNameCommandHonoursCooldown(t *testing.T) {
	gen := &fakeGenerator{}
	usage := &fakeUsage{allow: false, remaining: 12 * time.Second}
	deps, out := newTestDeps(gen, usage)

	if err := NewGenerateNameCommand(deps).Execute(context.Background(), testContext(), nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(gen.requests) != 0 {
		t.Fatalf("generator must not run during cooldown")
	}
	if len(usage.subjects) != 1 || usage.subjects[0] != "room-1:kapu" {
		t.Fatalf("unexpected cooldown subjects %v", usage.subjects)
	}
	if len(out.messages) != 1 || !strings.Contains(out.messages[0], "12초") {
		t.Fatalf("expected cooldown message, got %v", out.messages)
	}
}

func TestGenerateNameCommandFailsOpenOnCacheError(t *testing.T) {
	gen := &fakeGenerator{}
	usage := &fakeUsage{acquireErr: errors.New("redis down")}
	deps, _ := newTestDeps(gen, usage)

	if err := NewGenerateNameCommand(deps).Execute(context.Background(), testContext(), nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(gen.requests) != 1 {
		t.Fatalf("expected generation despite cache failure")
	}
	if usage.counts[domain.CommandGenerateName.String()] != 1 {
		t.Fatalf("expected usage to be recorded, got %v", usage.counts)
	}
}

func TestNameMeaningCommand(t *testing.T) {
	gen := &fakeGenerator{}
	deps, out := newTestDeps(gen, nil)
	cmd := NewNameMeaningCommand(deps)

	if err := cmd.Execute(context.Background(), testContext(), map[string]any{}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(gen.meanings) != 0 || !strings.Contains(out.messages[0], "이름풀이") {
		t.Fatalf("empty name should print usage, got %v", out.messages)
	}

	if err := cmd.Execute(context.Background(), testContext(), map[string]any{"name": "Najm ibn Shuja"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(gen.meanings) != 1 || gen.meanings[0] != "Najm ibn Shuja" {
		t.Fatalf("unexpected interpret calls %v", gen.meanings)
	}
}

func TestStatsCommand(t *testing.T) {
	deps, out := newTestDeps(&fakeGenerator{}, nil)
	if err := NewStatsCommand(deps).Execute(context.Background(), testContext(), nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(out.errors) != 1 {
		t.Fatalf("expected disabled stats error, got %v", out.errors)
	}

	usage := &fakeUsage{counts: map[string]int64{"generate_name": 4, "help": 1}}
	deps, out = newTestDeps(&fakeGenerator{}, usage)
	if err := NewStatsCommand(deps).Execute(context.Background(), testContext(), nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(out.messages) != 1 || !strings.Contains(out.messages[0], "총 5회") {
		t.Fatalf("unexpected stats output %v", out.messages)
	}
}

func TestDispatcherRunsRegisteredCommands(t *testing.T) {
	gen := namegen.NewGenerator(nil, namegen.Options{})
	deps, out := newTestDeps(gen, nil)

	registry := NewRegistry()
	registry.RegisterDefaults(deps)
	if registry.Count() != 5 {
		t.Fatalf("expected 5 commands, got %v", registry.Names())
	}

	dispatcher := NewSequentialDispatcher(registry, nil)
	params := map[string]any{"keywords": []string{"star"}, "count": 2}
	executed, err := dispatcher.Publish(context.Background(), testContext(),
		CommandEvent{Type: domain.CommandUnknown},
		CommandEvent{Type: domain.CommandGenerateName, Params: params},
		CommandEvent{Type: domain.CommandNameKeywords},
	)
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if executed != 2 || len(out.messages) != 2 {
		t.Fatalf("expected two executions, got %d (%v)", executed, out.messages)
	}
	if len(params) != 2 {
		t.Fatalf("dispatcher must not mutate caller params")
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	err := NewRegistry().Execute(context.Background(), testContext(), "nope", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}
