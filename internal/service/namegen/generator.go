// Package namegen composes Arabic-style names from keyword-driven element
// tables and renders their Hangul pronunciation and meaning.
package namegen

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/kapu/arabic-name-bot-go/internal/domain"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
	"go.uber.org/zap"
)

// AttemptsPerName is the default number of composition attempts allowed per
// requested name before a batch is returned short.
const AttemptsPerName = 5

// ResultNote is attached to every generation result.
const ResultNote = "모든 이름은 중복이 제거되었으며 '아랍어 (한글음차)' 형식으로 표시됩니다."

// Options tunes a Generator. Zero values select the defaults.
type Options struct {
	// Rand supplies uniform draws. Defaults to the global math/rand/v2 source.
	// A non-default Rand must not be shared between concurrent Generate calls.
	Rand Rand

	// AttemptBudget maps the clamped target count to the maximum number of
	// composition attempts. Defaults to target*AttemptsPerName.
	AttemptBudget func(target int) int

	Logger *zap.Logger
}

// Generator produces deduplicated batches of names.
type Generator struct {
	store         *namedata.Store
	rng           Rand
	attemptBudget func(int) int
	logger        *zap.Logger
}

func NewGenerator(store *namedata.Store, opts Options) *Generator {
	if store == nil {
		store = namedata.Builtin()
	}
	if opts.Rand == nil {
		opts.Rand = globalRand{}
	}
	if opts.AttemptBudget == nil {
		opts.AttemptBudget = func(target int) int { return target * AttemptsPerName }
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Generator{
		store:         store,
		rng:           opts.Rand,
		attemptBudget: opts.AttemptBudget,
		logger:        opts.Logger,
	}
}

// Store exposes the reference tables the generator reads from.
func (g *Generator) Store() *namedata.Store {
	return g.store
}

// Generate composes up to req.EffectiveCount() distinct names. When the attempt
// budget runs out (or ctx is done) first, the batch is returned short; that is
// reported through TotalCount rather than an error.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	if req.Gender == "" {
		req.Gender = domain.GenderAny
	}
	if req.Style == "" {
		req.Style = domain.StyleTraditional
	}

	target := req.EffectiveCount()
	maxAttempts := g.attemptBudget(target)

	used := make(map[string]struct{}, target)
	names := make([]domain.GeneratedName, 0, target)
	attempts := 0

	for len(names) < target && attempts < maxAttempts {
		if ctx.Err() != nil {
			break
		}
		attempts++

		elements := Resolve(g.store, req.Keywords)
		candidate := Compose(g.store, g.rng, elements, req.Gender, req.Style)
		if _, dup := used[candidate]; dup {
			continue
		}
		used[candidate] = struct{}{}
		names = append(names, Present(g.store, candidate, req.Keywords, req.Style, req.Gender))
	}

	keywordsUsed := slices.Clone(req.Keywords)
	if keywordsUsed == nil {
		keywordsUsed = []string{}
	}

	batchID := uuid.NewString()
	g.logger.Debug("Name batch generated",
		zap.String("batch_id", batchID),
		zap.Strings("keywords", req.Keywords),
		zap.String("gender", req.Gender.String()),
		zap.String("style", req.Style.String()),
		zap.Int("requested", target),
		zap.Int("generated", len(names)),
		zap.Int("attempts", attempts),
	)

	return domain.GenerationResult{
		Names:        names,
		KeywordsUsed: keywordsUsed,
		Style:        req.Style,
		Gender:       req.Gender,
		TotalCount:   len(names),
		Note:         ResultNote,
		BatchID:      batchID,
	}
}

// Interpret explains the parts of an existing name using the generator's tables.
func (g *Generator) Interpret(name string) domain.NameMeaning {
	return Interpret(g.store, name)
}

// KeywordGuide lists the keywords, styles and genders callers can use.
func (g *Generator) KeywordGuide() domain.KeywordGuide {
	return KeywordGuide(g.store)
}
