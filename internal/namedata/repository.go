package namedata

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/kapu/arabic-name-bot-go/internal/service/database"
	"github.com/kapu/arabic-name-bot-go/pkg/errors"
	"go.uber.org/zap"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS base_names (
	name     TEXT PRIMARY KEY,
	gender   TEXT NOT NULL CHECK (gender IN ('male', 'female')),
	position INT  NOT NULL
);
CREATE TABLE IF NOT EXISTS name_elements (
	element         TEXT PRIMARY KEY,
	transliteration TEXT,
	meaning         TEXT
);
CREATE TABLE IF NOT EXISTS keyword_categories (
	position INT  PRIMARY KEY,
	label    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS keywords (
	keyword           TEXT PRIMARY KEY,
	phrase            TEXT,
	category_position INT REFERENCES keyword_categories(position),
	position          INT NOT NULL
);
CREATE TABLE IF NOT EXISTS keyword_elements (
	keyword  TEXT NOT NULL REFERENCES keywords(keyword) ON DELETE CASCADE,
	position INT  NOT NULL,
	element  TEXT NOT NULL,
	PRIMARY KEY (keyword, position)
);
CREATE TABLE IF NOT EXISTS name_lists (
	list     TEXT NOT NULL CHECK (list IN ('default', 'religious', 'poetic')),
	position INT  NOT NULL,
	element  TEXT NOT NULL,
	PRIMARY KEY (list, position)
);
`

const (
	listDefault   = "default"
	listReligious = "religious"
	listPoetic    = "poetic"
)

// Repository loads and stores reference tables in PostgreSQL.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewRepository(postgres *database.PostgresService, logger *zap.Logger) *Repository {
	return &Repository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

// EnsureSchema creates the reference tables when they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaDDL); err != nil {
		return errors.NewDataError("failed to create name data schema", "schema", err)
	}
	return nil
}

// Load reads every reference table and returns a validated Store.
func (r *Repository) Load(ctx context.Context) (*Store, error) {
	t := Tables{
		Keywords:         make(map[string][]string),
		Transliterations: make(map[string]string),
		Meanings:         make(map[string]string),
		KeywordPhrases:   make(map[string]string),
	}

	if err := r.loadBaseNames(ctx, &t); err != nil {
		return nil, err
	}
	if err := r.loadElements(ctx, &t); err != nil {
		return nil, err
	}
	if err := r.loadKeywords(ctx, &t); err != nil {
		return nil, err
	}
	if err := r.loadLists(ctx, &t); err != nil {
		return nil, err
	}

	store, err := New(t)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Name data loaded from PostgreSQL",
		zap.Int("male_names", len(t.MaleNames)),
		zap.Int("female_names", len(t.FemaleNames)),
		zap.Int("keywords", len(t.Keywords)),
		zap.Int("transliterations", len(t.Transliterations)),
	)
	return store, nil
}

func (r *Repository) loadBaseNames(ctx context.Context, t *Tables) error {
	rows, err := r.db.QueryContext(ctx, `SELECT name, gender FROM base_names ORDER BY gender, position`)
	if err != nil {
		return errors.NewDataError("failed to query base names", "base_names", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, gender string
		if err := rows.Scan(&name, &gender); err != nil {
			return errors.NewDataError("failed to scan base name", "base_names", err)
		}
		if gender == "female" {
			t.FemaleNames = append(t.FemaleNames, name)
		} else {
			t.MaleNames = append(t.MaleNames, name)
		}
	}
	if err := rows.Err(); err != nil {
		return errors.NewDataError("failed to iterate base names", "base_names", err)
	}
	return nil
}

func (r *Repository) loadElements(ctx context.Context, t *Tables) error {
	rows, err := r.db.QueryContext(ctx, `SELECT element, transliteration, meaning FROM name_elements`)
	if err != nil {
		return errors.NewDataError("failed to query name elements", "name_elements", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			element  string
			translit sql.NullString
			meaning  sql.NullString
		)
		if err := rows.Scan(&element, &translit, &meaning); err != nil {
			return errors.NewDataError("failed to scan name element", "name_elements", err)
		}
		if translit.Valid {
			t.Transliterations[element] = translit.String
		}
		if meaning.Valid {
			t.Meanings[element] = meaning.String
		}
	}
	if err := rows.Err(); err != nil {
		return errors.NewDataError("failed to iterate name elements", "name_elements", err)
	}
	return nil
}

func (r *Repository) loadKeywords(ctx context.Context, t *Tables) error {
	categoryRows, err := r.db.QueryContext(ctx, `SELECT position, label FROM keyword_categories ORDER BY position`)
	if err != nil {
		return errors.NewDataError("failed to query keyword categories", "keyword_categories", err)
	}
	categoryIndex := make(map[int]int)
	for categoryRows.Next() {
		var (
			position int
			label    string
		)
		if err := categoryRows.Scan(&position, &label); err != nil {
			categoryRows.Close()
			return errors.NewDataError("failed to scan keyword category", "keyword_categories", err)
		}
		categoryIndex[position] = len(t.Categories)
		t.Categories = append(t.Categories, Category{Label: label})
	}
	categoryRows.Close()
	if err := categoryRows.Err(); err != nil {
		return errors.NewDataError("failed to iterate keyword categories", "keyword_categories", err)
	}

	keywordRows, err := r.db.QueryContext(ctx, `SELECT keyword, phrase, category_position FROM keywords ORDER BY position`)
	if err != nil {
		return errors.NewDataError("failed to query keywords", "keywords", err)
	}
	for keywordRows.Next() {
		var (
			keyword  string
			phrase   sql.NullString
			category sql.NullInt64
		)
		if err := keywordRows.Scan(&keyword, &phrase, &category); err != nil {
			keywordRows.Close()
			return errors.NewDataError("failed to scan keyword", "keywords", err)
		}
		if phrase.Valid {
			t.KeywordPhrases[keyword] = phrase.String
		}
		if category.Valid {
			if idx, ok := categoryIndex[int(category.Int64)]; ok {
				t.Categories[idx].Keywords = append(t.Categories[idx].Keywords, keyword)
			}
		}
	}
	keywordRows.Close()
	if err := keywordRows.Err(); err != nil {
		return errors.NewDataError("failed to iterate keywords", "keywords", err)
	}

	elementRows, err := r.db.QueryContext(ctx, `SELECT keyword, element FROM keyword_elements ORDER BY keyword, position`)
	if err != nil {
		return errors.NewDataError("failed to query keyword elements", "keyword_elements", err)
	}
	defer elementRows.Close()
	for elementRows.Next() {
		var keyword, element string
		if err := elementRows.Scan(&keyword, &element); err != nil {
			return errors.NewDataError("failed to scan keyword element", "keyword_elements", err)
		}
		t.Keywords[keyword] = append(t.Keywords[keyword], element)
	}
	if err := elementRows.Err(); err != nil {
		return errors.NewDataError("failed to iterate keyword elements", "keyword_elements", err)
	}
	return nil
}

func (r *Repository) loadLists(ctx context.Context, t *Tables) error {
	rows, err := r.db.QueryContext(ctx, `SELECT list, element FROM name_lists ORDER BY list, position`)
	if err != nil {
		return errors.NewDataError("failed to query name lists", "name_lists", err)
	}
	defer rows.Close()

	for rows.Next() {
		var list, element string
		if err := rows.Scan(&list, &element); err != nil {
			return errors.NewDataError("failed to scan name list entry", "name_lists", err)
		}
		switch list {
		case listDefault:
			t.DefaultElements = append(t.DefaultElements, element)
		case listReligious:
			t.ReligiousAttributes = append(t.ReligiousAttributes, element)
		case listPoetic:
			t.PoeticFallbacks = append(t.PoeticFallbacks, element)
		}
	}
	if err := rows.Err(); err != nil {
		return errors.NewDataError("failed to iterate name lists", "name_lists", err)
	}
	return nil
}

// Seed replaces the stored tables with t inside a single transaction.
func (r *Repository) Seed(ctx context.Context, t Tables) (err error) {
	if _, err := New(t); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDataError("failed to begin seed transaction", "seed", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `TRUNCATE keyword_elements, keywords, keyword_categories, name_lists, name_elements, base_names`); err != nil {
		return errors.NewDataError("failed to truncate name tables", "seed", err)
	}

	for i, name := range t.MaleNames {
		if _, err = tx.ExecContext(ctx, `INSERT INTO base_names (name, gender, position) VALUES ($1, 'male', $2)`, name, i); err != nil {
			return errors.NewDataError(fmt.Sprintf("failed to insert base name %s", name), "base_names", err)
		}
	}
	for i, name := range t.FemaleNames {
		if _, err = tx.ExecContext(ctx, `INSERT INTO base_names (name, gender, position) VALUES ($1, 'female', $2)`, name, i); err != nil {
			return errors.NewDataError(fmt.Sprintf("failed to insert base name %s", name), "base_names", err)
		}
	}

	for _, element := range elementKeys(t) {
		translit, hasTranslit := t.Transliterations[element]
		meaning, hasMeaning := t.Meanings[element]
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO name_elements (element, transliteration, meaning) VALUES ($1, $2, $3)`,
			element,
			sql.NullString{String: translit, Valid: hasTranslit},
			sql.NullString{String: meaning, Valid: hasMeaning},
		); err != nil {
			return errors.NewDataError(fmt.Sprintf("failed to insert element %s", element), "name_elements", err)
		}
	}

	categoryOf := make(map[string]int)
	for i, c := range t.Categories {
		if _, err = tx.ExecContext(ctx, `INSERT INTO keyword_categories (position, label) VALUES ($1, $2)`, i, c.Label); err != nil {
			return errors.NewDataError(fmt.Sprintf("failed to insert category %s", c.Label), "keyword_categories", err)
		}
		for _, keyword := range c.Keywords {
			categoryOf[keyword] = i
		}
	}

	for position, keyword := range keywordOrder(t) {
		phrase, hasPhrase := t.KeywordPhrases[keyword]
		category, hasCategory := categoryOf[keyword]
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO keywords (keyword, phrase, category_position, position) VALUES ($1, $2, $3, $4)`,
			keyword,
			sql.NullString{String: phrase, Valid: hasPhrase},
			sql.NullInt64{Int64: int64(category), Valid: hasCategory},
			position,
		); err != nil {
			return errors.NewDataError(fmt.Sprintf("failed to insert keyword %s", keyword), "keywords", err)
		}
		for i, element := range t.Keywords[keyword] {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO keyword_elements (keyword, position, element) VALUES ($1, $2, $3)`,
				keyword, i, element,
			); err != nil {
				return errors.NewDataError(fmt.Sprintf("failed to insert element for %s", keyword), "keyword_elements", err)
			}
		}
	}

	lists := map[string][]string{
		listDefault:   t.DefaultElements,
		listReligious: t.ReligiousAttributes,
		listPoetic:    t.PoeticFallbacks,
	}
	for list, elements := range lists {
		for i, element := range elements {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO name_lists (list, position, element) VALUES ($1, $2, $3)`,
				list, i, element,
			); err != nil {
				return errors.NewDataError(fmt.Sprintf("failed to insert %s list entry", list), "name_lists", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.NewDataError("failed to commit seed transaction", "seed", err)
	}

	r.logger.Info("Name data seeded",
		zap.Int("keywords", len(t.Keywords)),
		zap.Int("elements", len(t.Transliterations)),
	)
	return nil
}

// keywordOrder lists categorized keywords first, in guide order, then the rest sorted.
func keywordOrder(t Tables) []string {
	seen := make(map[string]struct{}, len(t.Keywords))
	order := make([]string, 0, len(t.Keywords))
	for _, c := range t.Categories {
		for _, keyword := range c.Keywords {
			if _, ok := t.Keywords[keyword]; !ok {
				continue
			}
			if _, dup := seen[keyword]; dup {
				continue
			}
			seen[keyword] = struct{}{}
			order = append(order, keyword)
		}
	}

	rest := make([]string, 0)
	for keyword := range t.Keywords {
		if _, ok := seen[keyword]; !ok {
			rest = append(rest, keyword)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func elementKeys(t Tables) []string {
	set := make(map[string]struct{}, len(t.Transliterations)+len(t.Meanings))
	for k := range t.Transliterations {
		set[k] = struct{}{}
	}
	for k := range t.Meanings {
		set[k] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
