package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kapu/arabic-name-bot-go/internal/app"
	"github.com/kapu/arabic-name-bot-go/internal/config"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
	"github.com/kapu/arabic-name-bot-go/internal/service/database"
	"github.com/kapu/arabic-name-bot-go/internal/util"
	"go.uber.org/zap"
)

// CLI flags
var (
	dryRun   = flag.Bool("dry-run", false, "Validate tables without touching the database")
	fromFile = flag.String("from", "", "Seed from a JSON tables file instead of the builtin tables")
	timeout  = flag.Duration("timeout", time.Minute, "Overall timeout")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Seeding failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	tables, err := loadTables(*fromFile)
	if err != nil {
		return err
	}

	// New validates the same invariants the bot enforces on load.
	if _, err := namedata.New(tables); err != nil {
		return fmt.Errorf("tables are invalid: %w", err)
	}
	logger.Info("Tables validated",
		zap.Int("male_names", len(tables.MaleNames)),
		zap.Int("female_names", len(tables.FemaleNames)),
		zap.Int("keywords", len(tables.Keywords)),
		zap.Int("transliterations", len(tables.Transliterations)),
	)

	if *dryRun {
		logger.Info("Dry run complete, database untouched")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	postgresSvc, err := database.NewPostgresService(ctx, app.PostgresConfig(cfg), logger)
	if err != nil {
		return err
	}
	defer postgresSvc.Close()

	repo := namedata.NewRepository(postgresSvc, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.Seed(ctx, tables); err != nil {
		return err
	}

	// Read back through the same path the bot uses.
	if _, err := repo.Load(ctx); err != nil {
		return fmt.Errorf("seeded tables failed to load: %w", err)
	}

	logger.Info("Seeding completed", zap.String("database", cfg.Postgres.Database))
	return nil
}

func loadTables(path string) (namedata.Tables, error) {
	if path == "" {
		return namedata.BuiltinTables(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return namedata.Tables{}, fmt.Errorf("read %s: %w", path, err)
	}

	var tables namedata.Tables
	if err := json.Unmarshal(data, &tables); err != nil {
		return namedata.Tables{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return tables, nil
}
