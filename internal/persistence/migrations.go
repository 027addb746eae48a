package persistence

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/book-registry/internal/config"
	"github.com/spec-kit/book-registry/migrations"
)

// RunMigrations applies the embedded goose migrations against the database.
func RunMigrations(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) error {
	if cfg.DSN == "" {
		logger.Warn("no postgres DSN available; skipping migrations")
		return nil
	}

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}
