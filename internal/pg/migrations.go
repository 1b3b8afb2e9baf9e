package pg

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/stockvote/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// gooseLogger routes goose output through the global zap logger instead of
// the standard log package.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	zap.L().Info(fmt.Sprintf(format, v...), zap.String("component", "migrations"))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	zap.L().Fatal(fmt.Sprintf(format, v...), zap.String("component", "migrations"))
}

// RunMigrations applies every embedded migration not yet recorded in the
// goose version table.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	zap.L().Info("schema up to date", zap.Int64("version", version))
	return nil
}
