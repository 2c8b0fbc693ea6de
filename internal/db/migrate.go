package db

import (
	"context"
	"fmt"

	"goalapp/internal/db/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded schema migrations that have not run yet.
func (f *GormDB) Migrate(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
