package cmd

import (
	"context"
	"database/sql"
	"fmt"

	// registers the "pgx" database/sql driver
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase opens a pgx-backed pool, verifies it and wraps it in GORM.
func OpenDatabase(ctx context.Context, cfg Config) (*gorm.DB, *sql.DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL())
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("open gorm: %w", err)
	}

	return gormDB, sqlDB, nil
}
