package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net/url"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// OpenSQL opens a database/sql handle to the database described by opt. goose needs it,
// go-pg does not.
func OpenSQL(ctx context.Context, opt *pg.Options) (*sql.DB, error) {
	sslMode := "disable"
	if opt.TLSConfig != nil {
		sslMode = "require"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opt.User, opt.Password),
		Host:     opt.Addr,
		Path:     "/" + opt.Database,
		RawQuery: "sslmode=" + sslMode,
	}

	config, err := pgx.ParseConnectionString(dsn.String())
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return sqldb, nil
}

// Migrate runs a goose command ("up", "down", "status", "version", ...) against the
// embedded migrations.
func Migrate(ctx context.Context, sqldb *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, sqldb, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	return nil
}
