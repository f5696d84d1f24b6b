// Package storage owns the record store handle: it opens the connection
// pool, applies the embedded schema migrations and closes the pool on
// shutdown.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/student-records/internal/config"
	"github.com/sbilibin2017/student-records/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

//go:embed migrations
var migrationsFS embed.FS

// sqliteParams makes concurrent writers wait on the database lock and take
// it when the transaction begins.
const sqliteParams = "_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate&_foreign_keys=on"

// Open connects to the configured store, applies pending migrations and
// returns the pool. The caller owns the pool and must Close it.
func Open(ctx context.Context, cfg config.DB) (*sqlx.DB, error) {
	dsn := cfg.DSN
	if cfg.Driver == DriverSQLite {
		dsn = SQLiteDSN(dsn)
	}

	if err := Migrate(cfg.Driver, dsn); err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	logger.Log.Infow("record store opened", "driver", cfg.Driver)
	return db, nil
}

// Close releases the pool.
func Close(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Log.Errorw("failed to close record store", "error", err)
		return
	}
	logger.Log.Info("record store closed")
}

// SQLiteDSN appends the connection parameters used for the SQLite store
// unless the DSN already carries its own.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?" + sqliteParams
}

// Migrate applies every pending up migration for the driver. It uses its
// own connection, which is closed before returning.
func Migrate(driver, dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("load migrations for %s: %w", driver, err)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}

	var target database.Driver
	switch driver {
	case DriverSQLite:
		target, err = sqlite3.WithInstance(conn, &sqlite3.Config{})
	case DriverPostgres:
		target, err = pgxmigrate.WithInstance(conn, &pgxmigrate.Config{})
	default:
		err = fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		conn.Close()
		return fmt.Errorf("prepare migration target: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		conn.Close()
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Log.Infow("migrations applied", "driver", driver, "version", version, "dirty", dirty)
	return nil
}
