package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/psantos/classdiary/internal/config"
	"github.com/psantos/classdiary/internal/pkg/helpers"
	"github.com/psantos/classdiary/internal/pkg/logger"
)

// DB wraps the embedded SQLite database handle.
type DB struct {
	*sqlx.DB
}

// Options control how the embedded database is opened.
type Options struct {
	// Path is the database file, or ":memory:".
	Path string
	// BusyTimeout is how long a statement waits on a locked database.
	BusyTimeout time.Duration
	// ForeignKeys enables enforcement of the declared foreign keys.
	// With enforcement off, deletes neither cascade nor get rejected and
	// dependent rows are simply left behind.
	ForeignKeys bool
}

// OptionsFromConfig builds Options from the application configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Path:        cfg.Database.Path,
		BusyTimeout: helpers.ParseDuration(cfg.Database.BusyTimeout, 5*time.Second),
		ForeignKeys: cfg.Database.ForeignKeys,
	}
}

// dsn builds the driver connection string with the pragmas applied on open.
func dsn(opts Options) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", opts.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	if opts.ForeignKeys {
		q.Add("_pragma", "foreign_keys(1)")
	} else {
		q.Add("_pragma", "foreign_keys(0)")
	}

	path := opts.Path
	if path == ":memory:" {
		path = ":memory:"
		q.Set("mode", "memory")
	}
	return "file:" + path + "?" + q.Encode()
}

// Open opens the embedded database and verifies the connection.
func Open(opts Options) (*DB, error) {
	sqlxDB, err := sqlx.Open("sqlite", dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; an in-memory database is additionally
	// private to its connection. One pooled connection covers both.
	sqlxDB.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlxDB.PingContext(ctx); err != nil {
		_ = sqlxDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &DB{DB: sqlxDB}, nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sqlx.Tx) error

// WithTx runs a function within a transaction
func (db *DB) WithTx(ctx context.Context, fn TransactionFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback on panic
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
