package db

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantos/classdiary/internal/pkg/dberrors"
)

func openTestDB(t *testing.T, opts Options) *DB {
	t.Helper()

	if opts.Path == "" {
		opts.Path = ":memory:"
	}
	if opts.BusyTimeout == 0 {
		opts.BusyTimeout = time.Second
	}
	database, err := Open(opts)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestDSN(t *testing.T) {
	got := dsn(Options{Path: "classdiary.db", BusyTimeout: 5 * time.Second})
	assert.True(t, strings.HasPrefix(got, "file:classdiary.db?"))
	assert.Contains(t, got, "busy_timeout%285000%29")
	assert.Contains(t, got, "foreign_keys%280%29")

	got = dsn(Options{Path: ":memory:", BusyTimeout: time.Second, ForeignKeys: true})
	assert.Contains(t, got, "mode=memory")
	assert.Contains(t, got, "foreign_keys%281%29")
}

func TestWithTxCommit(t *testing.T) {
	database := openTestDB(t, Options{})
	ctx := context.Background()

	_, err := database.ExecContext(ctx, "CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)")
	require.NoError(t, err)

	err = database.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES (?)", "one")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"))
	assert.Equal(t, 1, count)
}

func TestWithTxRollbackOnError(t *testing.T) {
	database := openTestDB(t, Options{})
	ctx := context.Background()

	_, err := database.ExecContext(ctx, "CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = database.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES (?)", "one"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"))
	assert.Equal(t, 0, count)
}

func TestForeignKeysUnenforcedByDefault(t *testing.T) {
	database := openTestDB(t, Options{})
	ctx := context.Background()

	_, err := database.ExecContext(ctx, "CREATE TABLE parents (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = database.ExecContext(ctx,
		"CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL, FOREIGN KEY (parent_id) REFERENCES parents (id))")
	require.NoError(t, err)

	// Enforcement is off: a dangling reference inserts fine.
	_, err = database.ExecContext(ctx, "INSERT INTO children (parent_id) VALUES (999)")
	assert.NoError(t, err)
}

func TestForeignKeysEnforcedWhenEnabled(t *testing.T) {
	database := openTestDB(t, Options{ForeignKeys: true})
	ctx := context.Background()

	_, err := database.ExecContext(ctx, "CREATE TABLE parents (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = database.ExecContext(ctx,
		"CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL, FOREIGN KEY (parent_id) REFERENCES parents (id))")
	require.NoError(t, err)

	_, err = database.ExecContext(ctx, "INSERT INTO children (parent_id) VALUES (999)")
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyError(err))
}
