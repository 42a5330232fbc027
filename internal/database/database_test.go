package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(context.Background(), Config{Path: filepath.Join(t.TempDir(), "nested", "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func count(t *testing.T, conn *sql.DB, query string) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(query).Scan(&n))
	return n
}

func TestMigrate_SchemaOnly(t *testing.T) {
	conn := openTemp(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, conn, false))

	assert.Equal(t, 1, count(t, conn, "SELECT COUNT(*) FROM migrations"))
	assert.Equal(t, 0, count(t, conn, "SELECT COUNT(*) FROM works"))
	assert.Equal(t, 1, count(t, conn, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='life_timeline_works'"))
}

func TestMigrate_SeedIsIdempotent(t *testing.T) {
	conn := openTemp(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, conn, true))
	works := count(t, conn, "SELECT COUNT(*) FROM works")
	require.Positive(t, works)

	require.NoError(t, Migrate(ctx, conn, true))
	assert.Equal(t, works, count(t, conn, "SELECT COUNT(*) FROM works"))
	assert.Equal(t, 2, count(t, conn, "SELECT COUNT(*) FROM migrations"))
	assert.Equal(t, 1865, count(t, conn, "SELECT birth_year FROM person WHERE person_id = 1"))
}

func TestMigrationManager_OrderAndSkip(t *testing.T) {
	conn := openTemp(t)
	fsys := fstest.MapFS{
		"m/002_second.sql": {Data: []byte("INSERT INTO t (v) VALUES ('second');")},
		"m/001_first.sql":  {Data: []byte("CREATE TABLE t (v TEXT); INSERT INTO t (v) VALUES ('first');")},
		"m/readme.txt":     {Data: []byte("ignored")},
		"m/bad.sql":        {Data: []byte("ignored too")},
	}
	m := NewMigrationManager(conn, fsys, "m")

	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "001_first", migrations[0].Name)

	require.NoError(t, m.RunMigrations(context.Background()))
	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Equal(t, 2, count(t, conn, "SELECT COUNT(*) FROM t"))
}

func TestMigrationManager_FailedMigrationRollsBack(t *testing.T) {
	conn := openTemp(t)
	fsys := fstest.MapFS{
		"m/001_broken.sql": {Data: []byte("CREATE TABLE ok (v TEXT); THIS IS NOT SQL;")},
	}

	err := NewMigrationManager(conn, fsys, "m").RunMigrations(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, count(t, conn, "SELECT COUNT(*) FROM migrations"))
	assert.Equal(t, 0, count(t, conn, "SELECT COUNT(*) FROM sqlite_master WHERE name='ok'"))
}

func TestTransaction_RollbackOnError(t *testing.T) {
	conn := openTemp(t)
	ctx := context.Background()
	_, err := conn.Exec("CREATE TABLE t (v INTEGER)")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = Transaction(ctx, conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO t (v) VALUES (1)"); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count(t, conn, "SELECT COUNT(*) FROM t"))
}

func TestGetDB_BeforeInit(t *testing.T) {
	if db != nil {
		t.Skip("database already initialized in this process")
	}
	_, err := GetDB()
	assert.ErrorIs(t, err, ErrNotInitialized)
}
