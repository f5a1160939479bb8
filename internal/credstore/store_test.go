package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Migrations run per test against the shared in-memory db; start clean.
	_, err = db.Exec(`DELETE FROM credentials`)
	require.NoError(t, err)

	return NewSQLiteStore(db)
}

func TestStore_GetAbsent(t *testing.T) {
	s := setupStore(t)

	token, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok-1"))

	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok-1"))
	require.NoError(t, s.Set(ctx, "tok-2"))

	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	var cnt int
	db := s.db
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&cnt))
	assert.Equal(t, 1, cnt)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok-1"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestInitDatabase_BadDSN(t *testing.T) {
	_, err := InitDatabase(context.Background(), "file:/nonexistent-dir/x.db?mode=ro")
	assert.Error(t, err)
}

var _ Store = (*SQLiteStore)(nil)
