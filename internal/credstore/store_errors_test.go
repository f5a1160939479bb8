package credstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Driver failures are hard to provoke with a real sqlite file; sqlmock
// stands in for the broken database.

func setupMock(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), mock
}

func TestStore_GetDriverError(t *testing.T) {
	s, mock := setupMock(t)
	boom := errors.New("disk I/O error")
	mock.ExpectQuery(`SELECT value FROM credentials`).WillReturnError(boom)

	_, err := s.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SetDriverError(t *testing.T) {
	s, mock := setupMock(t)
	boom := errors.New("database is locked")
	mock.ExpectExec(`INSERT INTO credentials`).WillReturnError(boom)

	err := s.Set(context.Background(), "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ClearDriverError(t *testing.T) {
	s, mock := setupMock(t)
	boom := errors.New("database is locked")
	mock.ExpectExec(`DELETE FROM credentials`).WillReturnError(boom)

	err := s.Clear(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
